// Package domain defines the core business entities for Inklight.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Sentence: A segmented span of a submission
//   - CorpusEntry: A reference document for similarity comparison
//   - FeatureVector: Named stylometric statistics
//   - SimilarityMatch: A region matched against the corpus
//   - SentenceVerdict: Per-sentence issue tags and fixes
//   - AnalysisResult: The complete outcome of one analysis call
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
