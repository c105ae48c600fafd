package domain

// Well-known SimilarityMatch source IDs.
const (
	// MatchSourceSelf marks internal repetition within the submission.
	MatchSourceSelf = "self"
)

// MatchKind distinguishes how a similarity match was produced.
type MatchKind string

// Available match kinds.
const (
	// MatchKindCosine is a whole-document TF-IDF cosine match.
	MatchKindCosine MatchKind = "cosine"

	// MatchKindSelf is n-gram repetition between non-adjacent sentences.
	MatchKindSelf MatchKind = "self"

	// MatchKindPhrase is an exact or near-exact shared multi-word phrase.
	MatchKindPhrase MatchKind = "phrase"
)

// SimilarityMatch links a region of the submission to a corpus entry.
// Matches are never mutated after creation.
type SimilarityMatch struct {
	// SourceID is the corpus entry ID, or MatchSourceSelf for
	// internal repetition.
	SourceID string `json:"source_id"`

	// Span is the matched region within the submission.
	Span Span `json:"span"`

	// SourceSpan is the matched region within the source document.
	SourceSpan Span `json:"source_span"`

	// Score is the similarity in [0,1].
	Score float64 `json:"score"`

	// Kind is how the match was produced.
	Kind MatchKind `json:"kind"`
}

// Fix is one suggested correction for a flagged sentence.
type Fix struct {
	// Description says what to change.
	Description string `json:"description"`

	// Rationale says why the change helps.
	Rationale string `json:"rationale"`
}

// SentenceVerdict is the per-sentence classification outcome.
type SentenceVerdict struct {
	// Index is the sentence's ordinal position.
	Index int `json:"index"`

	// Span locates the sentence within the submission.
	Span Span `json:"span"`

	// Tags are the issue categories that matched, in rule order.
	Tags []IssueTag `json:"tags"`

	// Severity is the number of tags present. Used for sorting and
	// highlighting only; it does not feed the AI score.
	Severity int `json:"severity"`

	// Fixes are the suggested corrections, one per tag, in tag order.
	Fixes []Fix `json:"fixes"`
}

// ScoreComponent is one named sub-score of the AI likelihood estimate,
// exposed together with its weight so callers can explain the final number.
type ScoreComponent struct {
	// Score is the normalized suspicion level in [0,1].
	Score float64 `json:"score"`

	// Weight is the component's share of the final score.
	Weight float64 `json:"weight"`
}

// AIBreakdown itemizes the AI-likelihood sub-scores.
type AIBreakdown struct {
	// Uniformity is the inverse coefficient of variation of sentence
	// lengths. Low variation reads as machine-like.
	Uniformity ScoreComponent `json:"uniformity"`

	// Burstiness is the inverse variation of per-sentence complexity.
	// Human writing is burstier.
	Burstiness ScoreComponent `json:"burstiness"`

	// VocabRichness is the type-token-ratio deficit.
	VocabRichness ScoreComponent `json:"vocab_richness"`

	// TransitionDensity is formal-transition overuse.
	TransitionDensity ScoreComponent `json:"transition_density"`

	// FillerDensity is padding-phrase overuse.
	FillerDensity ScoreComponent `json:"filler_density"`
}

// RewriteSuggestion pairs a flagged sentence with a rewritten alternative.
// Generation is template-driven and deterministic.
type RewriteSuggestion struct {
	// Index is the sentence's ordinal position.
	Index int `json:"index"`

	// Original is the flagged sentence text.
	Original string `json:"original"`

	// Rewritten is the suggested alternative.
	Rewritten string `json:"rewritten"`

	// Rationale explains the change.
	Rationale string `json:"rationale"`
}

// ExerciseRecommendation is one ranked exercise in an analysis result.
type ExerciseRecommendation struct {
	// Name is the exercise's catalog name.
	Name string `json:"name"`

	// Difficulty is the exercise difficulty.
	Difficulty Difficulty `json:"difficulty"`

	// Rationale explains why the exercise was recommended.
	Rationale string `json:"rationale"`

	// SentencesAddressed is how many distinct flagged sentences the
	// exercise targets. Drives the ranking.
	SentencesAddressed int `json:"sentences_addressed"`
}

// AnalysisResult is the sole output of one analysis call. It is created
// once per call and never mutated; recomputation produces a new result.
type AnalysisResult struct {
	// PlagiarismScore is the document-level similarity score in [0,1].
	PlagiarismScore float64 `json:"plagiarism_score"`

	// PlagiarismMatches are similarity matches sorted by descending score.
	PlagiarismMatches []SimilarityMatch `json:"plagiarism_matches"`

	// AIScore is the document-level AI-authorship likelihood in [0,1].
	AIScore float64 `json:"ai_score"`

	// AIBreakdown itemizes the AI sub-scores for explainability.
	AIBreakdown AIBreakdown `json:"ai_breakdown"`

	// AIBand is the presentation band for AIScore.
	AIBand AIBand `json:"ai_band"`

	// Sentences are the per-sentence verdicts in document order.
	Sentences []SentenceVerdict `json:"sentences"`

	// Rewrites are deterministic rewrite suggestions for flagged sentences.
	Rewrites []RewriteSuggestion `json:"rewrites,omitempty"`

	// Exercises are recommended exercises, best match first.
	Exercises []ExerciseRecommendation `json:"exercises"`

	// LowConfidence marks results computed from degenerate input
	// (empty, very short, or too few sentences).
	LowConfidence bool `json:"low_confidence"`

	// CorpusVersion is the corpus snapshot version the plagiarism scores
	// were computed against. Zero when no corpus was available.
	CorpusVersion uint64 `json:"corpus_version"`
}

// AIBand is the presentation band for an AI score.
type AIBand string

// Available bands, on the percentage scale of the AI score.
const (
	// AIBandHuman covers [0,30): characteristics typical of human writing.
	AIBandHuman AIBand = "likely_human"

	// AIBandMixed covers [30,60): AI-like patterns mixed with human ones.
	AIBandMixed AIBand = "mixed"

	// AIBandStrong covers [60,100]: strong AI indicators.
	AIBandStrong AIBand = "strong_ai_indicators"
)

// BandForScore maps a score in [0,1] to its presentation band.
func BandForScore(score float64) AIBand {
	pct := score * 100
	switch {
	case pct < 30:
		return AIBandHuman
	case pct < 60:
		return AIBandMixed
	default:
		return AIBandStrong
	}
}

// Description returns a human-readable description of the band.
func (b AIBand) Description() string {
	switch b {
	case AIBandHuman:
		return "Likely human writing"
	case AIBandMixed:
		return "Mixed signals"
	case AIBandStrong:
		return "Strong AI indicators"
	default:
		return "Unknown"
	}
}
