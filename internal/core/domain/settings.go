package domain

import (
	"fmt"
	"math"
)

// weightSumTolerance is the allowed deviation of a weight set from 1.0.
const weightSumTolerance = 1e-9

// AIWeights are the shares of each sub-score in the final AI likelihood.
// They are a tunable policy, not a structural contract: the defaults below
// are documented and held stable across a release so scores reproduce.
type AIWeights struct {
	// Uniformity weights the sentence-length uniformity sub-score.
	Uniformity float64 `toml:"uniformity" json:"uniformity"`

	// Burstiness weights the complexity-variation deficit sub-score.
	Burstiness float64 `toml:"burstiness" json:"burstiness"`

	// VocabRichness weights the type-token-ratio deficit sub-score.
	VocabRichness float64 `toml:"vocab_richness" json:"vocab_richness"`

	// TransitionDensity weights formal-transition overuse.
	TransitionDensity float64 `toml:"transition_density" json:"transition_density"`

	// FillerDensity weights padding-phrase overuse.
	FillerDensity float64 `toml:"filler_density" json:"filler_density"`
}

// Sum returns the total of all weights.
func (w AIWeights) Sum() float64 {
	return w.Uniformity + w.Burstiness + w.VocabRichness +
		w.TransitionDensity + w.FillerDensity
}

// EngineSettings holds every tunable threshold and weight of the engine.
// Heuristic defaults come from the documented starting points; they are
// configuration, not fixed truths.
type EngineSettings struct {
	// CosineThreshold is the minimum cosine similarity for a corpus
	// match to be reported.
	CosineThreshold float64 `toml:"cosine_threshold" json:"cosine_threshold"`

	// SelfOverlapThreshold is the minimum n-gram Jaccard overlap between
	// non-adjacent sentences to report internal repetition.
	SelfOverlapThreshold float64 `toml:"self_overlap_threshold" json:"self_overlap_threshold"`

	// PhraseWords is the n-gram length for common-phrase detection.
	PhraseWords int `toml:"phrase_words" json:"phrase_words"`

	// PhraseMaxEdits is the maximum word-level edit distance for a
	// near-exact phrase match.
	PhraseMaxEdits int `toml:"phrase_max_edits" json:"phrase_max_edits"`

	// CosineWeight is the best-cosine share of the plagiarism score.
	CosineWeight float64 `toml:"cosine_weight" json:"cosine_weight"`

	// PhraseWeight is the phrase-overlap share of the plagiarism score.
	PhraseWeight float64 `toml:"phrase_weight" json:"phrase_weight"`

	// UniformTolerance is the token-count band around the document mean
	// within which a sentence is tagged uniform_length.
	UniformTolerance int `toml:"uniform_tolerance" json:"uniform_tolerance"`

	// MinSentences is the sentence count under which results are
	// flagged low-confidence.
	MinSentences int `toml:"min_sentences" json:"min_sentences"`

	// MinTokens is the token count under which results are flagged
	// low-confidence.
	MinTokens int `toml:"min_tokens" json:"min_tokens"`

	// MaxRewrites caps the number of rewrite suggestions per analysis.
	MaxRewrites int `toml:"max_rewrites" json:"max_rewrites"`

	// Weights are the AI sub-score weights; they must sum to 1.
	Weights AIWeights `toml:"weights" json:"weights"`
}

// DefaultEngineSettings returns the documented default configuration.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		CosineThreshold:      0.3,
		SelfOverlapThreshold: 0.5,
		PhraseWords:          5,
		PhraseMaxEdits:       1,
		CosineWeight:         0.6,
		PhraseWeight:         0.4,
		UniformTolerance:     2,
		MinSentences:         3,
		MinTokens:            20,
		MaxRewrites:          10,
		Weights: AIWeights{
			Uniformity:        0.30,
			Burstiness:        0.25,
			VocabRichness:     0.15,
			TransitionDensity: 0.15,
			FillerDensity:     0.15,
		},
	}
}

// Validate rejects unusable settings. It is called at service
// construction so a misconfigured deployment fails before processing
// any document.
func (s EngineSettings) Validate() error {
	unit := func(name string, v float64) error {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be in [0,1], got %v", ErrInvalidConfig, name, v)
		}
		return nil
	}

	if err := unit("cosine_threshold", s.CosineThreshold); err != nil {
		return err
	}
	if err := unit("self_overlap_threshold", s.SelfOverlapThreshold); err != nil {
		return err
	}
	if err := unit("cosine_weight", s.CosineWeight); err != nil {
		return err
	}
	if err := unit("phrase_weight", s.PhraseWeight); err != nil {
		return err
	}
	if diff := math.Abs(s.CosineWeight + s.PhraseWeight - 1); diff > weightSumTolerance {
		return fmt.Errorf("%w: cosine_weight + phrase_weight must sum to 1, got %v",
			ErrInvalidConfig, s.CosineWeight+s.PhraseWeight)
	}

	weightFields := []struct {
		name string
		v    float64
	}{
		{"weights.uniformity", s.Weights.Uniformity},
		{"weights.burstiness", s.Weights.Burstiness},
		{"weights.vocab_richness", s.Weights.VocabRichness},
		{"weights.transition_density", s.Weights.TransitionDensity},
		{"weights.filler_density", s.Weights.FillerDensity},
	}
	for _, f := range weightFields {
		if err := unit(f.name, f.v); err != nil {
			return err
		}
	}
	if diff := math.Abs(s.Weights.Sum() - 1); diff > weightSumTolerance {
		return fmt.Errorf("%w: AI weights must sum to 1, got %v", ErrInvalidConfig, s.Weights.Sum())
	}

	if s.PhraseWords < 2 {
		return fmt.Errorf("%w: phrase_words must be at least 2, got %d", ErrInvalidConfig, s.PhraseWords)
	}
	if s.PhraseMaxEdits < 0 {
		return fmt.Errorf("%w: phrase_max_edits must not be negative, got %d", ErrInvalidConfig, s.PhraseMaxEdits)
	}
	if s.UniformTolerance < 0 {
		return fmt.Errorf("%w: uniform_tolerance must not be negative, got %d", ErrInvalidConfig, s.UniformTolerance)
	}
	if s.MinSentences < 1 || s.MinTokens < 1 {
		return fmt.Errorf("%w: minimum input thresholds must be positive", ErrInvalidConfig)
	}
	if s.MaxRewrites < 0 {
		return fmt.Errorf("%w: max_rewrites must not be negative, got %d", ErrInvalidConfig, s.MaxRewrites)
	}

	return nil
}
