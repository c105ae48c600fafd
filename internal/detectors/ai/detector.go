// Package ai estimates how likely a text was machine-written. The
// estimate is a weighted blend of stylometric sub-scores, each exposed
// in the result so callers can explain the final number instead of
// presenting an opaque verdict.
package ai

import (
	"math"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

// Detector computes the AI-likelihood score from feature vectors. It
// is stateless and safe for concurrent use.
type Detector struct {
	settings domain.EngineSettings
}

// NewDetector builds a Detector with the given settings.
func NewDetector(settings domain.EngineSettings) *Detector {
	return &Detector{settings: settings}
}

// Detect scores the document described by doc and per-sentence feature
// vectors. The returned score is in [0,1]; the breakdown carries each
// sub-score with its weight so that score equals the weighted sum.
func (d *Detector) Detect(doc domain.FeatureVector, sentences []domain.FeatureVector) (float64, domain.AIBreakdown) {
	w := d.settings.Weights
	breakdown := domain.AIBreakdown{
		Uniformity:        domain.ScoreComponent{Score: d.uniformity(sentences), Weight: w.Uniformity},
		Burstiness:        domain.ScoreComponent{Score: d.burstiness(sentences), Weight: w.Burstiness},
		VocabRichness:     domain.ScoreComponent{Score: vocabDeficit(doc), Weight: w.VocabRichness},
		TransitionDensity: domain.ScoreComponent{Score: transitionSuspicion(doc), Weight: w.TransitionDensity},
		FillerDensity:     domain.ScoreComponent{Score: fillerSuspicion(doc), Weight: w.FillerDensity},
	}

	score := breakdown.Uniformity.Score*w.Uniformity +
		breakdown.Burstiness.Score*w.Burstiness +
		breakdown.VocabRichness.Score*w.VocabRichness +
		breakdown.TransitionDensity.Score*w.TransitionDensity +
		breakdown.FillerDensity.Score*w.FillerDensity
	return clamp01(score), breakdown
}

// uniformity measures how little sentence lengths vary. Machine text
// tends toward evenly sized sentences, so a low coefficient of
// variation reads as suspicious.
func (d *Detector) uniformity(sentences []domain.FeatureVector) float64 {
	if len(sentences) < 3 {
		return 0.5
	}
	lengths := make([]float64, len(sentences))
	for i, fv := range sentences {
		lengths[i] = fv[domain.FeatLengthTokens]
	}
	return clamp01(1 - 2*coeffVariation(lengths))
}

// burstiness measures variation in per-sentence complexity, where
// complexity is average word length scaled by the log of sentence
// length. Human writing alternates dense and light sentences; flat
// complexity is suspicious.
func (d *Detector) burstiness(sentences []domain.FeatureVector) float64 {
	if len(sentences) < 3 {
		return 0.5
	}
	complexities := make([]float64, len(sentences))
	for i, fv := range sentences {
		complexities[i] = fv[domain.FeatAvgWordLen] * math.Log(fv[domain.FeatLengthTokens]+1)
	}
	return clamp01(1 - 2*coeffVariation(complexities))
}

// vocabDeficit is the inverse type-token ratio. Repetitive vocabulary
// scores high.
func vocabDeficit(doc domain.FeatureVector) float64 {
	if doc[domain.FeatTokenTotal] == 0 {
		return 0.5
	}
	return clamp01(1 - doc[domain.FeatTTR])
}

// transitionSuspicion scales the share of sentences carrying a formal
// transition: 40% of sentences or more saturates the sub-score.
func transitionSuspicion(doc domain.FeatureVector) float64 {
	return clamp01(doc[domain.FeatTransitionDensity] * 2.5)
}

// fillerSuspicion scales the share of sentences carrying filler
// phrases: a third of sentences saturates the sub-score.
func fillerSuspicion(doc domain.FeatureVector) float64 {
	return clamp01(doc[domain.FeatFillerDensity] * 3)
}

// coeffVariation is the standard deviation divided by the mean, or 0
// for a zero mean.
func coeffVariation(values []float64) float64 {
	mean, std := meanStd(values)
	if mean == 0 {
		return 0
	}
	return std / mean
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
