package services

import (
	"fmt"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driven"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCosineThreshold      = "engine.cosine_threshold"
	keySelfOverlapThreshold = "engine.self_overlap_threshold"
	keyPhraseWords          = "engine.phrase_words"
	keyPhraseMaxEdits       = "engine.phrase_max_edits"
	keyCosineWeight         = "engine.cosine_weight"
	keyPhraseWeight         = "engine.phrase_weight"
	keyUniformTolerance     = "engine.uniform_tolerance"
	keyMinSentences         = "engine.min_sentences"
	keyMinTokens            = "engine.min_tokens"
	keyMaxRewrites          = "engine.max_rewrites"
	keyWeightUniformity     = "engine.weights.uniformity"
	keyWeightBurstiness     = "engine.weights.burstiness"
	keyWeightVocab          = "engine.weights.vocab_richness"
	keyWeightTransition     = "engine.weights.transition_density"
	keyWeightFiller         = "engine.weights.filler_density"
)

// SettingsService maps the config store onto engine settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current engine settings. Keys missing from the store
// fall back to the documented defaults.
func (s *SettingsService) Get() (*domain.EngineSettings, error) {
	defaults := domain.DefaultEngineSettings()

	settings := &domain.EngineSettings{
		CosineThreshold:      s.getFloat(keyCosineThreshold, defaults.CosineThreshold),
		SelfOverlapThreshold: s.getFloat(keySelfOverlapThreshold, defaults.SelfOverlapThreshold),
		PhraseWords:          s.getInt(keyPhraseWords, defaults.PhraseWords),
		PhraseMaxEdits:       s.getInt(keyPhraseMaxEdits, defaults.PhraseMaxEdits),
		CosineWeight:         s.getFloat(keyCosineWeight, defaults.CosineWeight),
		PhraseWeight:         s.getFloat(keyPhraseWeight, defaults.PhraseWeight),
		UniformTolerance:     s.getInt(keyUniformTolerance, defaults.UniformTolerance),
		MinSentences:         s.getInt(keyMinSentences, defaults.MinSentences),
		MinTokens:            s.getInt(keyMinTokens, defaults.MinTokens),
		MaxRewrites:          s.getInt(keyMaxRewrites, defaults.MaxRewrites),
		Weights: domain.AIWeights{
			Uniformity:        s.getFloat(keyWeightUniformity, defaults.Weights.Uniformity),
			Burstiness:        s.getFloat(keyWeightBurstiness, defaults.Weights.Burstiness),
			VocabRichness:     s.getFloat(keyWeightVocab, defaults.Weights.VocabRichness),
			TransitionDensity: s.getFloat(keyWeightTransition, defaults.Weights.TransitionDensity),
			FillerDensity:     s.getFloat(keyWeightFiller, defaults.Weights.FillerDensity),
		},
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("stored settings invalid: %w", err)
	}
	return settings, nil
}

// Save validates and persists engine settings.
func (s *SettingsService) Save(settings *domain.EngineSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	values := map[string]any{
		keyCosineThreshold:      settings.CosineThreshold,
		keySelfOverlapThreshold: settings.SelfOverlapThreshold,
		keyPhraseWords:          settings.PhraseWords,
		keyPhraseMaxEdits:       settings.PhraseMaxEdits,
		keyCosineWeight:         settings.CosineWeight,
		keyPhraseWeight:         settings.PhraseWeight,
		keyUniformTolerance:     settings.UniformTolerance,
		keyMinSentences:         settings.MinSentences,
		keyMinTokens:            settings.MinTokens,
		keyMaxRewrites:          settings.MaxRewrites,
		keyWeightUniformity:     settings.Weights.Uniformity,
		keyWeightBurstiness:     settings.Weights.Burstiness,
		keyWeightVocab:          settings.Weights.VocabRichness,
		keyWeightTransition:     settings.Weights.TransitionDensity,
		keyWeightFiller:         settings.Weights.FillerDensity,
	}
	for key, value := range values {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}
