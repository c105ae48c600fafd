package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	require.NoError(t, DefaultEngineSettings().Validate())
}

func TestValidate_RejectsOutOfRangeThreshold(t *testing.T) {
	s := DefaultEngineSettings()
	s.CosineThreshold = 1.5
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "cosine_threshold")
}

func TestValidate_RejectsWeightSumDrift(t *testing.T) {
	s := DefaultEngineSettings()
	s.CosineWeight = 0.9
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_WeightErrorNamesFirstOffender(t *testing.T) {
	s := DefaultEngineSettings()
	s.Weights.Uniformity = -0.1
	s.Weights.FillerDensity = 2.0

	// Field checks run in declaration order, so the reported field
	// must not vary between calls.
	for i := 0; i < 20; i++ {
		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "weights.uniformity")
	}
}
