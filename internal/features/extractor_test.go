package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/textseg"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(domain.DefaultLexicon())
}

func TestExtract_DocumentFeatures(t *testing.T) {
	e := newTestExtractor(t)
	sentences := textseg.Segment(
		"Furthermore, the committee reviewed the proposal. " +
			"The plan was approved by the board. " +
			"I think it's a good outcome.")
	doc, per := e.Extract(sentences)

	require.Len(t, per, 3)
	assert.Equal(t, 3.0, doc[domain.FeatSentenceCount])
	assert.Greater(t, doc[domain.FeatTokenTotal], 0.0)
	assert.Greater(t, doc[domain.FeatTTR], 0.0)
	assert.LessOrEqual(t, doc[domain.FeatTTR], 1.0)
	assert.InDelta(t, 1.0/3.0, doc[domain.FeatTransitionDensity], 1e-9)
	assert.InDelta(t, 1.0/3.0, doc[domain.FeatPassiveRate], 1e-9)
}

func TestExtract_SentenceFeatures(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("transition at start", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("Moreover, sales grew rapidly."))
		require.Len(t, per, 1)
		assert.True(t, per[0].Bool(domain.FeatHasTransition))
		assert.True(t, per[0].Bool(domain.FeatStartsTransition))
	})

	t.Run("transition mid-sentence", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("Sales, however, grew rapidly."))
		require.Len(t, per, 1)
		assert.True(t, per[0].Bool(domain.FeatHasTransition))
		assert.False(t, per[0].Bool(domain.FeatStartsTransition))
	})

	t.Run("passive voice", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("The report was written by the intern."))
		require.Len(t, per, 1)
		assert.True(t, per[0].Bool(domain.FeatIsPassive))
	})

	t.Run("active voice", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("The intern wrote the report."))
		require.Len(t, per, 1)
		assert.False(t, per[0].Bool(domain.FeatIsPassive))
	})

	t.Run("filler phrase", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("In order to win, we must train."))
		require.Len(t, per, 1)
		assert.True(t, per[0].Bool(domain.FeatHasFiller))
	})

	t.Run("stacked hedges count as filler", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("It could perhaps possibly work."))
		require.Len(t, per, 1)
		assert.True(t, per[0].Bool(domain.FeatHasFiller))
	})

	t.Run("single hedge is not filler", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("It might rain today."))
		require.Len(t, per, 1)
		assert.False(t, per[0].Bool(domain.FeatHasFiller))
	})

	t.Run("pronouns and contractions", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("I don't believe you saw me."))
		require.Len(t, per, 1)
		assert.True(t, per[0].Bool(domain.FeatHasPronoun))
		assert.True(t, per[0].Bool(domain.FeatHasContraction))
		assert.True(t, per[0].Bool(domain.FeatHasAddress))
	})

	t.Run("question", func(t *testing.T) {
		_, per := e.Extract(textseg.Segment("Have you considered the cost?"))
		require.Len(t, per, 1)
		assert.True(t, per[0].Bool(domain.FeatIsQuestion))
	})
}

func TestExtract_Empty(t *testing.T) {
	e := newTestExtractor(t)
	doc, per := e.Extract(nil)
	assert.Empty(t, per)
	assert.Equal(t, 0.0, doc[domain.FeatSentenceCount])
	assert.Equal(t, 0.0, doc[domain.FeatTTR])
}

func TestExtract_TTRRepeatedWords(t *testing.T) {
	e := newTestExtractor(t)
	doc, _ := e.Extract(textseg.Segment("buffalo buffalo buffalo buffalo."))
	assert.InDelta(t, 0.25, doc[domain.FeatTTR], 1e-9)
}
