package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklight-labs/inklight-cli/internal/classifier"
	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/features"
	"github.com/inklight-labs/inklight-cli/internal/textseg"
)

func generateFor(t *testing.T, text string) ([]domain.RewriteSuggestion, []domain.ExerciseRecommendation) {
	t.Helper()
	settings := domain.DefaultEngineSettings()
	sentences := textseg.Segment(text)
	doc, per := features.New(domain.DefaultLexicon()).Extract(sentences)
	verdicts := classifier.New(settings).ClassifyAll(sentences, per, doc)
	g := New(settings)
	return g.Rewrites(sentences, verdicts), g.Exercises(verdicts)
}

func TestRewrites_TransitionSwap(t *testing.T) {
	rewrites, _ := generateFor(t,
		"Furthermore, the trial succeeded. "+
			"The team celebrated late into the night. "+
			"Results arrived the following week.")

	require.NotEmpty(t, rewrites)
	assert.Equal(t, 0, rewrites[0].Index)
	assert.NotContains(t, rewrites[0].Rewritten, "Furthermore")
	assert.NotEqual(t, rewrites[0].Original, rewrites[0].Rewritten)
	assert.NotEmpty(t, rewrites[0].Rationale)
}

func TestRewrites_FillerTrim(t *testing.T) {
	sentences := textseg.Segment("In order to win the contract, I bid low.")
	verdicts := []domain.SentenceVerdict{{
		Index: 0,
		Tags:  []domain.IssueTag{domain.TagFillerPhrase},
	}}
	rewrites := New(domain.DefaultEngineSettings()).Rewrites(sentences, verdicts)

	require.Len(t, rewrites, 1)
	assert.Equal(t, "To win the contract, I bid low.", rewrites[0].Rewritten)
}

func TestRewrites_Contractions(t *testing.T) {
	sentences := textseg.Segment("The vendor did not deliver and it is late.")
	verdicts := []domain.SentenceVerdict{{
		Index: 0,
		Tags:  []domain.IssueTag{domain.TagNoContractions},
	}}
	rewrites := New(domain.DefaultEngineSettings()).Rewrites(sentences, verdicts)

	require.Len(t, rewrites, 1)
	assert.Contains(t, rewrites[0].Rewritten, "didn't")
	assert.Contains(t, rewrites[0].Rewritten, "it's")
}

func TestReplacePhrase_LengthChangingLowercase(t *testing.T) {
	// U+0130 lowercases to two runes, so index positions from the
	// lowered string would not line up with the original bytes.
	text := "İstanbul flourished. Furthermore, the trade routes expanded."
	replaced, ok := replacePhrase(text, "furthermore, ", "also, ")
	assert.False(t, ok)
	assert.Empty(t, replaced)

	// Plain ASCII text of the same shape still rewrites.
	replaced, ok = replacePhrase("Istanbul flourished. Furthermore, the trade routes expanded.",
		"furthermore, ", "also, ")
	require.True(t, ok)
	assert.NotContains(t, replaced, "Furthermore")
}

func TestRewrites_Deterministic(t *testing.T) {
	text := "Furthermore, the budget was approved. " +
		"Moreover, in order to comply, teams filed reports. " +
		"Consequently, the deadline moved."
	first, _ := generateFor(t, text)
	second, _ := generateFor(t, text)
	assert.Equal(t, first, second)
}

func TestRewrites_CapRespected(t *testing.T) {
	settings := domain.DefaultEngineSettings()
	settings.MaxRewrites = 1

	sentences := textseg.Segment("Furthermore, one thing happened. Moreover, another thing happened.")
	verdicts := []domain.SentenceVerdict{
		{Index: 0, Tags: []domain.IssueTag{domain.TagFormalTransition}},
		{Index: 1, Tags: []domain.IssueTag{domain.TagFormalTransition}},
	}
	rewrites := New(settings).Rewrites(sentences, verdicts)
	assert.Len(t, rewrites, 1)
}

func TestExercises_RankedByCoverage(t *testing.T) {
	// Every sentence is passive; only one carries filler.
	verdicts := []domain.SentenceVerdict{
		{Index: 0, Tags: []domain.IssueTag{domain.TagPassiveVoice, domain.TagFillerPhrase}},
		{Index: 1, Tags: []domain.IssueTag{domain.TagPassiveVoice}},
		{Index: 2, Tags: []domain.IssueTag{domain.TagPassiveVoice}},
	}
	exercises := New(domain.DefaultEngineSettings()).Exercises(verdicts)

	require.NotEmpty(t, exercises)
	assert.Equal(t, "Make It Active", exercises[0].Name)
	assert.Equal(t, 3, exercises[0].SentencesAddressed)
	for i := 1; i < len(exercises); i++ {
		assert.GreaterOrEqual(t, exercises[i-1].SentencesAddressed, exercises[i].SentencesAddressed)
	}
}

func TestExercises_TieBrokenByDifficulty(t *testing.T) {
	verdicts := []domain.SentenceVerdict{
		{Index: 0, Tags: []domain.IssueTag{domain.TagPassiveVoice, domain.TagPronounAbsent}},
	}
	exercises := New(domain.DefaultEngineSettings()).Exercises(verdicts)

	require.Len(t, exercises, 2)
	assert.Equal(t, "Add Your Personal Voice", exercises[0].Name)
	assert.Equal(t, domain.DifficultyEasy, exercises[0].Difficulty)
	assert.Equal(t, "Make It Active", exercises[1].Name)
}

func TestExercises_FormalUniformDocumentTopPicks(t *testing.T) {
	_, exercises := generateFor(t,
		"Furthermore, the proposal was rejected by the board. "+
			"Moreover, the budget was approved by the committee. "+
			"Additionally, the report was reviewed by the panel. "+
			"Consequently, the plan was endorsed by the council.")

	require.NotEmpty(t, exercises)
	names := make([]string, 0, 4)
	for i, ex := range exercises {
		if i == 4 {
			break
		}
		names = append(names, ex.Name)
	}
	assert.Contains(t, names, "Add Your Personal Voice")
	assert.Contains(t, names, "Create Rhythm with Variety")
}

func TestExercises_NoTagsNoExercises(t *testing.T) {
	verdicts := []domain.SentenceVerdict{
		{Index: 0, Tags: []domain.IssueTag{}},
	}
	assert.Empty(t, New(domain.DefaultEngineSettings()).Exercises(verdicts))
}
