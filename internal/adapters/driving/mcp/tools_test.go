package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

func TestServer_handleAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("returns analysis result", func(t *testing.T) {
		mockAnalysis := &mockAnalysisService{
			result: &domain.AnalysisResult{
				PlagiarismScore: 0.42,
				AIScore:         0.65,
				AIBand:          domain.AIBandStrong,
				PlagiarismMatches: []domain.SimilarityMatch{
					{SourceID: "ref-1", Kind: domain.MatchKindCosine, Score: 0.7},
				},
				Sentences: []domain.SentenceVerdict{
					{Index: 0, Tags: []domain.IssueTag{domain.TagPassiveVoice}, Severity: 1},
					{Index: 1, Tags: []domain.IssueTag{}, Severity: 0},
				},
				Rewrites: []domain.RewriteSuggestion{
					{Index: 0, Original: "It was done.", Rewritten: "We did it."},
				},
				Exercises: []domain.ExerciseRecommendation{
					{Name: "Make It Active", Difficulty: domain.DifficultyMedium},
				},
			},
		}

		ports := &Ports{Analysis: mockAnalysis}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := AnalyzeInput{Text: "It was done. We moved on.", Title: "draft", Save: true}
		_, output, err := server.handleAnalyze(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0.42, output.PlagiarismScore)
		assert.Equal(t, 0.65, output.AIScore)
		assert.Equal(t, "strong_ai_indicators", output.AIBand)
		assert.Equal(t, "Strong AI indicators", output.AIBandLabel)
		require.Len(t, output.Matches, 1)
		assert.Equal(t, "ref-1", output.Matches[0].SourceID)
		// Clean sentences are omitted from the output.
		require.Len(t, output.Sentences, 1)
		assert.Equal(t, []string{"passive_voice"}, output.Sentences[0].Tags)
		require.Len(t, output.Rewrites, 1)
		assert.Equal(t, "We did it.", output.Rewrites[0].Rewritten)
		assert.Equal(t, []string{"Make It Active"}, output.Exercises)

		assert.Equal(t, "draft", mockAnalysis.lastOpts.Title)
		assert.True(t, mockAnalysis.lastOpts.Save)
	})

	t.Run("returns error on analysis failure", func(t *testing.T) {
		mockAnalysis := &mockAnalysisService{err: errors.New("store unavailable")}
		server, err := NewServer(&Ports{Analysis: mockAnalysis})
		require.NoError(t, err)

		_, _, err = server.handleAnalyze(ctx, nil, AnalyzeInput{Text: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store unavailable")
	})
}

func TestServer_handleCorpusAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("adds entry", func(t *testing.T) {
		mockCorpus := &mockCorpusService{
			entry: &domain.CorpusEntry{ID: "e1", Label: "essay"},
		}
		server, err := NewServer(&Ports{
			Analysis: &mockAnalysisService{result: &domain.AnalysisResult{}},
			Corpus:   mockCorpus,
		})
		require.NoError(t, err)

		_, output, err := server.handleCorpusAdd(ctx, nil, AddEntryInput{Label: "essay", Text: "ref"})
		require.NoError(t, err)
		assert.Equal(t, "e1", output.ID)
		assert.Equal(t, "essay", output.Label)
	})

	t.Run("errors without corpus service", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Analysis: &mockAnalysisService{result: &domain.AnalysisResult{}},
		})
		require.NoError(t, err)

		_, _, err = server.handleCorpusAdd(ctx, nil, AddEntryInput{Text: "ref"})
		assert.Error(t, err)
	})
}
