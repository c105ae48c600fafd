package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
)

// mockCorpusStore is an in-memory CorpusStore preserving insertion order.
type mockCorpusStore struct {
	mu      sync.Mutex
	entries []domain.CorpusEntry
	listErr error
}

func (m *mockCorpusStore) Save(_ context.Context, entry *domain.CorpusEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.ID == entry.ID {
			m.entries[i] = *entry
			return nil
		}
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockCorpusStore) Get(_ context.Context, id string) (*domain.CorpusEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCorpusStore) List(_ context.Context) ([]domain.CorpusEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.CorpusEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *mockCorpusStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// mockHistoryStore records saved analyses.
type mockHistoryStore struct {
	records []domain.AnalysisRecord
}

func (m *mockHistoryStore) SaveAnalysis(_ context.Context, rec *domain.AnalysisRecord) error {
	m.records = append(m.records, *rec)
	return nil
}

func (m *mockHistoryStore) ListAnalyses(_ context.Context, limit int) ([]domain.AnalysisRecord, error) {
	out := make([]domain.AnalysisRecord, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *mockHistoryStore) GetAnalysis(_ context.Context, id string) (*domain.AnalysisRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

func newTestAnalysisService(t *testing.T, store *mockCorpusStore) *AnalysisService {
	t.Helper()
	svc, err := NewAnalysisService(store, domain.DefaultEngineSettings(), domain.DefaultLexicon())
	require.NoError(t, err)
	return svc
}

func corpusEntry(id, text string) domain.CorpusEntry {
	return domain.CorpusEntry{ID: id, Label: id, Text: text, CreatedAt: time.Now()}
}

func TestNewAnalysisService_InvalidSettings(t *testing.T) {
	settings := domain.DefaultEngineSettings()
	settings.Weights.Uniformity = 0.9 // weights no longer sum to 1

	_, err := NewAnalysisService(nil, settings, domain.DefaultLexicon())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestNewAnalysisService_InvalidLexicon(t *testing.T) {
	_, err := NewAnalysisService(nil, domain.DefaultEngineSettings(), domain.Lexicon{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	svc := newTestAnalysisService(t, &mockCorpusStore{})

	result, err := svc.Analyze(context.Background(), "", driving.AnalyzeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PlagiarismScore)
	assert.Equal(t, 0.0, result.AIScore)
	assert.True(t, result.LowConfidence)
	assert.Empty(t, result.Sentences)
	assert.Empty(t, result.Exercises)
	assert.Empty(t, result.PlagiarismMatches)

	// Even with nothing scored, the breakdown reports configured weights.
	w := domain.DefaultEngineSettings().Weights
	assert.Equal(t, w.Uniformity, result.AIBreakdown.Uniformity.Weight)
	assert.Equal(t, w.Burstiness, result.AIBreakdown.Burstiness.Weight)
	assert.Equal(t, w.VocabRichness, result.AIBreakdown.VocabRichness.Weight)
	assert.Equal(t, w.TransitionDensity, result.AIBreakdown.TransitionDensity.Weight)
	assert.Equal(t, w.FillerDensity, result.AIBreakdown.FillerDensity.Weight)
	assert.Equal(t, 0.0, result.AIBreakdown.Uniformity.Score)
}

func TestAnalyze_Deterministic(t *testing.T) {
	// Multiple corpus documents with overlapping vocabulary force the
	// TF-IDF accumulations through map-backed term vectors, where any
	// iteration-order sensitivity shows up as last-ULP score drift.
	store := &mockCorpusStore{entries: []domain.CorpusEntry{
		corpusEntry("ref-1", "The industrial revolution transformed manufacturing across Europe during the nineteenth century."),
		corpusEntry("ref-2", "Factories replaced workshops as manufacturing concentrated in the growing industrial cities of Europe."),
		corpusEntry("ref-3", "Urban infrastructure lagged behind the rapid growth of factory towns across the continent."),
	}}
	svc := newTestAnalysisService(t, store)

	text := "Furthermore, the industrial revolution transformed manufacturing across Europe. " +
		"Workers moved from farms to factories in great numbers. " +
		"Consequently, cities grew faster than their infrastructure."

	first, err := svc.Analyze(context.Background(), text, driving.AnalyzeOptions{})
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := svc.Analyze(context.Background(), text, driving.AnalyzeOptions{})
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		require.Equal(t, string(firstJSON), string(againJSON), "run %d diverged", i)
	}
}

func TestAnalyze_ExactDuplicate(t *testing.T) {
	text := "The committee reviewed all seventeen proposals before the deadline passed. " +
		"Each submission received two independent evaluations from the panel. " +
		"Final rankings were published on the department website."
	store := &mockCorpusStore{entries: []domain.CorpusEntry{corpusEntry("ref-1", text)}}
	svc := newTestAnalysisService(t, store)

	result, err := svc.Analyze(context.Background(), text, driving.AnalyzeOptions{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.PlagiarismScore, 0.95)

	found := false
	for _, m := range result.PlagiarismMatches {
		if m.SourceID == "ref-1" && m.Score >= 0.95 {
			found = true
		}
	}
	assert.True(t, found, "expected a high-score match for ref-1")
}

func TestAnalyze_MalformedCorpusEntriesSkipped(t *testing.T) {
	store := &mockCorpusStore{entries: []domain.CorpusEntry{
		{ID: "", Text: "entry without an id"},
		{ID: "blank", Text: "   "},
		corpusEntry("good", "A perfectly ordinary reference document about garden birds."),
	}}
	svc := newTestAnalysisService(t, store)

	result, err := svc.Analyze(context.Background(),
		"A perfectly ordinary reference document about garden birds.",
		driving.AnalyzeOptions{})
	require.NoError(t, err)
	for _, m := range result.PlagiarismMatches {
		assert.NotEqual(t, "", m.SourceID)
		assert.NotEqual(t, "blank", m.SourceID)
	}
	assert.Greater(t, result.PlagiarismScore, 0.5)
}

func TestAnalyze_PerCallCorpusOverride(t *testing.T) {
	store := &mockCorpusStore{entries: []domain.CorpusEntry{
		corpusEntry("stored", "Stored corpus text that should be ignored for this call entirely."),
	}}
	svc := newTestAnalysisService(t, store)

	text := "An essay about migratory patterns of arctic terns over open water. " +
		"They cover astonishing distances every single year. " +
		"No other bird travels farther between seasons."
	result, err := svc.Analyze(context.Background(), text, driving.AnalyzeOptions{
		Corpus: []domain.CorpusEntry{corpusEntry("override", text)},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.PlagiarismScore, 0.95)
	require.NotEmpty(t, result.PlagiarismMatches)
	assert.Equal(t, "override", result.PlagiarismMatches[0].SourceID)
}

func TestAnalyze_SnapshotVersionAdvancesOnInvalidation(t *testing.T) {
	store := &mockCorpusStore{entries: []domain.CorpusEntry{
		corpusEntry("ref-1", "Reference one talks about rivers and their seasonal floods."),
	}}
	svc := newTestAnalysisService(t, store)

	text := "A short note about rivers. It mentions seasonal floods in passing. Nothing else of note happens."
	first, err := svc.Analyze(context.Background(), text, driving.AnalyzeOptions{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.CorpusVersion)

	// Unchanged corpus reuses the cached snapshot.
	again, err := svc.Analyze(context.Background(), text, driving.AnalyzeOptions{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), again.CorpusVersion)

	store.entries = append(store.entries,
		corpusEntry("ref-2", "Reference two covers dams, levees and flood control."))
	svc.InvalidateCorpus()

	after, err := svc.Analyze(context.Background(), text, driving.AnalyzeOptions{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), after.CorpusVersion)
}

func TestAnalyze_SavesHistoryWhenRequested(t *testing.T) {
	history := &mockHistoryStore{}
	svc := newTestAnalysisService(t, &mockCorpusStore{})
	svc.SetHistoryStore(history)

	text := "One plain sentence for the record. Another follows right behind it. A third rounds out the set."
	_, err := svc.Analyze(context.Background(), text, driving.AnalyzeOptions{Title: "note", Save: true})
	require.NoError(t, err)

	require.Len(t, history.records, 1)
	assert.Equal(t, "note", history.records[0].Title)
	assert.Equal(t, text, history.records[0].Text)
	assert.NotEmpty(t, history.records[0].ID)
}

func TestAnalyze_NoSaveWithoutFlag(t *testing.T) {
	history := &mockHistoryStore{}
	svc := newTestAnalysisService(t, &mockCorpusStore{})
	svc.SetHistoryStore(history)

	_, err := svc.Analyze(context.Background(), "Some text here. More text there. Even more over here.",
		driving.AnalyzeOptions{Save: false})
	require.NoError(t, err)
	assert.Empty(t, history.records)
}

func TestAnalyze_TransitionMonotonicity(t *testing.T) {
	svc := newTestAnalysisService(t, &mockCorpusStore{})

	base := "The data shows a clear trend. Teams adjusted their plans. Cities grew faster than expected. Budgets held steady."
	heavier := "Furthermore, the data shows a clear trend. Moreover, teams adjusted their plans. " +
		"Consequently, cities grew faster than expected. Therefore, budgets held steady."

	baseResult, err := svc.Analyze(context.Background(), base, driving.AnalyzeOptions{})
	require.NoError(t, err)
	heavierResult, err := svc.Analyze(context.Background(), heavier, driving.AnalyzeOptions{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t,
		heavierResult.AIBreakdown.TransitionDensity.Score,
		baseResult.AIBreakdown.TransitionDensity.Score)
	assert.GreaterOrEqual(t, heavierResult.AIScore, baseResult.AIScore)
}
