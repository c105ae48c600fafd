package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
)

// mockLoader accepts .txt files and returns their content.
type mockLoader struct{}

func (mockLoader) Supports(path string) bool {
	return strings.HasSuffix(path, ".txt")
}

func (mockLoader) Load(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return filepath.Base(path), string(data), nil
}

func TestCorpusAdd(t *testing.T) {
	store := &mockCorpusStore{}
	svc := NewCorpusService(store, nil)

	entry, err := svc.Add(context.Background(), "essay one", "Some reference text about moths.")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "essay one", entry.Label)
	assert.Len(t, store.entries, 1)
}

func TestCorpusAdd_EmptyTextRejected(t *testing.T) {
	svc := NewCorpusService(&mockCorpusStore{}, nil)

	_, err := svc.Add(context.Background(), "label", "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCorpusAdd_InvalidatesSnapshot(t *testing.T) {
	store := &mockCorpusStore{}
	analysis := newTestAnalysisService(t, store)
	svc := NewCorpusService(store, nil)
	svc.SetAnalysisService(analysis)

	// Prime the cache.
	_, err := analysis.Analyze(context.Background(),
		"Three sentences to get going. Here is the second one. And the third closes it out.",
		driving.AnalyzeOptions{})
	require.NoError(t, err)
	require.NotNil(t, analysis.cache.get())

	_, err = svc.Add(context.Background(), "new", "Freshly added reference text.")
	require.NoError(t, err)
	assert.Nil(t, analysis.cache.get(), "mutation must drop the cached snapshot")
}

func TestCorpusRemove(t *testing.T) {
	store := &mockCorpusStore{entries: []domain.CorpusEntry{corpusEntry("gone", "text")}}
	svc := NewCorpusService(store, nil)

	require.NoError(t, svc.Remove(context.Background(), "gone"))
	assert.Empty(t, store.entries)

	err := svc.Remove(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusAddFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.txt")
	require.NoError(t, os.WriteFile(path, []byte("File-backed reference text."), 0o600))

	store := &mockCorpusStore{}
	svc := NewCorpusService(store, mockLoader{})

	entry, err := svc.AddFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "ref.txt", entry.Label)
	assert.Equal(t, "File-backed reference text.", entry.Text)
}

func TestCorpusAddFile_UnsupportedFormat(t *testing.T) {
	svc := NewCorpusService(&mockCorpusStore{}, mockLoader{})

	_, err := svc.AddFile(context.Background(), "diagram.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestCorpusSyncDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("First reference."), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("Second reference."), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.bin"), []byte{0x01}, 0o600))

	store := &mockCorpusStore{}
	svc := NewCorpusService(store, mockLoader{})

	require.NoError(t, svc.SyncDir(context.Background(), dir))
	assert.Len(t, store.entries, 2)

	// Re-syncing upserts instead of duplicating.
	require.NoError(t, svc.SyncDir(context.Background(), dir))
	assert.Len(t, store.entries, 2)

	ids := map[string]bool{}
	for _, e := range store.entries {
		ids[e.ID] = true
	}
	assert.True(t, ids["file:a.txt"])
	assert.True(t, ids["file:b.txt"])
}
