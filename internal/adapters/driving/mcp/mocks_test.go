package mcp

import (
	"context"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	result   *domain.AnalysisResult
	err      error
	lastText string
	lastOpts driving.AnalyzeOptions
}

func (m *mockAnalysisService) Analyze(
	_ context.Context,
	text string,
	opts driving.AnalyzeOptions,
) (*domain.AnalysisResult, error) {
	m.lastText = text
	m.lastOpts = opts
	return m.result, m.err
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	entries []domain.CorpusEntry
	entry   *domain.CorpusEntry
	err     error
}

func (m *mockCorpusService) Add(_ context.Context, _, _ string) (*domain.CorpusEntry, error) {
	return m.entry, m.err
}

func (m *mockCorpusService) AddFile(_ context.Context, _ string) (*domain.CorpusEntry, error) {
	return m.entry, m.err
}

func (m *mockCorpusService) List(_ context.Context) ([]domain.CorpusEntry, error) {
	return m.entries, m.err
}

func (m *mockCorpusService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockCorpusService) SyncDir(_ context.Context, _ string) error {
	return m.err
}
