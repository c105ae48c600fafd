package driving

import (
	"context"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

// AnalyzeOptions configures one analysis call.
type AnalyzeOptions struct {
	// Title labels the submission in persisted history.
	Title string

	// Save persists the result to the history store when one is
	// configured.
	Save bool

	// Corpus, when non-nil, replaces the stored corpus for this call.
	// Useful for callers that manage their own reference documents.
	Corpus []domain.CorpusEntry
}

// AnalysisService runs the full analysis pipeline over a submission.
type AnalysisService interface {
	// Analyze segments, scores and classifies the given text against
	// the current corpus snapshot. Degenerate input (empty, very short)
	// yields a low-confidence result, never an error.
	Analyze(ctx context.Context, text string, opts AnalyzeOptions) (*domain.AnalysisResult, error)
}

// CorpusService manages the reference corpus.
type CorpusService interface {
	// Add stores a new corpus entry from raw text.
	Add(ctx context.Context, label, text string) (*domain.CorpusEntry, error)

	// AddFile loads a file (txt, md, pdf) and stores it as an entry.
	AddFile(ctx context.Context, path string) (*domain.CorpusEntry, error)

	// List returns all entries in insertion order.
	List(ctx context.Context) ([]domain.CorpusEntry, error)

	// Remove deletes an entry by ID.
	Remove(ctx context.Context, id string) error

	// SyncDir upserts an entry for every supported file in dir.
	SyncDir(ctx context.Context, dir string) error
}

// HistoryService exposes persisted analysis runs.
type HistoryService interface {
	// Recent returns the most recent analysis records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)
}
