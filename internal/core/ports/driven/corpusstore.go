package driven

import (
	"context"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
)

// CorpusStore persists reference-corpus entries.
// List order is insertion order; it breaks score ties deterministically.
type CorpusStore interface {
	// Save stores or updates a corpus entry.
	Save(ctx context.Context, entry *domain.CorpusEntry) error

	// Get retrieves an entry by ID.
	Get(ctx context.Context, id string) (*domain.CorpusEntry, error)

	// List returns all entries in insertion order.
	List(ctx context.Context) ([]domain.CorpusEntry, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id string) error
}

// HistoryStore persists completed analysis runs. Persistence is an
// adapter concern; the engine never reads its own history.
type HistoryStore interface {
	// SaveAnalysis stores one analysis record.
	SaveAnalysis(ctx context.Context, rec *domain.AnalysisRecord) error

	// ListAnalyses returns the most recent records, newest first.
	ListAnalyses(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)

	// GetAnalysis retrieves a record by ID.
	GetAnalysis(ctx context.Context, id string) (*domain.AnalysisRecord, error)
}

// LexiconStore loads and saves the phrase-list configuration.
type LexiconStore interface {
	// Load reads the lexicon, falling back to the built-in default
	// when none has been saved.
	Load() (domain.Lexicon, error)

	// Save persists the lexicon.
	Save(lex domain.Lexicon) error
}
