// Package memory provides in-memory implementations of the storage
// ports. Used in tests and for one-shot analyses where persistence
// isn't wanted.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory corpus store preserving insertion order.
type CorpusStore struct {
	mu      sync.RWMutex
	entries map[string]domain.CorpusEntry
	order   []string
}

// NewCorpusStore creates an empty in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		entries: make(map[string]domain.CorpusEntry),
	}
}

// Save stores or updates a corpus entry.
func (s *CorpusStore) Save(_ context.Context, entry *domain.CorpusEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.ID]; !exists {
		s.order = append(s.order, entry.ID)
	}
	s.entries[entry.ID] = *entry
	return nil
}

// Get retrieves an entry by ID.
func (s *CorpusStore) Get(_ context.Context, id string) (*domain.CorpusEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// List returns all entries in insertion order.
func (s *CorpusStore) List(_ context.Context) ([]domain.CorpusEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CorpusEntry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out, nil
}

// Delete removes an entry.
func (s *CorpusStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.entries, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory analysis history.
type HistoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.AnalysisRecord
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		records: make(map[string]domain.AnalysisRecord),
	}
}

// SaveAnalysis stores one analysis record.
func (s *HistoryStore) SaveAnalysis(_ context.Context, rec *domain.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

// ListAnalyses returns the most recent records, newest first.
func (s *HistoryStore) ListAnalyses(_ context.Context, limit int) ([]domain.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AnalysisRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetAnalysis retrieves a record by ID.
func (s *HistoryStore) GetAnalysis(_ context.Context, id string) (*domain.AnalysisRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}
