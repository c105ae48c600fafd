package services

import (
	"context"
	"fmt"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driven"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// defaultHistoryLimit caps listings when the caller passes no limit.
const defaultHistoryLimit = 20

// HistoryService exposes persisted analysis runs.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns the most recent records, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.store.ListAnalyses(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return records, nil
}
