package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driven"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
	"github.com/inklight-labs/inklight-cli/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService manages reference-corpus entries and keeps the
// analysis snapshot in sync with mutations.
type CorpusService struct {
	store    driven.CorpusStore
	loader   driven.FileLoader
	analysis *AnalysisService
}

// NewCorpusService creates a corpus service. The loader parameter is
// optional (can be nil when file import is not needed).
func NewCorpusService(store driven.CorpusStore, loader driven.FileLoader) *CorpusService {
	return &CorpusService{store: store, loader: loader}
}

// SetAnalysisService wires the analysis service whose corpus snapshot
// must be invalidated on mutation.
func (s *CorpusService) SetAnalysisService(analysis *AnalysisService) {
	s.analysis = analysis
}

// Add stores a new corpus entry from raw text.
func (s *CorpusService) Add(ctx context.Context, label, text string) (*domain.CorpusEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: corpus entry text is empty", domain.ErrInvalidInput)
	}
	if label == "" {
		label = "untitled"
	}

	entry := &domain.CorpusEntry{
		ID:        uuid.New().String(),
		Label:     label,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("save corpus entry: %w", err)
	}
	logger.Info("Added corpus entry %s (%q, %d bytes)", entry.ID, entry.Label, len(entry.Text))

	s.invalidate()
	return entry, nil
}

// AddFile loads a file through the configured loader and stores it.
func (s *CorpusService) AddFile(ctx context.Context, path string) (*domain.CorpusEntry, error) {
	label, text, err := s.loadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Add(ctx, label, text)
}

// List returns all entries in insertion order.
func (s *CorpusService) List(ctx context.Context) ([]domain.CorpusEntry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}
	return entries, nil
}

// Remove deletes an entry by ID.
func (s *CorpusService) Remove(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete corpus entry %s: %w", id, err)
	}
	logger.Info("Removed corpus entry %s", id)
	s.invalidate()
	return nil
}

// SyncDir imports every supported file under dir, upserting by a
// path-derived ID so repeated syncs update instead of duplicate. Used
// by watch mode.
func (s *CorpusService) SyncDir(ctx context.Context, dir string) error {
	if s.loader == nil {
		return fmt.Errorf("%w: no file loader configured", domain.ErrInvalidConfig)
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read corpus dir: %w", err)
	}

	logger.Section("Corpus Sync")
	synced := 0
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		path := filepath.Join(dir, de.Name())
		if !s.loader.Supports(path) {
			continue
		}
		label, text, err := s.loadFile(path)
		if err != nil {
			// One unreadable file must not abort the sync.
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}
		entry := &domain.CorpusEntry{
			ID:        "file:" + de.Name(),
			Label:     label,
			Text:      text,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.Save(ctx, entry); err != nil {
			return fmt.Errorf("save corpus entry %s: %w", entry.ID, err)
		}
		synced++
	}
	logger.Info("Synced %d corpus files from %s", synced, dir)

	s.invalidate()
	return nil
}

func (s *CorpusService) loadFile(path string) (string, string, error) {
	if s.loader == nil {
		return "", "", fmt.Errorf("%w: no file loader configured", domain.ErrInvalidConfig)
	}
	if !s.loader.Supports(path) {
		return "", "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
	label, text, err := s.loader.Load(path)
	if err != nil {
		return "", "", fmt.Errorf("load %s: %w", path, err)
	}
	return label, text, nil
}

func (s *CorpusService) invalidate() {
	if s.analysis != nil {
		s.analysis.InvalidateCorpus()
	}
}
