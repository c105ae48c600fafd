// Package sqlite persists the corpus and analysis history in a local
// SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/inklight-labs/inklight-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// corpus and history store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.inklight/data/inklight.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".inklight", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "inklight.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CorpusStore returns a CorpusStore interface backed by this store.
func (s *Store) CorpusStore() driven.CorpusStore {
	return &corpusStore{store: s}
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// migrate applies every embedded .up.sql file newer than the recorded
// schema version, in filename order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}

	var pending []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			pending = append(pending, entry.Name())
		}
	}
	sort.Strings(pending)

	for _, name := range pending {
		// Filenames carry the version, e.g. "001_initial.up.sql".
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Corpus Store ====================

// corpusStore implements driven.CorpusStore.
type corpusStore struct {
	store *Store
}

var _ driven.CorpusStore = (*corpusStore)(nil)

// Save stores or updates a corpus entry. New entries take the next
// position so listing preserves insertion order; updates keep theirs.
func (s *corpusStore) Save(ctx context.Context, entry *domain.CorpusEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO corpus_entries (id, label, text, position, created_at)
		VALUES (?, ?, ?,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM corpus_entries),
			?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			text = excluded.text
	`, entry.ID, entry.Label, entry.Text, entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving corpus entry: %w", err)
	}
	return nil
}

// Get retrieves an entry by ID.
func (s *corpusStore) Get(ctx context.Context, id string) (*domain.CorpusEntry, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, label, text, created_at
		FROM corpus_entries WHERE id = ?
	`, id)

	var entry domain.CorpusEntry
	var createdAt sql.NullTime
	if err := row.Scan(&entry.ID, &entry.Label, &entry.Text, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning corpus entry: %w", err)
	}
	if createdAt.Valid {
		entry.CreatedAt = createdAt.Time
	}
	return &entry, nil
}

// List returns all entries in insertion order.
func (s *corpusStore) List(ctx context.Context) ([]domain.CorpusEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, label, text, created_at
		FROM corpus_entries ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("listing corpus entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.CorpusEntry
	for rows.Next() {
		var entry domain.CorpusEntry
		var createdAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.Label, &entry.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning corpus entry: %w", err)
		}
		if createdAt.Valid {
			entry.CreatedAt = createdAt.Time
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating corpus entries: %w", err)
	}
	return entries, nil
}

// Delete removes an entry.
func (s *corpusStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM corpus_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting corpus entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ==================== History Store ====================

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// SaveAnalysis stores one analysis record. The full result is kept as
// a JSON column so the schema stays stable as scoring evolves.
func (s *historyStore) SaveAnalysis(ctx context.Context, rec *domain.AnalysisRecord) error {
	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO analyses (id, title, text, result, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			text = excluded.text,
			result = excluded.result
	`, rec.ID, rec.Title, rec.Text, string(resultJSON), rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

// ListAnalyses returns the most recent records, newest first.
func (s *historyStore) ListAnalyses(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, text, result, created_at
		FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var records []domain.AnalysisRecord
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return records, nil
}

// GetAnalysis retrieves a record by ID.
func (s *historyStore) GetAnalysis(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, text, result, created_at
		FROM analyses WHERE id = ?
	`, id)
	rec, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*domain.AnalysisRecord, error) {
	var rec domain.AnalysisRecord
	var resultJSON string
	var createdAt sql.NullTime
	if err := row.Scan(&rec.ID, &rec.Title, &rec.Text, &resultJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &rec.Result); err != nil {
		return nil, fmt.Errorf("unmarshaling result: %w", err)
	}
	if createdAt.Valid {
		rec.CreatedAt = createdAt.Time
	}
	return &rec, nil
}
