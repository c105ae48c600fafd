package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driven"
)

// Ensure LexiconStore implements the interface.
var _ driven.LexiconStore = (*LexiconStore)(nil)

// LexiconStore persists the phrase lists as a TOML file next to the
// main config, so users can swap lexicons per locale or domain without
// rebuilding the binary.
type LexiconStore struct {
	filePath string
}

// NewLexiconStore creates a lexicon store under configDir.
// If configDir is empty, defaults to ~/.inklight/lexicon.toml.
func NewLexiconStore(configDir string) (*LexiconStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".inklight")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &LexiconStore{
		filePath: filepath.Join(configDir, "lexicon.toml"),
	}, nil
}

// Load reads the lexicon file. A missing file yields the built-in
// default lexicon; a present but unusable one is an error so typos
// don't silently degrade every analysis.
func (s *LexiconStore) Load() (domain.Lexicon, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultLexicon(), nil
		}
		return domain.Lexicon{}, fmt.Errorf("read lexicon: %w", err)
	}

	var lex domain.Lexicon
	if err := toml.Unmarshal(data, &lex); err != nil {
		return domain.Lexicon{}, fmt.Errorf("parse lexicon: %w", err)
	}
	if err := lex.Validate(); err != nil {
		return domain.Lexicon{}, fmt.Errorf("lexicon %s: %w", s.filePath, err)
	}
	return lex, nil
}

// Save persists the lexicon.
func (s *LexiconStore) Save(lex domain.Lexicon) error {
	if err := lex.Validate(); err != nil {
		return fmt.Errorf("validate lexicon: %w", err)
	}
	data, err := toml.Marshal(lex)
	if err != nil {
		return fmt.Errorf("marshal lexicon: %w", err)
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the lexicon file path.
func (s *LexiconStore) Path() string {
	return s.filePath
}
