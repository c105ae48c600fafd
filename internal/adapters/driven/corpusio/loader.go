// Package corpusio loads reference documents from disk so they can be
// added to the corpus. Plain text and Markdown are read as-is; PDF text
// is extracted page by page.
package corpusio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/inklight-labs/inklight-cli/internal/core/ports/driven"
)

// Loader implements driven.FileLoader for .txt, .md and .pdf files.
type Loader struct{}

var _ driven.FileLoader = (*Loader)(nil)

func NewLoader() *Loader {
	return &Loader{}
}

// Supports reports whether the file extension is one the loader handles.
func (l *Loader) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".markdown", ".pdf":
		return true
	}
	return false
}

// Load reads the file and returns its base name (without extension) as
// the label and the extracted plain text.
func (l *Loader) Load(path string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var (
		text string
		err  error
	)
	switch ext {
	case ".txt", ".md", ".markdown":
		text, err = loadPlainText(path)
	case ".pdf":
		text, err = loadPDF(path)
	default:
		return "", "", fmt.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return "", "", err
	}
	return label, text, nil
}

func loadPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

func loadPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}
