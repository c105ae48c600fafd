// Package mcp provides a Model Context Protocol server adapter so AI
// assistants can run analyses and inspect the reference corpus.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")
