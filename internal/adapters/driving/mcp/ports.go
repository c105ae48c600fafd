package mcp

import (
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Analysis runs the analysis pipeline.
	Analysis driving.AnalysisService

	// Corpus manages reference-corpus entries.
	Corpus driving.CorpusService

	// History lists past analysis runs.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	// Corpus and History are optional; their surfaces degrade to empty.
	return nil
}
