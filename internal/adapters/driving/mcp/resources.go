package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for corpus resources.
const uriScheme = "corpus://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing corpus entries.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "entries",
		Name:        "entries",
		Description: "List of all reference-corpus entries",
		MIMEType:    "application/json",
	}, s.handleEntriesResource)

	// Template for the full text of one entry.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "entries/{entryId}",
		Name:        "entry-text",
		Description: "Full text of a reference-corpus entry",
		MIMEType:    "text/plain",
	}, s.handleEntryTextResource)
}

// handleEntriesResource returns a list of all corpus entries.
func (s *Server) handleEntriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	entries, err := s.ports.Corpus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing corpus entries: %w", err)
	}

	// Build simplified entry list; full text comes from the template.
	type entryInfo struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Bytes int    `json:"bytes"`
	}

	infos := make([]entryInfo, len(entries))
	for i, e := range entries {
		infos[i] = entryInfo{
			ID:    e.ID,
			Label: e.Label,
			Bytes: len(e.Text),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling entries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleEntryTextResource returns the full text of one corpus entry.
func (s *Server) handleEntryTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entryID := extractEntryID(req.Params.URI)
	if entryID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entries, err := s.ports.Corpus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing corpus entries: %w", err)
	}
	for _, e := range entries {
		if e.ID == entryID {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     e.Text,
				}},
			}, nil
		}
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractEntryID extracts the entry ID from a URI like corpus://entries/{entryId}.
func extractEntryID(uri string) string {
	const prefix = uriScheme + "entries/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
