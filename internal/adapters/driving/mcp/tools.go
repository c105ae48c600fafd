package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
)

// AnalyzeInput is the input schema for the analyze tool.
type AnalyzeInput struct {
	Text  string `json:"text" jsonschema:"the text to analyze for plagiarism and AI authorship signals"`
	Title string `json:"title,omitempty" jsonschema:"optional label for the submission"`
	Save  bool   `json:"save,omitempty" jsonschema:"persist the result to analysis history"`
}

// AnalyzeOutput is the output schema for the analyze tool.
type AnalyzeOutput struct {
	PlagiarismScore float64          `json:"plagiarism_score"`
	AIScore         float64          `json:"ai_score"`
	AIBand          string           `json:"ai_band"`
	AIBandLabel     string           `json:"ai_band_label"`
	LowConfidence   bool             `json:"low_confidence"`
	Matches         []MatchOutput    `json:"matches,omitempty"`
	Sentences       []SentenceOutput `json:"sentences,omitempty"`
	Rewrites        []RewriteOutput  `json:"rewrites,omitempty"`
	Exercises       []string         `json:"exercises,omitempty"`
}

// MatchOutput represents one similarity match.
type MatchOutput struct {
	SourceID string  `json:"source_id"`
	Kind     string  `json:"kind"`
	Score    float64 `json:"score"`
}

// SentenceOutput represents one flagged sentence.
type SentenceOutput struct {
	Index    int      `json:"index"`
	Tags     []string `json:"tags"`
	Severity int      `json:"severity"`
}

// RewriteOutput represents one rewrite suggestion.
type RewriteOutput struct {
	Index     int    `json:"index"`
	Original  string `json:"original"`
	Rewritten string `json:"rewritten"`
}

// AddEntryInput is the input schema for the corpus_add tool.
type AddEntryInput struct {
	Label string `json:"label,omitempty" jsonschema:"human-readable name for the reference document"`
	Text  string `json:"text" jsonschema:"the full reference text to compare future submissions against"`
}

// AddEntryOutput is the output schema for the corpus_add tool.
type AddEntryOutput struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze",
		Description: "Analyze text for plagiarism and AI-authorship signals",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "corpus_add",
		Description: "Add a reference document to the plagiarism corpus",
	}, s.handleCorpusAdd)
}

// handleAnalyze handles the analyze tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	result, err := s.ports.Analysis.Analyze(ctx, input.Text, driving.AnalyzeOptions{
		Title: input.Title,
		Save:  input.Save,
	})
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	output := AnalyzeOutput{
		PlagiarismScore: result.PlagiarismScore,
		AIScore:         result.AIScore,
		AIBand:          string(result.AIBand),
		AIBandLabel:     result.AIBand.Description(),
		LowConfidence:   result.LowConfidence,
	}

	for _, m := range result.PlagiarismMatches {
		output.Matches = append(output.Matches, MatchOutput{
			SourceID: m.SourceID,
			Kind:     string(m.Kind),
			Score:    m.Score,
		})
	}

	for _, v := range result.Sentences {
		if len(v.Tags) == 0 {
			continue
		}
		tags := make([]string, len(v.Tags))
		for i, tag := range v.Tags {
			tags[i] = string(tag)
		}
		output.Sentences = append(output.Sentences, SentenceOutput{
			Index:    v.Index,
			Tags:     tags,
			Severity: v.Severity,
		})
	}

	for _, r := range result.Rewrites {
		output.Rewrites = append(output.Rewrites, RewriteOutput{
			Index:     r.Index,
			Original:  r.Original,
			Rewritten: r.Rewritten,
		})
	}

	for _, ex := range result.Exercises {
		output.Exercises = append(output.Exercises, ex.Name)
	}

	return nil, output, nil
}

// handleCorpusAdd handles the corpus_add tool invocation.
func (s *Server) handleCorpusAdd(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddEntryInput,
) (*mcp.CallToolResult, AddEntryOutput, error) {
	if s.ports.Corpus == nil {
		return nil, AddEntryOutput{}, errors.New("corpus service not configured")
	}

	entry, err := s.ports.Corpus.Add(ctx, input.Label, input.Text)
	if err != nil {
		return nil, AddEntryOutput{}, err
	}

	return nil, AddEntryOutput{ID: entry.ID, Label: entry.Label}, nil
}
