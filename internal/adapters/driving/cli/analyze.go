package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
)

var (
	analyzeJSON  bool
	analyzeSave  bool
	analyzeTitle string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze text for plagiarism and AI-authorship signals",
	Long: `Runs the full analysis pipeline over a submission: plagiarism
scoring against the reference corpus, AI-likelihood estimation with a
per-component breakdown, sentence-level issue tags, rewrite
suggestions and exercise recommendations.

Reads from the given file, or from stdin when no file is provided.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the full result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "persist the result to history")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "label for the submission in history")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	text, err := readSubmission(args)
	if err != nil {
		return err
	}

	result, err := analysisService.Analyze(cmd.Context(), text, driving.AnalyzeOptions{
		Title: analyzeTitle,
		Save:  analyzeSave,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	renderReport(cmd, text, result)
	return nil
}

func readSubmission(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// Report styles. Band colors run green (human) to red (strong AI).
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("173"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func bandStyle(band domain.AIBand) lipgloss.Style {
	switch band {
	case domain.AIBandHuman:
		return successStyle
	case domain.AIBandMixed:
		return warnStyle
	default:
		return dangerStyle
	}
}

func renderReport(cmd *cobra.Command, text string, result *domain.AnalysisResult) {
	cmd.Println(titleStyle.Render("Analysis Report"))
	cmd.Println()

	if result.LowConfidence {
		cmd.Println(warnStyle.Render("Low confidence: the input is too short for reliable scoring."))
		cmd.Println()
	}

	cmd.Printf("  Plagiarism: %s\n", scoreLabel(result.PlagiarismScore))
	cmd.Printf("  AI likelihood: %s  %s\n",
		scoreLabel(result.AIScore),
		bandStyle(result.AIBand).Render(result.AIBand.Description()))
	cmd.Println()

	renderBreakdown(cmd, result.AIBreakdown)
	renderMatches(cmd, result.PlagiarismMatches)
	renderSentences(cmd, text, result.Sentences)
	renderRewrites(cmd, result.Rewrites)
	renderExercises(cmd, result.Exercises)
}

func scoreLabel(score float64) string {
	return fmt.Sprintf("%5.1f%%", score*100)
}

func renderBreakdown(cmd *cobra.Command, b domain.AIBreakdown) {
	cmd.Println(titleStyle.Render("AI Score Breakdown"))
	components := []struct {
		name string
		c    domain.ScoreComponent
	}{
		{"Sentence uniformity", b.Uniformity},
		{"Low burstiness", b.Burstiness},
		{"Vocabulary deficit", b.VocabRichness},
		{"Transition density", b.TransitionDensity},
		{"Filler density", b.FillerDensity},
	}
	for _, comp := range components {
		cmd.Printf("  %-22s %s  %s\n",
			comp.name,
			scoreLabel(comp.c.Score),
			mutedStyle.Render(fmt.Sprintf("(weight %.0f%%)", comp.c.Weight*100)))
	}
	cmd.Println()
}

func renderMatches(cmd *cobra.Command, matches []domain.SimilarityMatch) {
	if len(matches) == 0 {
		return
	}

	cmd.Println(titleStyle.Render("Similarity Matches"))
	for _, m := range matches {
		source := m.SourceID
		if m.SourceID == domain.MatchSourceSelf {
			source = "internal repetition"
		}
		cmd.Printf("  [%s] %s (%.0f%%)\n", m.Kind, source, m.Score*100)
	}
	cmd.Println()
}

func renderSentences(cmd *cobra.Command, text string, verdicts []domain.SentenceVerdict) {
	flagged := 0
	for _, v := range verdicts {
		if len(v.Tags) > 0 {
			flagged++
		}
	}
	if flagged == 0 {
		cmd.Println(successStyle.Render("No sentence-level issues found."))
		cmd.Println()
		return
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("Flagged Sentences (%d of %d)", flagged, len(verdicts))))
	for _, v := range verdicts {
		if len(v.Tags) == 0 {
			continue
		}

		tags := make([]string, len(v.Tags))
		for i, tag := range v.Tags {
			tags[i] = string(tag)
		}
		cmd.Printf("  %d. %s\n", v.Index+1, truncate(text[v.Span.Start:v.Span.End], 70))
		cmd.Printf("     %s\n", tagStyle.Render(strings.Join(tags, ", ")))
		for _, fix := range v.Fixes {
			cmd.Printf("     %s %s\n", mutedStyle.Render("fix:"), fix.Description)
		}
	}
	cmd.Println()
}

func renderRewrites(cmd *cobra.Command, rewrites []domain.RewriteSuggestion) {
	if len(rewrites) == 0 {
		return
	}

	cmd.Println(titleStyle.Render("Suggested Rewrites"))
	for _, r := range rewrites {
		cmd.Printf("  %d. %s\n", r.Index+1, mutedStyle.Render(truncate(r.Original, 70)))
		cmd.Printf("     %s %s\n", successStyle.Render("->"), truncate(r.Rewritten, 70))
	}
	cmd.Println()
}

func renderExercises(cmd *cobra.Command, exercises []domain.ExerciseRecommendation) {
	if len(exercises) == 0 {
		return
	}

	cmd.Println(titleStyle.Render("Recommended Exercises"))
	for i, ex := range exercises {
		cmd.Printf("  %d. %s %s\n", i+1, ex.Name,
			mutedStyle.Render(fmt.Sprintf("[%s]", ex.Difficulty)))
		cmd.Printf("     %s\n", ex.Rationale)
	}
	cmd.Println()
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
