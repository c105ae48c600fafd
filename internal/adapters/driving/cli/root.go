// Package cli implements the inklight command-line interface.
// Commands are thin: they parse flags, call driving ports and render
// the result. All behavior lives in the core services.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/inklight-labs/inklight-cli/internal/core/ports/driving"
	"github.com/inklight-labs/inklight-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services the commands drive. Set via SetServices before Execute.
var (
	analysisService driving.AnalysisService
	corpusService   driving.CorpusService
	historyService  driving.HistoryService
	settingsService driving.SettingsService

	// corpusWatchRun blocks watching a corpus directory until the
	// context is cancelled. Nil when watching is not wired.
	corpusWatchRun func(ctx context.Context, dir string) error
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inklight",
	Short: "Writing integrity analysis from your terminal",
	Long: `Inklight analyzes text for plagiarism signals and AI-authorship
patterns, flags machine-like sentences, and suggests rewrites and
exercises to make writing sound more human.

All analysis runs locally against your own reference corpus. Nothing
is sent over the network.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services bundles everything the CLI needs from the core.
type Services struct {
	Analysis driving.AnalysisService
	Corpus   driving.CorpusService
	History  driving.HistoryService
	Settings driving.SettingsService

	// WatchCorpus, when set, enables the corpus watch command.
	WatchCorpus func(ctx context.Context, dir string) error
}

// SetServices injects the core services the commands call.
func SetServices(s Services) {
	analysisService = s.Analysis
	corpusService = s.Corpus
	historyService = s.History
	settingsService = s.Settings
	corpusWatchRun = s.WatchCorpus
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, so long-running
// commands (serve, mcp serve, corpus watch) stop on cancellation.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
