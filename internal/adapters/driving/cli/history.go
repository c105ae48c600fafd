package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past analysis runs",
	Long: `Lists analyses persisted with --save, newest first. Requires the
sqlite store; without it, nothing is recorded.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history not configured")
	}

	records, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No saved analyses. Run 'inklight analyze --save' to record one.")
		return nil
	}

	for _, rec := range records {
		title := rec.Title
		if title == "" {
			title = rec.ID
		}
		cmd.Printf("  %s  %s\n", rec.CreatedAt.Format("2006-01-02 15:04"), title)
		cmd.Printf("      plagiarism %.0f%%  ai %.0f%% (%s)\n",
			rec.Result.PlagiarismScore*100,
			rec.Result.AIScore*100,
			rec.Result.AIBand.Description())
	}
	return nil
}
