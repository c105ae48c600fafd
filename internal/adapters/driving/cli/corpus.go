package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	corpusAddLabel string
	corpusListJSON bool
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the reference corpus",
	Long: `The reference corpus is the set of documents submissions are
compared against for plagiarism scoring. Entries are stored locally;
nothing is ever fetched from the network.`,
	RunE: runCorpusList,
}

var corpusAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a reference document from text or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCorpusAdd,
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List corpus entries",
	RunE:  runCorpusList,
}

var corpusRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a corpus entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorpusRemove,
}

var corpusImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import a file or every supported file in a directory",
	Long: `Imports reference material into the corpus. Supported formats are
plain text, Markdown and PDF. Given a directory, every supported file
in it is imported; re-importing updates existing entries in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusImport,
}

var corpusWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and resync the corpus on changes",
	Long: `Watches a directory of reference documents and resyncs the corpus
whenever files are created, changed or removed. Rapid bursts of
filesystem events collapse into one resync. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusWatch,
}

func init() {
	corpusAddCmd.Flags().StringVar(&corpusAddLabel, "label", "", "human-readable name for the entry")
	corpusListCmd.Flags().BoolVar(&corpusListJSON, "json", false, "output entries as JSON")
	corpusCmd.AddCommand(corpusAddCmd)
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusRemoveCmd)
	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusWatchCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusAdd(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	entry, err := corpusService.Add(cmd.Context(), corpusAddLabel, text)
	if err != nil {
		return fmt.Errorf("add entry: %w", err)
	}

	cmd.Printf("Added %q (%s)\n", entry.Label, entry.ID)
	return nil
}

func runCorpusList(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	entries, err := corpusService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	if corpusListJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("Corpus is empty. Add entries with 'inklight corpus add' or 'inklight corpus import'.")
		return nil
	}

	cmd.Printf("%d entries:\n\n", len(entries))
	for _, e := range entries {
		cmd.Printf("  %s  %s (%d bytes)\n", e.ID, e.Label, len(e.Text))
	}
	return nil
}

func runCorpusRemove(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	if err := corpusService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}
	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		if err := corpusService.SyncDir(cmd.Context(), path); err != nil {
			return fmt.Errorf("import directory: %w", err)
		}
		cmd.Printf("Imported directory %s\n", path)
		return nil
	}

	entry, err := corpusService.AddFile(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("import file: %w", err)
	}
	cmd.Printf("Imported %q (%s)\n", entry.Label, entry.ID)
	return nil
}

func runCorpusWatch(cmd *cobra.Command, args []string) error {
	if corpusWatchRun == nil {
		return errors.New("corpus watching not configured")
	}
	return corpusWatchRun(cmd.Context(), args[0])
}
