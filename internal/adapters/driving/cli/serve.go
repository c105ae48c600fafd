package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inklight-labs/inklight-cli/internal/adapters/driving/httpapi"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts a local JSON API exposing analysis, corpus management,
history and settings.

Endpoints:
  POST   /api/analyze      run an analysis (save=true to persist)
  GET    /api/corpus       list corpus entries
  POST   /api/corpus       add a corpus entry
  DELETE /api/corpus/:id   remove a corpus entry
  GET    /api/history      list saved analyses
  GET    /api/settings     current engine settings
  PUT    /api/settings     replace engine settings
  GET    /healthz          liveness check`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8787, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	server, err := httpapi.NewServer(analysisService, corpusService, historyService, settingsService)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", servePort)
	fmt.Fprintf(cmd.OutOrStdout(), "Inklight API listening on http://localhost%s\n", addr)
	return server.Start(cmd.Context(), addr)
}
