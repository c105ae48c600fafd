// Command inklight is the entry point for the Inklight CLI. It wires
// the driven adapters (config, lexicon, sqlite storage, file loading)
// into the core services and hands them to the command layer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/inklight-labs/inklight-cli/internal/adapters/driven/config/file"
	"github.com/inklight-labs/inklight-cli/internal/adapters/driven/corpusio"
	"github.com/inklight-labs/inklight-cli/internal/adapters/driven/storage/sqlite"
	"github.com/inklight-labs/inklight-cli/internal/adapters/driving/cli"
	"github.com/inklight-labs/inklight-cli/internal/core/services"
	"github.com/inklight-labs/inklight-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}

	lexiconStore, err := file.NewLexiconStore("")
	if err != nil {
		return fmt.Errorf("lexicon store: %w", err)
	}
	lexicon, err := lexiconStore.Load()
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Closing storage: %v", err)
		}
	}()

	analysisService, err := services.NewAnalysisService(store.CorpusStore(), *settings, lexicon)
	if err != nil {
		return err
	}
	analysisService.SetHistoryStore(store.HistoryStore())

	corpusService := services.NewCorpusService(store.CorpusStore(), corpusio.NewLoader())
	corpusService.SetAnalysisService(analysisService)

	cli.SetServices(cli.Services{
		Analysis: analysisService,
		Corpus:   corpusService,
		History:  services.NewHistoryService(store.HistoryStore()),
		Settings: settingsService,
		WatchCorpus: func(ctx context.Context, dir string) error {
			return services.NewCorpusWatcher(dir, corpusService).Run(ctx)
		},
	})
	cli.SetVersion(version)

	return cli.ExecuteContext(ctx)
}
