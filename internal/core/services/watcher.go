package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/inklight-labs/inklight-cli/internal/logger"
)

// watchPollInterval is how often pending filesystem changes are
// checked against the rate limiter.
const watchPollInterval = 500 * time.Millisecond

// CorpusWatcher watches a directory of reference documents and resyncs
// the corpus when files change. Rapid bursts of filesystem events
// (editors write several times per save) collapse into one resync via
// a rate limiter.
type CorpusWatcher struct {
	dir     string
	corpus  *CorpusService
	limiter *rate.Limiter
}

// NewCorpusWatcher creates a watcher for dir. Resyncs are limited to
// one every two seconds.
func NewCorpusWatcher(dir string, corpus *CorpusService) *CorpusWatcher {
	return &CorpusWatcher{
		dir:     dir,
		corpus:  corpus,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Run syncs once, then blocks watching for changes until ctx is
// cancelled.
func (w *CorpusWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	logger.Info("Watching corpus directory %s", w.dir)
	if err := w.corpus.SyncDir(ctx, w.dir); err != nil {
		return err
	}

	dirty := false
	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if relevantEvent(event) {
				logger.Debug("Corpus change: %s %s", event.Op, event.Name)
				dirty = true
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", watchErr)

		case <-ticker.C:
			if !dirty || !w.limiter.Allow() {
				continue
			}
			dirty = false
			if err := w.corpus.SyncDir(ctx, w.dir); err != nil {
				logger.Warn("Corpus resync failed: %v", err)
			}
		}
	}
}

// relevantEvent filters out chmod noise.
func relevantEvent(event fsnotify.Event) bool {
	return event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}
