package services

import (
	"sync"

	"github.com/inklight-labs/inklight-cli/internal/core/domain"
	"github.com/inklight-labs/inklight-cli/internal/detectors/plagiarism"
	"github.com/inklight-labs/inklight-cli/internal/logger"
)

// snapshotCache guards the current corpus snapshot. Readers take the
// pointer under a read lock and keep using that snapshot for the whole
// analysis even if the corpus changes mid-flight; writers build the
// replacement outside the lock and swap it in atomically.
type snapshotCache struct {
	mu      sync.RWMutex
	current *plagiarism.Snapshot
	version uint64
}

// get returns the current snapshot, or nil when the cache is stale.
func (c *snapshotCache) get() *plagiarism.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// invalidate drops the current snapshot so the next reader rebuilds.
func (c *snapshotCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// publish builds a snapshot from entries and makes it current. The
// version counter only moves forward, so a pinned reader can always
// tell which corpus generation produced its scores.
func (c *snapshotCache) publish(entries []domain.CorpusEntry, phraseWords int) *plagiarism.Snapshot {
	c.mu.Lock()
	version := c.version + 1
	c.version = version
	c.mu.Unlock()

	// Build outside the lock; indexing a large corpus must not block
	// readers of the previous snapshot.
	snap := plagiarism.BuildSnapshot(entries, version, phraseWords)
	logger.Debug("Published corpus snapshot v%d with %d documents", version, snap.Len())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version == version {
		c.current = snap
	}
	return snap
}
