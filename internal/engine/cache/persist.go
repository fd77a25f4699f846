package cache

import (
	"maps"

	"github.com/xwine/fastpack/internal/core/domain"
)

// Dump writes the current file and module entries to the snapshot store.
// In memory mode it is a no-op. The trust set is deliberately not part of
// the snapshot: the next run starts with zero trust and re-validates
// everything it touches.
func (c *Cache) Dump() error {
	if c.store == nil {
		return nil
	}

	c.mu.RLock()
	snap := &domain.Snapshot{
		Files:   maps.Clone(c.files),
		Modules: maps.Clone(c.modules),
	}
	c.mu.RUnlock()

	return c.store.Save(snap)
}
