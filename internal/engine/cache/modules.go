package cache

import (
	"fmt"

	"github.com/xwine/fastpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// GetModule returns the cached module for the location, or nil when no
// valid cached module exists. Every build dependency recorded for the
// module is re-validated against the current file state; a single digest
// mismatch evicts the module. An evicted module is gone for the rest of the
// run even if the mismatching file later reverts.
func (c *Cache) GetModule(loc domain.Location) (*domain.Module, error) {
	key := loc.CanonicalKey()

	c.mu.RLock()
	mod, ok := c.modules[key]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	for path, digest := range mod.BuildDependencies {
		entry, err := c.GetFileOrEmpty(path)
		if err != nil {
			return nil, err
		}
		if entry.Digest != digest {
			c.mu.Lock()
			delete(c.modules, key)
			c.mu.Unlock()
			c.deps.Log.Warn(fmt.Sprintf("module %s evicted: dependency %s changed", key, path))
			return nil, nil
		}
	}

	ws, err := c.deps.Workspaces.FromSerialized(mod.Content)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkspaceDecodeFailed.Error())
	}
	mod.Workspace = ws

	return &mod, nil
}

// RecordModule stores the module under its location key with the given
// serialized workspace content. Modules at pseudo-locations are never
// stored: they have no filesystem identity to validate against on a later
// run.
func (c *Cache) RecordModule(mod domain.Module, content string) {
	if !mod.Location.Cacheable() {
		return
	}

	mod.Content = content
	mod.Workspace = nil

	c.mu.Lock()
	defer c.mu.Unlock()
	c.modules[mod.Location.CanonicalKey()] = mod
}
