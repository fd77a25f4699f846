// Package cache implements the incremental cache for the bundler: a
// file-entry store validated against live filesystem state, a run-scoped
// trust set, a nearest-package resolver and a module store with transitive
// dependency-digest invalidation.
//
// A single Cache owns all mutable state. Accessors may be called from many
// goroutines; map access is guarded by one RWMutex and concurrent misses on
// the same path and observation level share a single validation via
// singleflight, so identical requests never race each other's writes.
package cache

import (
	"fmt"
	"sync"

	"github.com/xwine/fastpack/internal/core/domain"
	"github.com/xwine/fastpack/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Deps are the collaborators the cache consumes.
type Deps struct {
	Manifests  ports.ManifestParser
	Workspaces ports.WorkspaceLoader
	Digests    ports.Digester
	Log        ports.Logger

	// ManifestFile is the manifest filename searched for during
	// nearest-package resolution. Defaults to package.json.
	ManifestFile string
}

// Cache is the incremental cache layer. Construct with New; the zero value
// is not usable.
type Cache struct {
	deps  Deps
	store ports.SnapshotStore // nil in memory mode

	startedEmpty bool

	mu      sync.RWMutex
	files   map[string]domain.FileEntry
	modules map[string]domain.Module
	trusted map[string]struct{}

	flight singleflight.Group
}

// New creates a cache. A nil store selects memory mode; otherwise the
// snapshot is loaded synchronously before any request is served. The trust
// set always starts empty: trust never survives a process.
func New(deps Deps, store ports.SnapshotStore) (*Cache, error) {
	if deps.ManifestFile == "" {
		deps.ManifestFile = domain.ManifestFileName
	}

	c := &Cache{
		deps:         deps,
		store:        store,
		startedEmpty: true,
		files:        make(map[string]domain.FileEntry),
		modules:      make(map[string]domain.Module),
		trusted:      make(map[string]struct{}),
	}

	if store != nil {
		snap, found, err := store.Load()
		if err != nil {
			return nil, err
		}
		if found {
			c.startedEmpty = false
			if snap.Files != nil {
				c.files = snap.Files
			}
			if snap.Modules != nil {
				c.modules = snap.Modules
			}
		}
	}

	return c, nil
}

// StartedEmpty reports whether the cache had no snapshot to load: true in
// memory mode and when the snapshot file did not exist. An existing but
// empty snapshot reports false.
func (c *Cache) StartedEmpty() bool {
	return c.startedEmpty
}

// Untrust removes the path from the trust set so the next access
// re-validates against the filesystem. The cached entry itself is kept:
// if the content reverted, the digest comparison still avoids a spurious
// invalidation.
func (c *Cache) Untrust(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.trusted, path)
}

// Stats returns the number of cached file entries and module entries.
func (c *Cache) Stats() (files, modules int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.files), len(c.modules)
}

// SnapshotPath returns the snapshot file location, or the empty string in
// memory mode.
func (c *Cache) SnapshotPath() string {
	if c.store == nil {
		return ""
	}
	return c.store.Path()
}

// accessResult carries a validated entry through singleflight.
type accessResult struct {
	entry domain.FileEntry
	hit   bool
}

// access returns the current entry for path, observed at least at the
// requested level (for existing paths). hit reports whether the cached
// entry was served without re-reading anything beyond a stat.
func (c *Cache) access(path string, want domain.Level) (domain.FileEntry, bool, error) {
	if entry, ok := c.trustedEntry(path, want); ok {
		return entry, true, nil
	}

	// Concurrent misses on the same path and level share one validation.
	key := fmt.Sprintf("%d\x00%s", want, path)
	v, err, _ := c.flight.Do(key, func() (any, error) {
		// A concurrent caller may have validated while we waited.
		if entry, ok := c.trustedEntry(path, want); ok {
			return accessResult{entry: entry, hit: true}, nil
		}

		c.mu.RLock()
		cached := c.files[path]
		c.mu.RUnlock()

		entry, hit, err := c.revalidate(path, cached)
		if err != nil {
			return accessResult{}, err
		}

		entry, err = c.promote(path, entry, want)
		if err != nil {
			return accessResult{}, err
		}

		c.mu.Lock()
		c.files[path] = entry
		c.trusted[path] = struct{}{}
		c.mu.Unlock()

		return accessResult{entry: entry, hit: hit}, nil
	})
	if err != nil {
		return domain.FileEntry{}, false, err
	}

	res := v.(accessResult)
	return res.entry, res.hit, nil
}

// trustedEntry returns the cached entry when the path is trusted and the
// entry already carries enough data for the requested level. Non-existent
// trusted entries always qualify: there is nothing more to load.
func (c *Cache) trustedEntry(path string, want domain.Level) (domain.FileEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.trusted[path]; !ok {
		return domain.FileEntry{}, false
	}
	entry, ok := c.files[path]
	if !ok {
		return domain.FileEntry{}, false
	}
	if !entry.Exists || entry.Level >= want {
		return entry, true
	}
	return domain.FileEntry{}, false
}

// storeEntry replaces the entry for path. Entries are only ever replaced
// wholesale, never mutated in place.
func (c *Cache) storeEntry(path string, entry domain.FileEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = entry
}
