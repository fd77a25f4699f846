// Package app implements the application layer for fastpack.
package app

import (
	"errors"
	"io/fs"
	"os"

	"github.com/xwine/fastpack/internal/core/domain"
	"github.com/xwine/fastpack/internal/core/ports"
	"github.com/xwine/fastpack/internal/engine/cache"
	"go.trai.ch/zerr"
)

// StoreFactory creates a snapshot store for a configured cache path. The
// app layer depends on it instead of a concrete adapter so tests can
// substitute the persistence backend.
type StoreFactory func(path string) ports.SnapshotStore

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	deps         cache.Deps
	stores       StoreFactory
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, deps cache.Deps, stores StoreFactory) *App {
	return &App{
		configLoader: loader,
		deps:         deps,
		stores:       stores,
	}
}

// Session is an opened project: its configuration and the cache bound to
// it. Close dumps the cache back to its snapshot.
type Session struct {
	Config *domain.Config
	Cache  *cache.Cache
}

// Close persists the cache state. In memory mode it is a no-op.
func (s *Session) Close() error {
	return s.Cache.Dump()
}

// Open loads the project configuration from cwd and constructs the cache
// session for it. Persistent mode loads the snapshot before the session is
// returned; memory mode starts empty.
func (a *App) Open(cwd string) (*Session, error) {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	deps := a.deps
	deps.ManifestFile = cfg.Manifest

	var store ports.SnapshotStore
	if cfg.CacheMode == domain.CachePersistent {
		store = a.stores(cfg.CachePath)
	}

	c, err := cache.New(deps, store)
	if err != nil {
		return nil, err
	}

	return &Session{Config: cfg, Cache: c}, nil
}

// CacheInfo describes the state of a project's cache.
type CacheInfo struct {
	Mode         domain.CacheMode
	Path         string
	StartedEmpty bool
	Files        int
	Modules      int
}

// Info opens the project cache and reports its mode, location and entry
// counts.
func (a *App) Info(cwd string) (*CacheInfo, error) {
	sess, err := a.Open(cwd)
	if err != nil {
		return nil, err
	}

	files, modules := sess.Cache.Stats()
	return &CacheInfo{
		Mode:         sess.Config.CacheMode,
		Path:         sess.Cache.SnapshotPath(),
		StartedEmpty: sess.Cache.StartedEmpty(),
		Files:        files,
		Modules:      modules,
	}, nil
}

// Clear removes the project's cache snapshot. removed reports whether a
// snapshot file existed. Memory mode has nothing to clear.
func (a *App) Clear(cwd string) (removed bool, err error) {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return false, zerr.Wrap(err, "failed to load configuration")
	}

	if cfg.CacheMode != domain.CachePersistent {
		return false, nil
	}

	if err := os.Remove(cfg.CachePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to remove cache snapshot"), "path", cfg.CachePath)
	}

	return true, nil
}
