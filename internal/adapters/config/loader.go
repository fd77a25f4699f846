// Package config provides the configuration loader for fastpack.
package config

import (
	"os"
	"path/filepath"

	"github.com/xwine/fastpack/internal/core/domain"
	"github.com/xwine/fastpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default configuration filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName}
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Fastpackfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	mode, err := parseCacheMode(file.Cache.Mode)
	if err != nil {
		return nil, err
	}

	root := file.Root
	if root == "" {
		root = filepath.Dir(path)
	}
	if root, err = filepath.Abs(root); err != nil {
		return nil, zerr.Wrap(err, "failed to get absolute path of project root")
	}

	manifest := file.Manifest
	if manifest == "" {
		manifest = domain.ManifestFileName
	}

	cachePath := file.Cache.Path
	if cachePath == "" {
		cachePath = domain.DefaultSnapshotPath()
	}
	if !filepath.IsAbs(cachePath) {
		cachePath = filepath.Join(root, cachePath)
	}

	return &domain.Config{
		Root:      root,
		Entry:     file.Entry,
		Manifest:  manifest,
		CacheMode: mode,
		CachePath: cachePath,
	}, nil
}

func parseCacheMode(mode string) (domain.CacheMode, error) {
	switch mode {
	case "", "persistent":
		return domain.CachePersistent, nil
	case "memory":
		return domain.CacheMemory, nil
	default:
		// Wrap first so the sentinel stays the cause and errors.Is matches;
		// metadata attached to the sentinel directly would replace it.
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidCacheMode, ""), "mode", mode)
	}
}
