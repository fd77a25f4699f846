package cache

import (
	"path/filepath"

	"github.com/xwine/fastpack/internal/core/domain"
)

// GetPackage returns the parsed manifest at path. fromCache reports whether
// a previously parsed package was served without re-reading the manifest.
// The parsed package is attached to the file entry, so later accesses ride
// on the regular validation protocol and re-parse only when the manifest
// content actually changed.
func (c *Cache) GetPackage(path string) (*domain.Package, bool, error) {
	entry, hit, err := c.access(path, domain.LevelContent)
	if err != nil {
		return nil, false, err
	}
	if !entry.Exists {
		return nil, false, pathNotFound(path)
	}

	if entry.Package != nil {
		return entry.Package, hit, nil
	}

	pkg, err := c.deps.Manifests.Parse(path, entry.Content)
	if err != nil {
		return nil, false, err
	}

	entry.Package = pkg
	entry.Level = domain.LevelManifest
	c.storeEntry(path, entry)

	return pkg, false, nil
}

// FindNearestPackage walks from the directory containing path up to rootDir
// looking for a manifest file, and returns the first one found. The search
// never leaves rootDir; when no manifest exists in the chain an empty
// package is returned. found reports whether a manifest was located.
func (c *Cache) FindNearestPackage(rootDir, path string) (*domain.Package, bool, error) {
	dir := filepath.Dir(path)
	for {
		candidate := filepath.Join(dir, c.deps.ManifestFile)
		if c.FileExists(candidate) {
			pkg, _, err := c.GetPackage(candidate)
			if err != nil {
				return nil, false, err
			}
			return pkg, true, nil
		}

		if dir == rootDir {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return domain.EmptyPackage(), false, nil
}
