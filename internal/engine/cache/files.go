package cache

import (
	"github.com/xwine/fastpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// pathNotFound builds the strict-accessor failure for path. The sentinel
// stays the cause of the returned error; attaching metadata to the sentinel
// directly would copy it out of the errors.Is chain.
func pathNotFound(path string) error {
	return zerr.With(zerr.Wrap(domain.ErrPathNotFound, ""), "path", path)
}

// FileExists reports whether the path currently exists. Filesystem errors
// are treated as non-existence so resolver probes never abort a build.
func (c *Cache) FileExists(path string) bool {
	entry, _, err := c.access(path, domain.LevelExistence)
	if err != nil {
		return false
	}
	return entry.Exists
}

// FileStat returns the stat-level entry for the path. A missing path is an
// ErrPathNotFound error.
func (c *Cache) FileStat(path string) (domain.FileEntry, error) {
	entry, _, err := c.access(path, domain.LevelStat)
	if err != nil {
		return domain.FileEntry{}, err
	}
	if !entry.Exists {
		return domain.FileEntry{}, pathNotFound(path)
	}
	return entry, nil
}

// FileStatOptional returns the stat-level entry for the path, or nil when
// the path does not exist.
func (c *Cache) FileStatOptional(path string) (*domain.FileEntry, error) {
	entry, _, err := c.access(path, domain.LevelStat)
	if err != nil {
		return nil, err
	}
	if !entry.Exists {
		return nil, nil
	}
	return &entry, nil
}

// GetFile returns the content-level entry for the path. A missing path is
// an ErrPathNotFound error.
func (c *Cache) GetFile(path string) (domain.FileEntry, error) {
	entry, _, err := c.access(path, domain.LevelContent)
	if err != nil {
		return domain.FileEntry{}, err
	}
	if !entry.Exists {
		return domain.FileEntry{}, pathNotFound(path)
	}
	return entry, nil
}

// GetFileOrEmpty is GetFile with absence downgraded to the non-existent
// placeholder entry: empty digest, empty content, never an error. A module
// dependency recorded with a real digest therefore mismatches the moment
// its file disappears.
func (c *Cache) GetFileOrEmpty(path string) (domain.FileEntry, error) {
	entry, _, err := c.access(path, domain.LevelContent)
	if err != nil {
		return domain.FileEntry{}, err
	}
	return entry, nil
}
