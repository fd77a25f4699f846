package cache

import "github.com/xwine/fastpack/internal/core/domain"

// Access exposes the internal accessor so tests can assert on the hit flag
// directly.
func (c *Cache) Access(path string, want domain.Level) (domain.FileEntry, bool, error) {
	return c.access(path, want)
}
