package domain

// CacheMode selects where the cache lives.
type CacheMode uint8

const (
	// CachePersistent loads and saves a snapshot file.
	CachePersistent CacheMode = iota
	// CacheMemory keeps the cache in memory only; Dump is a no-op.
	CacheMemory
)

// String returns the configuration spelling of the mode.
func (m CacheMode) String() string {
	switch m {
	case CacheMemory:
		return "memory"
	default:
		return "persistent"
	}
}

// Config is the project configuration read from fastpack.yaml.
type Config struct {
	// Root is the project root directory all resolution is bounded by.
	Root string

	// Entry is the bundle entry point, relative to Root.
	Entry string

	// Manifest is the package manifest filename searched for during
	// nearest-package resolution.
	Manifest string

	// CacheMode selects between persistent and in-memory caching.
	CacheMode CacheMode

	// CachePath is the snapshot file location for persistent mode.
	CachePath string
}
