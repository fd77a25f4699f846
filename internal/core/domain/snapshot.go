package domain

// Snapshot is the persisted form of the cache: every observed file entry and
// every recorded module, keyed by path and canonical location key
// respectively. The trust set is deliberately not part of it; trust never
// survives a process.
type Snapshot struct {
	Files   map[string]FileEntry `cbor:"files"`
	Modules map[string]Module    `cbor:"modules"`
}

// NewSnapshot returns an empty snapshot with allocated maps.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Files:   make(map[string]FileEntry),
		Modules: make(map[string]Module),
	}
}
