package domain

// LocationKind discriminates module locations. The non-file kinds are
// synthesized by the resolver and must never reach the module store.
type LocationKind uint8

const (
	// LocationFile is a module backed by a file on disk.
	LocationFile LocationKind = iota
	// LocationEmpty is the pseudo-location for an unresolved "no module".
	LocationEmpty
	// LocationRuntime is the pseudo-location for the runtime-synthesized module.
	LocationRuntime
)

// Location identifies where a module comes from.
type Location struct {
	Kind LocationKind `cbor:"kind"`
	Path string       `cbor:"path"` // absolute filename; empty for pseudo-locations
}

// FileLocation returns a file-backed location for the given filename.
func FileLocation(path string) Location {
	return Location{Kind: LocationFile, Path: path}
}

// EmptyLocation returns the "no module" pseudo-location.
func EmptyLocation() Location {
	return Location{Kind: LocationEmpty}
}

// RuntimeLocation returns the runtime module pseudo-location.
func RuntimeLocation() Location {
	return Location{Kind: LocationRuntime}
}

// CanonicalKey returns the stable string identity used as the module store
// lookup key.
func (l Location) CanonicalKey() string {
	switch l.Kind {
	case LocationEmpty:
		return "$fp$empty"
	case LocationRuntime:
		return "$fp$runtime"
	default:
		return l.Path
	}
}

// Cacheable reports whether modules at this location may be stored. The
// pseudo-locations are excluded: they carry no filesystem identity to
// validate against.
func (l Location) Cacheable() bool {
	return l.Kind == LocationFile
}
