// Package domain contains core domain types for the incremental cache.
package domain

// Level records how far a path has been observed. Each level implies the
// fields of the levels below it are populated, which keeps invalid field
// combinations out of the cache: a stat-level entry never carries a digest,
// an existence-level entry never carries an mtime.
type Level uint8

const (
	// LevelExistence means only the presence or absence of the path is known.
	LevelExistence Level = iota
	// LevelStat means the path has been stat'ed: Mtime and Kind are set.
	LevelStat
	// LevelContent means the content has been read: Digest and Content are set.
	LevelContent
	// LevelManifest means the content has additionally been parsed as a
	// package manifest: Package is set.
	LevelManifest
)

// FileKind classifies a filesystem path.
type FileKind uint8

const (
	// FileRegular is a regular file.
	FileRegular FileKind = iota
	// FileDirectory is a directory.
	FileDirectory
	// FileOther covers symlinks, devices and everything else.
	FileOther
)

// FileEntry is the cached observation of a single filesystem path.
//
// Invariants: Exists == false implies Mtime == 0 and Digest/Content unset;
// Digest == "" means the content has never been read for this entry;
// Package is non-nil only for paths that have been parsed as manifests.
type FileEntry struct {
	Level   Level    `cbor:"level"`
	Exists  bool     `cbor:"exists"`
	Mtime   int64    `cbor:"mtime"` // UnixNano; 0 when absent or never stat'ed
	Kind    FileKind `cbor:"kind"`
	Digest  string   `cbor:"digest"`  // empty = unset
	Content []byte   `cbor:"content"` // empty = unset
	Package *Package `cbor:"package,omitempty"`
}

// AbsentEntry returns the placeholder stored for a path confirmed missing.
func AbsentEntry() FileEntry {
	return FileEntry{Level: LevelExistence, Exists: false}
}

// ExistenceEntry returns the placeholder stored after a bare existence check.
func ExistenceEntry(exists bool) FileEntry {
	return FileEntry{Level: LevelExistence, Exists: exists}
}
