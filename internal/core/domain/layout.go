package domain

import "path/filepath"

const (
	// FastpackDirName is the name of the internal metadata directory.
	FastpackDirName = ".fastpack"

	// SnapshotFileName is the name of the persisted cache snapshot.
	SnapshotFileName = "cache.snapshot"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "fastpack.yaml"

	// ManifestFileName is the default name of a package manifest.
	ManifestFileName = "package.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSnapshotPath returns the default path for the cache snapshot,
// relative to the project root.
func DefaultSnapshotPath() string {
	return filepath.Join(FastpackDirName, SnapshotFileName)
}
