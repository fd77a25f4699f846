package domain

import "go.trai.ch/zerr"

var (
	// ErrPathNotFound is returned by the strict file accessors when the
	// filesystem confirms a path's absence.
	ErrPathNotFound = zerr.New("path not found")

	// ErrPathStatFailed is returned when stating a path fails for a reason
	// other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileReadFailed is returned when reading a file's content fails.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrManifestParseFailed is returned when a package manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrWorkspaceDecodeFailed is returned when a cached module's serialized
	// content cannot be reconstructed into a workspace.
	ErrWorkspaceDecodeFailed = zerr.New("failed to reconstruct workspace")

	// ErrSnapshotReadFailed is returned when the snapshot file cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read cache snapshot")

	// ErrSnapshotDecodeFailed is returned when the snapshot cannot be decoded.
	ErrSnapshotDecodeFailed = zerr.New("failed to decode cache snapshot")

	// ErrSnapshotEncodeFailed is returned when the snapshot cannot be encoded.
	ErrSnapshotEncodeFailed = zerr.New("failed to encode cache snapshot")

	// ErrSnapshotWriteFailed is returned when the snapshot cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write cache snapshot")

	// ErrSnapshotDirCreateFailed is returned when the snapshot directory
	// cannot be created.
	ErrSnapshotDirCreateFailed = zerr.New("failed to create cache snapshot directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCacheMode is returned when the configured cache mode is
	// neither "memory" nor "persistent".
	ErrInvalidCacheMode = zerr.New("invalid cache mode, expected 'memory' or 'persistent'")
)
