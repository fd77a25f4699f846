package ports

import "github.com/xwine/fastpack/internal/core/domain"

// SnapshotStore persists cache snapshots.
//
//go:generate mockgen -source=snapshot_store.go -destination=mocks/mock_snapshot_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the snapshot. found is false when no snapshot exists yet,
	// which is not an error.
	Load() (snap *domain.Snapshot, found bool, err error)

	// Save writes the snapshot, truncating any previous one. The caller must
	// ensure no concurrent process accesses the same path.
	Save(snap *domain.Snapshot) error

	// Path returns the snapshot file location.
	Path() string
}
