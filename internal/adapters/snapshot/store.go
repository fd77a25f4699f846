// Package snapshot persists cache snapshots as zstd-compressed CBOR.
package snapshot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/xwine/fastpack/internal/core/domain"
	"github.com/xwine/fastpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// encMode is the CBOR encoder configured with Core Deterministic Encoding:
// sorted map keys, smallest integer encoding. The same cache state always
// produces identical snapshot bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder. Unknown fields are ignored so older binaries
// can read snapshots written by newer ones.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// InternedString serializes through MarshalText; without this it would
	// encode as an empty CBOR map and lose its value.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("snapshot: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("snapshot: CBOR decoder initialization failed: " + err.Error())
	}
}

// Store implements ports.SnapshotStore with a single snapshot file.
//
// Save truncates the target in place with no atomic rename: the owning
// process must be the only reader and writer of the path while it runs.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the snapshot. A missing file reports found=false
// without an error; every other failure is terminal.
func (s *Store) Load() (*domain.Snapshot, bool, error) {
	//nolint:gosec // Path comes from the project configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", s.path)
	}

	raw, err := decompress(data)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrSnapshotDecodeFailed.Error()), "path", s.path)
	}

	snap := domain.NewSnapshot()
	if err := decMode.Unmarshal(raw, snap); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrSnapshotDecodeFailed.Error()), "path", s.path)
	}

	return snap, true, nil
}

// Save encodes and writes the snapshot, overwriting any previous one.
func (s *Store) Save(snap *domain.Snapshot) error {
	raw, err := encMode.Marshal(snap)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotEncodeFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotDirCreateFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path comes from the project configuration
	if err := os.WriteFile(s.path, compress(raw), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", s.path)
	}

	return nil
}

func compress(data []byte) []byte {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		// Only reachable with invalid encoder options; none are passed.
		panic("snapshot: zstd encoder initialization failed: " + err.Error())
	}
	defer enc.Close() //nolint:errcheck // Encoder holds no unflushed state after EncodeAll

	return enc.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic("snapshot: zstd decoder initialization failed: " + err.Error())
	}
	defer dec.Close()

	return dec.DecodeAll(data, nil)
}
