// Package fs provides file system adapters for digesting file content.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/xwine/fastpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Digester)(nil)

// Digester computes XXHash content digests, rendered as 16 hex digits. The
// digest only has to be stable and collision-resistant within one cache, so
// a fast non-cryptographic hash is enough.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// DigestContent digests an in-memory byte slice.
func (d *Digester) DigestContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// DigestFile digests the content of the file at path without loading it
// into memory at once.
func (d *Digester) DigestFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
