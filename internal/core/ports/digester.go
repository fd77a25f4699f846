package ports

// Digester computes content digests. The digest is the ground-truth validity
// signal when a timestamp changes: two byte-identical contents must always
// produce the same digest within a process run and across snapshots.
//
//go:generate mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// DigestContent digests an in-memory byte slice.
	DigestContent(content []byte) string

	// DigestFile digests the content of the file at path.
	DigestFile(path string) (string, error)
}
