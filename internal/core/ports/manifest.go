package ports

import "github.com/xwine/fastpack/internal/core/domain"

// ManifestParser turns raw manifest content into a package descriptor.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestParser interface {
	// Parse parses the raw content of the manifest at path.
	Parse(path string, content []byte) (*domain.Package, error)
}
