package ports

import "github.com/xwine/fastpack/internal/core/domain"

// WorkspaceLoader reconstructs the runtime workspace representation from the
// serialized content stored with a cached module. It is invoked lazily, only
// on a module cache hit.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceLoader interface {
	FromSerialized(content string) (*domain.Workspace, error)
}
