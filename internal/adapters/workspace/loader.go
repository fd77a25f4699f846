// Package workspace reconstructs runtime workspaces from serialized module
// content.
package workspace

import (
	"github.com/xwine/fastpack/internal/core/domain"
	"github.com/xwine/fastpack/internal/core/ports"
)

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader implements ports.WorkspaceLoader. The serialized content of a
// module is its fully patched source, so reconstruction wraps it without
// re-running any processing.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// FromSerialized reconstructs the workspace value from stored content.
func (l *Loader) FromSerialized(content string) (*domain.Workspace, error) {
	return &domain.Workspace{Value: content}, nil
}
