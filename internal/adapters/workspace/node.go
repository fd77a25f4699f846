package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xwine/fastpack/internal/core/ports"
)

// NodeID is the unique identifier for the workspace loader Graft node.
const NodeID graft.ID = "adapter.workspace_loader"

func init() {
	graft.Register(graft.Node[ports.WorkspaceLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkspaceLoader, error) {
			return NewLoader(), nil
		},
	})
}
