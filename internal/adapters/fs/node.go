package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xwine/fastpack/internal/core/ports"
)

// DigesterNodeID is the unique identifier for the Digester Graft node.
const DigesterNodeID graft.ID = "adapter.fs.digester"

func init() {
	graft.Register(graft.Node[ports.Digester]{
		ID:        DigesterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Digester, error) {
			return NewDigester(), nil
		},
	})
}
