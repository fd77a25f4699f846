package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xwine/fastpack/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/xwine/fastpack/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/xwine/fastpack/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/xwine/fastpack/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"github.com/xwine/fastpack/internal/adapters/snapshot"  //nolint:depguard // Wired in app layer
	"github.com/xwine/fastpack/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"github.com/xwine/fastpack/internal/core/ports"
	"github.com/xwine/fastpack/internal/engine/cache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			workspace.NodeID,
			fs.DigesterNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.ManifestParser](ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := graft.Dep[ports.WorkspaceLoader](ctx)
	if err != nil {
		return nil, err
	}

	digests, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	deps := cache.Deps{
		Manifests:  parser,
		Workspaces: workspaces,
		Digests:    digests,
		Log:        log,
	}

	return New(loader, deps, func(path string) ports.SnapshotStore {
		return snapshot.NewStore(path)
	}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
