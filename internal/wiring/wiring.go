// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/xwine/fastpack/internal/adapters/config"
	_ "github.com/xwine/fastpack/internal/adapters/fs"
	_ "github.com/xwine/fastpack/internal/adapters/logger"
	_ "github.com/xwine/fastpack/internal/adapters/manifest"
	_ "github.com/xwine/fastpack/internal/adapters/workspace"
	// Register app nodes.
	_ "github.com/xwine/fastpack/internal/app"
)
