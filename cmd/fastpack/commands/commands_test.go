package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xwine/fastpack/cmd/fastpack/commands"
	"github.com/xwine/fastpack/internal/adapters/config"
	fsadapter "github.com/xwine/fastpack/internal/adapters/fs"
	"github.com/xwine/fastpack/internal/adapters/logger"
	"github.com/xwine/fastpack/internal/adapters/manifest"
	"github.com/xwine/fastpack/internal/adapters/snapshot"
	"github.com/xwine/fastpack/internal/adapters/workspace"
	"github.com/xwine/fastpack/internal/app"
	"github.com/xwine/fastpack/internal/core/ports"
	"github.com/xwine/fastpack/internal/engine/cache"
)

func newCLI() *commands.CLI {
	a := app.New(config.NewLoader(), cache.Deps{
		Manifests:  manifest.NewParser(),
		Workspaces: workspace.NewLoader(),
		Digests:    fsadapter.NewDigester(),
		Log:        logger.New(),
	}, func(path string) ports.SnapshotStore {
		return snapshot.NewStore(path)
	})
	return commands.New(a)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fastpack.yaml"), []byte(content), 0o600))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cli := newCLI()
	var out bytes.Buffer
	cli.SetOutput(&out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCacheInfo_MemoryMode(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "entry: index.js\ncache:\n  mode: memory\n")

	out, err := execute(t, "cache", "info", "--project", dir)
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "mode:     memory"))
	require.True(t, strings.Contains(out, "files:    0"))
}

func TestCacheInfo_PersistentMode(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "entry: index.js\n")

	out, err := execute(t, "cache", "info", "--project", dir)
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "mode:     persistent"))
	require.True(t, strings.Contains(out, "snapshot:"))
	require.True(t, strings.Contains(out, "empty"))
}

func TestCacheClear(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "entry: index.js\n")

	snapshotPath := filepath.Join(dir, ".fastpack", "cache.snapshot")
	require.NoError(t, os.MkdirAll(filepath.Dir(snapshotPath), 0o750))
	require.NoError(t, os.WriteFile(snapshotPath, []byte("snapshot"), 0o600))

	out, err := execute(t, "cache", "clear", "--project", dir)
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "cache snapshot removed"))
	_, err = os.Stat(snapshotPath)
	require.True(t, os.IsNotExist(err))

	out, err = execute(t, "cache", "clear", "--project", dir)
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "nothing to clear"))
}

func TestCacheInfo_MissingConfig(t *testing.T) {
	_, err := execute(t, "cache", "info", "--project", t.TempDir())
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "failed to load configuration"))
}

func TestRootVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "dev"))
}
