package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	fsadapter "github.com/xwine/fastpack/internal/adapters/fs"
	"github.com/xwine/fastpack/internal/adapters/manifest"
	"github.com/xwine/fastpack/internal/adapters/workspace"
	"github.com/xwine/fastpack/internal/core/domain"
	"github.com/xwine/fastpack/internal/core/ports"
	"github.com/xwine/fastpack/internal/core/ports/mocks"
	"github.com/xwine/fastpack/internal/engine/cache"
)

// recordingLogger collects log lines so tests can assert on eviction
// messages.
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Info(string) {}

func (l *recordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(error) {}

func (l *recordingLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

func testDeps(log ports.Logger) cache.Deps {
	return cache.Deps{
		Manifests:  manifest.NewParser(),
		Workspaces: workspace.NewLoader(),
		Digests:    fsadapter.NewDigester(),
		Log:        log,
	}
}

func newTestCache(t *testing.T) (*cache.Cache, *recordingLogger) {
	t.Helper()

	log := &recordingLogger{}
	c, err := cache.New(testDeps(log), nil)
	require.NoError(t, err)
	return c, log
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// setMtime pins a file's timestamp so tests control whether the stat check
// sees a change.
func setMtime(t *testing.T, path string, at time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, at, at))
}

func TestAccess_SecondAccessIsTrusted(t *testing.T) {
	c, _ := newTestCache(t)
	path := filepath.Join(t.TempDir(), "a.js")
	writeFile(t, path, "module.exports = 1;\n")

	entry, hit, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)
	require.False(t, hit)
	require.True(t, entry.Exists)
	require.Equal(t, "module.exports = 1;\n", string(entry.Content))
	require.NotEmpty(t, entry.Digest)

	// The path is trusted for the rest of the run: the entry is served as-is
	// even if the file changes underneath.
	writeFile(t, path, "module.exports = 2;\n")

	again, hit, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, entry.Digest, again.Digest)
}

func TestAccess_UnchangedMtimeIsAHit(t *testing.T) {
	c, _ := newTestCache(t)
	path := filepath.Join(t.TempDir(), "a.js")
	writeFile(t, path, "const x = 1;\n")

	_, _, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)

	c.Untrust(path)

	_, hit, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)
	require.True(t, hit)
}

func TestAccess_TouchWithoutChangeIsAHit(t *testing.T) {
	c, _ := newTestCache(t)
	path := filepath.Join(t.TempDir(), "a.js")
	writeFile(t, path, "const x = 1;\n")
	base := time.Now().Add(-time.Hour)
	setMtime(t, path, base)

	first, _, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)

	// Bump the timestamp only. The digest fallback recognizes the content
	// as unchanged and keeps the entry.
	setMtime(t, path, base.Add(time.Minute))
	c.Untrust(path)

	second, hit, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, first.Digest, second.Digest)
	require.NotEqual(t, first.Mtime, second.Mtime)
}

func TestAccess_TouchDigestIsStreamedNotReloaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	digests := mocks.NewMockDigester(ctrl)

	c, err := cache.New(cache.Deps{
		Manifests:  manifest.NewParser(),
		Workspaces: workspace.NewLoader(),
		Digests:    digests,
		Log:        &recordingLogger{},
	}, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "a.js")
	writeFile(t, path, "const x = 1;\n")
	base := time.Now().Add(-time.Hour)
	setMtime(t, path, base)

	digests.EXPECT().DigestContent([]byte("const x = 1;\n")).Return("d1")

	first, _, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)
	require.Equal(t, "d1", first.Digest)

	// A timestamp-only change streams the digest from disk; the content is
	// not loaded a second time.
	setMtime(t, path, base.Add(time.Minute))
	c.Untrust(path)

	digests.EXPECT().DigestFile(path).Return("d1", nil)

	second, hit, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, "d1", second.Digest)
	require.Equal(t, "const x = 1;\n", string(second.Content))
}

func TestAccess_ContentChangeIsAMiss(t *testing.T) {
	c, _ := newTestCache(t)
	path := filepath.Join(t.TempDir(), "a.js")
	writeFile(t, path, "const x = 1;\n")
	base := time.Now().Add(-time.Hour)
	setMtime(t, path, base)

	first, _, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)

	writeFile(t, path, "const x = 2;\n")
	setMtime(t, path, base.Add(time.Minute))
	c.Untrust(path)

	second, hit, err := c.Access(path, domain.LevelContent)
	require.NoError(t, err)
	require.False(t, hit)
	require.NotEqual(t, first.Digest, second.Digest)
	require.Equal(t, "const x = 2;\n", string(second.Content))
}

func TestAccess_StatLevelNeverReadsContent(t *testing.T) {
	c, _ := newTestCache(t)
	path := filepath.Join(t.TempDir(), "a.js")
	writeFile(t, path, "const x = 1;\n")

	entry, _, err := c.Access(path, domain.LevelStat)
	require.NoError(t, err)
	require.True(t, entry.Exists)
	require.NotZero(t, entry.Mtime)
	require.Empty(t, entry.Digest)
	require.Empty(t, entry.Content)
}

func TestMissingPath_Contract(t *testing.T) {
	c, _ := newTestCache(t)
	path := filepath.Join(t.TempDir(), "nope.js")

	require.False(t, c.FileExists(path))

	_, err := c.FileStat(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrPathNotFound))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	require.Equal(t, path, zErr.Metadata()["path"])

	entry, err := c.FileStatOptional(path)
	require.NoError(t, err)
	require.Nil(t, entry)

	_, err = c.GetFile(path)
	require.True(t, errors.Is(err, domain.ErrPathNotFound))

	orEmpty, err := c.GetFileOrEmpty(path)
	require.NoError(t, err)
	require.False(t, orEmpty.Exists)
	require.Empty(t, orEmpty.Digest)
	require.Empty(t, orEmpty.Content)
}

func TestMissingPath_AbsenceIsCachedAndTrusted(t *testing.T) {
	c, _ := newTestCache(t)
	path := filepath.Join(t.TempDir(), "late.js")

	require.False(t, c.FileExists(path))

	// The file appears after the absence was observed. The trust set keeps
	// the run's view stable until the path is untrusted.
	writeFile(t, path, "late\n")
	require.False(t, c.FileExists(path))

	c.Untrust(path)
	require.True(t, c.FileExists(path))
}

func TestFileStat_DirectoryKind(t *testing.T) {
	c, _ := newTestCache(t)
	dir := t.TempDir()

	entry, err := c.FileStat(dir)
	require.NoError(t, err)
	require.Equal(t, domain.FileDirectory, entry.Kind)
}

func TestGetFile_DeletedFileBecomesAbsent(t *testing.T) {
	c, _ := newTestCache(t)
	path := filepath.Join(t.TempDir(), "a.js")
	writeFile(t, path, "const x = 1;\n")

	_, err := c.GetFile(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	c.Untrust(path)

	_, err = c.GetFile(path)
	require.True(t, errors.Is(err, domain.ErrPathNotFound))
	require.False(t, c.FileExists(path))
}
