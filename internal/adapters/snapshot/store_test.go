package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xwine/fastpack/internal/adapters/snapshot"
	"github.com/xwine/fastpack/internal/core/domain"
)

func TestStore_LoadMissing(t *testing.T) {
	store := snapshot.NewStore(filepath.Join(t.TempDir(), "cache.snapshot"))

	snap, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("expected found=false for a missing snapshot")
	}
	if snap != nil {
		t.Error("expected nil snapshot for a missing file")
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.snapshot")
	store := snapshot.NewStore(path)

	snap := domain.NewSnapshot()
	snap.Files["/proj/src/a.js"] = domain.FileEntry{
		Level:   domain.LevelContent,
		Exists:  true,
		Mtime:   1700000000123456789,
		Kind:    domain.FileRegular,
		Digest:  "0123456789abcdef",
		Content: []byte("module.exports = 1;\n"),
	}
	snap.Modules["/proj/src/a.js"] = domain.Module{
		ID:       domain.Intern("a"),
		Location: domain.FileLocation("/proj/src/a.js"),
		State:    domain.StateAnalyzed,
		Type:     domain.TypeCJS,
		Content:  "processed source",
		BuildDependencies: map[string]string{
			"/proj/src/a.js": "0123456789abcdef",
		},
		ResolvedDependencies: []domain.ResolvedDependency{
			{Request: domain.Intern("./b"), Location: domain.FileLocation("/proj/src/b.js")},
		},
		Scope:   []byte{0x01, 0x02},
		Exports: []byte{0x03},
	}

	if err := store.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("expected found=true after Save")
	}

	entry := loaded.Files["/proj/src/a.js"]
	if entry.Mtime != 1700000000123456789 {
		t.Errorf("mtime not preserved: got %d", entry.Mtime)
	}
	if entry.Digest != "0123456789abcdef" {
		t.Errorf("digest not preserved: got %q", entry.Digest)
	}
	if string(entry.Content) != "module.exports = 1;\n" {
		t.Errorf("content not preserved: got %q", entry.Content)
	}

	mod := loaded.Modules["/proj/src/a.js"]
	if mod.ID.String() != "a" {
		t.Errorf("module id not preserved: got %q", mod.ID.String())
	}
	if mod.BuildDependencies["/proj/src/a.js"] != "0123456789abcdef" {
		t.Errorf("build dependencies not preserved: got %v", mod.BuildDependencies)
	}
	if len(mod.ResolvedDependencies) != 1 || mod.ResolvedDependencies[0].Request.String() != "./b" {
		t.Errorf("resolved dependencies not preserved: got %v", mod.ResolvedDependencies)
	}
	if mod.ResolvedDependencies[0].Location.Path != "/proj/src/b.js" {
		t.Errorf("resolved location not preserved: got %v", mod.ResolvedDependencies[0].Location)
	}
	if mod.Workspace != nil {
		t.Error("workspace must not be persisted")
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.snapshot")
	store := snapshot.NewStore(path)

	first := domain.NewSnapshot()
	first.Files["/a"] = domain.AbsentEntry()
	first.Files["/b"] = domain.AbsentEntry()
	if err := store.Save(first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := domain.NewSnapshot()
	second.Files["/c"] = domain.AbsentEntry()
	if err := store.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, _, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Files) != 1 {
		t.Errorf("expected the second snapshot to replace the first, got %d files", len(loaded.Files))
	}
	if _, ok := loaded.Files["/c"]; !ok {
		t.Error("expected /c in reloaded snapshot")
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.snapshot")
	if err := os.WriteFile(path, []byte("not a snapshot"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, _, err := snapshot.NewStore(path).Load()
	if err == nil {
		t.Fatal("expected error for corrupt snapshot, got nil")
	}
}
