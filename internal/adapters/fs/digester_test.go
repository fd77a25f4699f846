package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xwine/fastpack/internal/adapters/fs"
)

func TestDigester_ContentAndFileAgree(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.js")
	content := []byte("export const answer = 42;\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	d := fs.NewDigester()

	fromFile, err := d.DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile failed: %v", err)
	}

	fromContent := d.DigestContent(content)
	if fromFile != fromContent {
		t.Errorf("digest mismatch: file %q vs content %q", fromFile, fromContent)
	}
	if len(fromFile) != 16 {
		t.Errorf("expected 16 hex digits, got %q", fromFile)
	}
}

func TestDigester_DistinctContent(t *testing.T) {
	d := fs.NewDigester()

	a := d.DigestContent([]byte("a"))
	b := d.DigestContent([]byte("b"))
	if a == b {
		t.Errorf("distinct content produced identical digest %q", a)
	}
}

func TestDigester_MissingFile(t *testing.T) {
	d := fs.NewDigester()

	if _, err := d.DigestFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
