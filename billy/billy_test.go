package billy

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/medusaphp/filesystem/core"
	"github.com/medusaphp/filesystem/fstest"
)

func TestLocalFS(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		return NewLocal(), t.TempDir()
	})
}

func TestMemoryFS(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		fsys := NewMemory()
		if err := fsys.MkdirAll("/suite", 0o755); err != nil {
			t.Fatalf("MkdirAll(/suite): %v", err)
		}
		return fsys, "/suite"
	})
}

func TestType(t *testing.T) {
	if got := NewLocal().Type(); got != core.FSTypeLocal {
		t.Errorf("LocalFS.Type(): got %v, want %v", got, core.FSTypeLocal)
	}
	if got := NewMemory().Type(); got != core.FSTypeMemory {
		t.Errorf("MemoryFS.Type(): got %v, want %v", got, core.FSTypeMemory)
	}
}

func TestMemoryFS_RootExists(t *testing.T) {
	ok, err := NewMemory().Exists("/")
	if err != nil || !ok {
		t.Errorf("Exists(/): got %v, %v, want true", ok, err)
	}
}

func TestMemoryFS_Unwrap(t *testing.T) {
	fsys := NewMemory()
	if _, err := fsys.Unwrap().Create("/direct.txt"); err != nil {
		t.Fatalf("Create through unwrapped filesystem: %v", err)
	}
	if ok, _ := fsys.Exists("/direct.txt"); !ok {
		t.Error("file created through Unwrap() is not visible")
	}
}

func TestMemoryFS_ModeFollowsRename(t *testing.T) {
	fsys := NewMemory()
	if err := fsys.Mkdir("/a", 0o700); err != nil {
		t.Fatalf("Mkdir(/a): %v", err)
	}
	if err := fsys.Rename("/a", "/b"); err != nil {
		t.Fatalf("Rename(/a, /b): %v", err)
	}

	info, err := fsys.Stat("/b")
	if err != nil {
		t.Fatalf("Stat(/b): %v", err)
	}
	if got := info.Mode().Perm(); got != 0o700 {
		t.Errorf("Stat(/b) mode after rename: got %o, want 700", got)
	}
}

func TestMemoryFS_RenameOntoNonEmptyDirectory(t *testing.T) {
	fsys := NewMemory()
	for _, dir := range []string{"/src", "/dst"} {
		if err := fsys.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("Mkdir(%s): %v", dir, err)
		}
	}
	if err := fsys.WriteFile("/dst/keep", nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := fsys.Rename("/src", "/dst"); err == nil {
		t.Error("Rename onto a non-empty directory: got nil, want error")
	}
}

func TestMemoryFS_RenameIntoItself(t *testing.T) {
	fsys := NewMemory()
	if err := fsys.MkdirAll("/a/b", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := fsys.Rename("/a", "/a/b/c"); err == nil {
		t.Error("Rename into own subtree: got nil, want error")
	}
}

func TestLocalFS_ChmodIgnoresUmask(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "open")
	fsys := NewLocal()
	if err := fsys.Mkdir(dir, 0o777); err != nil {
		t.Fatalf("Mkdir(%s): %v", dir, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("os.Stat(%s): %v", dir, err)
	}
	if got := info.Mode().Perm(); got != 0o777 {
		t.Errorf("Mkdir(%s, 0777): got mode %o", dir, got)
	}
}

func TestWalk_ReportsMissingRoot(t *testing.T) {
	fsys := NewMemory()
	var got error
	err := fsys.Walk("/missing", func(_ string, _ iofs.DirEntry, err error) error {
		got = err
		return err
	})
	if err == nil || got == nil {
		t.Errorf("Walk(/missing): got %v, want the walk function to see an error", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"a/b":     "/a/b",
		"/a/b/":   "/a/b",
		"/a/./b":  "/a/b",
		"/a/../b": "/b",
		"":        "/",
		"/":       "/",
	}
	for in, want := range tests {
		if got := normalize(in); got != want {
			t.Errorf("normalize(%q): got %q, want %q", in, got, want)
		}
	}
}
