package core_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/medusaphp/filesystem/billy"
	"github.com/medusaphp/filesystem/core"
)

func TestFSType_String(t *testing.T) {
	tests := []struct {
		fsType   core.FSType
		expected string
	}{
		{core.FSTypeUnknown, "unknown"},
		{core.FSTypeLocal, "local"},
		{core.FSTypeMemory, "memory"},
		{core.FSType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.fsType.String(); got != tt.expected {
				t.Errorf("FSType(%d).String() = %q, want %q", tt.fsType, got, tt.expected)
			}
		})
	}
}

func TestReexportedErrorsMatchStdlib(t *testing.T) {
	if !errors.Is(core.ErrNotExist, fs.ErrNotExist) {
		t.Error("ErrNotExist does not match fs.ErrNotExist")
	}
	if !errors.Is(core.ErrExist, fs.ErrExist) {
		t.Error("ErrExist does not match fs.ErrExist")
	}
	if errors.Is(core.ErrUnsupported, fs.ErrNotExist) {
		t.Error("ErrUnsupported must be distinct")
	}
}

// plainFS hides the optional capabilities of the wrapped provider.
type plainFS struct {
	core.FS
}

func TestRealpath_WithoutSymlinkSupport(t *testing.T) {
	mem := billy.NewMemory()
	if err := mem.MkdirAll("/a/b", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	fsys := plainFS{FS: mem}

	got, err := core.Realpath(fsys, "/a/./b/../b")
	if err != nil {
		t.Fatalf("Realpath: %v", err)
	}
	if got != "/a/b" {
		t.Errorf("Realpath: got %q, want %q", got, "/a/b")
	}

	if _, err := core.Realpath(fsys, "/a/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Realpath(missing): got %v, want fs.ErrNotExist", err)
	}
}

func TestRealpath_AbsoluteLink(t *testing.T) {
	fsys := billy.NewMemory()
	if err := fsys.MkdirAll("/real/inner", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := fsys.MkdirAll("/other", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := fsys.Symlink("/real/inner", "/other/link"); err != nil {
		t.Fatalf("Symlink: %v", err)
	}

	got, err := core.Realpath(fsys, "/other/link")
	if err != nil {
		t.Fatalf("Realpath: %v", err)
	}
	if got != "/real/inner" {
		t.Errorf("Realpath(/other/link): got %q, want %q", got, "/real/inner")
	}

	// ".." applies to the resolved link target, not the link's parent.
	got, err = core.Realpath(fsys, "/other/link/..")
	if err != nil {
		t.Fatalf("Realpath: %v", err)
	}
	if got != "/real" {
		t.Errorf("Realpath(/other/link/..): got %q, want %q", got, "/real")
	}
}

func TestCopyTree_WithoutSymlinkSupport(t *testing.T) {
	mem := billy.NewMemory()
	if err := mem.MkdirAll("/src", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := mem.Symlink("/elsewhere", "/src/link"); err != nil {
		t.Fatalf("Symlink: %v", err)
	}

	err := core.CopyTree(plainFS{FS: mem}, "/src", "/dst")
	if !errors.Is(err, core.ErrUnsupported) {
		t.Errorf("CopyTree with a link and no SymlinkFS: got %v, want ErrUnsupported", err)
	}
}
