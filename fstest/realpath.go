package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/medusaphp/filesystem/core"
)

// TestRealpath tests core.Realpath against the provider.
func TestRealpath(t *testing.T, fsys core.FS, root string) {
	base, err := core.Realpath(fsys, root)
	if err != nil {
		t.Fatalf("Realpath(%s): got error %v", root, err)
	}

	dir := scratch(t, fsys, base, "realpath")
	file := path.Join(dir, "a.txt")
	mustWrite(t, fsys, file, "")

	t.Run("Plain", func(t *testing.T) {
		got, err := core.Realpath(fsys, path.Join(dir, ".", "a.txt"))
		if err != nil {
			t.Fatalf("Realpath: got error %v", err)
		}
		if got != file {
			t.Errorf("Realpath: got %q, want %q", got, file)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := core.Realpath(fsys, path.Join(dir, "missing"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Realpath(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	sfs, ok := fsys.(core.SymlinkFS)
	if !ok {
		return
	}

	t.Run("FinalLink", func(t *testing.T) {
		link := path.Join(dir, "to-a")
		if err := sfs.Symlink("a.txt", link); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		got, err := core.Realpath(fsys, link)
		if err != nil {
			t.Fatalf("Realpath(%s): got error %v", link, err)
		}
		if got != file {
			t.Errorf("Realpath(%s): got %q, want %q", link, got, file)
		}
	})

	t.Run("Dangling", func(t *testing.T) {
		link := path.Join(dir, "broken")
		if err := sfs.Symlink(path.Join(dir, "nowhere"), link); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		if _, err := core.Realpath(fsys, link); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Realpath(%s): got error %v, want fs.ErrNotExist", link, err)
		}
	})

	t.Run("Loop", func(t *testing.T) {
		a := path.Join(dir, "loop-a")
		b := path.Join(dir, "loop-b")
		if err := sfs.Symlink(b, a); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		if err := sfs.Symlink(a, b); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		if _, err := core.Realpath(fsys, a); !errors.Is(err, core.ErrLoop) {
			t.Errorf("Realpath(%s): got error %v, want core.ErrLoop", a, err)
		}
	})
}
