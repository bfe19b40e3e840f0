package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/medusaphp/filesystem/core"
)

// TestSymlinkFS tests Symlink and Readlink. Skips when the provider does not
// implement core.SymlinkFS.
func TestSymlinkFS(t *testing.T, fsys core.FS, root string) {
	sfs, ok := fsys.(core.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
	}

	t.Run("Absolute", func(t *testing.T) {
		target := path.Join(root, "abs-target.txt")
		link := path.Join(root, "abs-link")
		mustWrite(t, fsys, target, "through the link")

		if err := sfs.Symlink(target, link); err != nil {
			t.Fatalf("Symlink(%s, %s): got error %v", target, link, err)
		}
		got, err := sfs.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink(%s): got error %v", link, err)
		}
		if got != target {
			t.Errorf("Readlink(%s): got %q, want %q", link, got, target)
		}
		data, err := fsys.ReadFile(link)
		if err != nil || string(data) != "through the link" {
			t.Errorf("ReadFile(%s) through link: got %q, %v", link, data, err)
		}
	})

	t.Run("Relative", func(t *testing.T) {
		mustWrite(t, fsys, path.Join(root, "rel-target.txt"), "")
		link := path.Join(root, "rel-link")
		if err := sfs.Symlink("rel-target.txt", link); err != nil {
			t.Fatalf("Symlink(rel-target.txt, %s): got error %v", link, err)
		}
		got, err := sfs.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink(%s): got error %v", link, err)
		}
		if got != "rel-target.txt" {
			t.Errorf("Readlink(%s): got %q, want %q", link, got, "rel-target.txt")
		}
	})

	t.Run("Dangling", func(t *testing.T) {
		link := path.Join(root, "dangling")
		if err := sfs.Symlink(path.Join(root, "nowhere"), link); err != nil {
			t.Fatalf("Symlink: got error %v, want nil for a dangling link", err)
		}
		if ok, _ := fsys.Exists(link); ok {
			t.Errorf("Exists(%s): dangling link should not resolve", link)
		}
		if _, err := core.Lstat(fsys, link); err != nil {
			t.Errorf("Lstat(%s): got error %v, want nil", link, err)
		}
	})

	t.Run("ExistingEntry", func(t *testing.T) {
		link := path.Join(root, "occupied")
		mustWrite(t, fsys, link, "")
		if err := sfs.Symlink(path.Join(root, "x"), link); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Symlink over %s: got error %v, want fs.ErrExist", link, err)
		}
	})

	t.Run("MissingParent", func(t *testing.T) {
		link := path.Join(root, "no-parent", "link")
		if err := sfs.Symlink(root, link); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Symlink(%s): got error %v, want fs.ErrNotExist", link, err)
		}
	})

	t.Run("ReadlinkNotALink", func(t *testing.T) {
		name := path.Join(root, "plain.txt")
		mustWrite(t, fsys, name, "")
		if _, err := sfs.Readlink(name); err == nil {
			t.Errorf("Readlink(%s): got nil, want error for a regular file", name)
		}
	})
}
