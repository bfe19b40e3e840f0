package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/medusaphp/filesystem/core"
)

// TestManageFS tests Remove, RemoveAll and Rename.
func TestManageFS(t *testing.T, fsys core.FS, root string) {
	t.Run("RemoveFile", func(t *testing.T) {
		name := path.Join(root, "remove.txt")
		mustWrite(t, fsys, name, "x")
		if err := fsys.Remove(name); err != nil {
			t.Fatalf("Remove(%s): got error %v, want nil", name, err)
		}
		if _, err := fsys.Stat(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s) after Remove: got error %v, want fs.ErrNotExist", name, err)
		}
	})

	t.Run("RemoveNonEmptyDirectory", func(t *testing.T) {
		dir := scratch(t, fsys, root, "nonempty")
		mustWrite(t, fsys, path.Join(dir, "a.txt"), "x")
		if err := fsys.Remove(dir); err == nil {
			t.Errorf("Remove(%s): got nil, want error for non-empty directory", dir)
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		name := path.Join(root, "missing")
		if err := fsys.Remove(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(%s): got error %v, want fs.ErrNotExist", name, err)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		dir := scratch(t, fsys, root, "tree")
		if err := fsys.MkdirAll(path.Join(dir, "a", "b"), 0o755); err != nil {
			t.Fatalf("MkdirAll: setup failed: %v", err)
		}
		mustWrite(t, fsys, path.Join(dir, "a", "b", "c.txt"), "x")

		if err := fsys.RemoveAll(dir); err != nil {
			t.Fatalf("RemoveAll(%s): got error %v", dir, err)
		}
		if ok, _ := fsys.Exists(dir); ok {
			t.Errorf("RemoveAll(%s): directory still exists", dir)
		}
		if err := fsys.RemoveAll(dir); err != nil {
			t.Errorf("RemoveAll(%s) on missing path: got error %v, want nil", dir, err)
		}
	})

	t.Run("RenameFile", func(t *testing.T) {
		from := path.Join(root, "from.txt")
		to := path.Join(root, "to.txt")
		mustWrite(t, fsys, from, "moved")

		if err := fsys.Rename(from, to); err != nil {
			t.Fatalf("Rename(%s, %s): got error %v", from, to, err)
		}
		if ok, _ := fsys.Exists(from); ok {
			t.Errorf("Rename: %s still exists", from)
		}
		data, err := fsys.ReadFile(to)
		if err != nil || string(data) != "moved" {
			t.Errorf("ReadFile(%s): got %q, %v", to, data, err)
		}
	})

	t.Run("RenameDirectory", func(t *testing.T) {
		from := scratch(t, fsys, root, "dir-from")
		mustWrite(t, fsys, path.Join(from, "x.txt"), "x")
		if err := fsys.MkdirAll(path.Join(from, "sub"), 0o755); err != nil {
			t.Fatalf("MkdirAll: setup failed: %v", err)
		}
		mustWrite(t, fsys, path.Join(from, "sub", "y.txt"), "y")
		// A sibling sharing the name prefix must be left alone.
		sibling := path.Join(root, "dir-from-sibling")
		mustWrite(t, fsys, sibling, "stay")

		to := path.Join(root, "dir-to")
		if err := fsys.Rename(from, to); err != nil {
			t.Fatalf("Rename(%s, %s): got error %v", from, to, err)
		}
		for _, p := range []string{path.Join(to, "x.txt"), path.Join(to, "sub", "y.txt"), sibling} {
			if ok, err := fsys.Exists(p); !ok || err != nil {
				t.Errorf("Exists(%s) after Rename: got %v, %v", p, ok, err)
			}
		}
		if ok, _ := fsys.Exists(from); ok {
			t.Errorf("Rename: %s still exists", from)
		}
	})

	t.Run("RenameMissingTargetParent", func(t *testing.T) {
		from := path.Join(root, "orphan.txt")
		mustWrite(t, fsys, from, "x")
		to := path.Join(root, "no-such-dir", "orphan.txt")

		if err := fsys.Rename(from, to); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Rename(%s, %s): got error %v, want fs.ErrNotExist", from, to, err)
		}
		if ok, _ := fsys.Exists(path.Join(root, "no-such-dir")); ok {
			t.Errorf("Rename created the missing parent")
		}
	})
}
