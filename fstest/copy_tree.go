package fstest

import (
	"path"
	"testing"

	"github.com/medusaphp/filesystem/core"
)

// TestCopyTree tests core.CopyFile and core.CopyTree against the provider.
func TestCopyTree(t *testing.T, fsys core.FS, root string) {
	src := scratch(t, fsys, root, "copy-src")
	if err := fsys.MkdirAll(path.Join(src, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	mustWrite(t, fsys, path.Join(src, "x"), "x")
	mustWrite(t, fsys, path.Join(src, "sub", "y"), "y")

	t.Run("File", func(t *testing.T) {
		dst := path.Join(root, "copied-x")
		if err := core.CopyFile(fsys, path.Join(src, "x"), dst); err != nil {
			t.Fatalf("CopyFile: got error %v", err)
		}
		data, err := fsys.ReadFile(dst)
		if err != nil || string(data) != "x" {
			t.Errorf("ReadFile(%s): got %q, %v", dst, data, err)
		}
	})

	t.Run("Tree", func(t *testing.T) {
		dst := path.Join(root, "copy-dst")
		if err := core.CopyTree(fsys, src, dst); err != nil {
			t.Fatalf("CopyTree(%s, %s): got error %v", src, dst, err)
		}
		for name, want := range map[string]string{"x": "x", "sub/y": "y"} {
			data, err := fsys.ReadFile(path.Join(dst, name))
			if err != nil || string(data) != want {
				t.Errorf("ReadFile(%s): got %q, %v", path.Join(dst, name), data, err)
			}
		}
		if ok, _ := fsys.Exists(path.Join(src, "x")); !ok {
			t.Errorf("CopyTree removed the source")
		}
	})

	t.Run("IntoItself", func(t *testing.T) {
		if err := core.CopyTree(fsys, src, path.Join(src, "sub", "again")); err == nil {
			t.Errorf("CopyTree into its own subtree: got nil, want error")
		}
	})

	t.Run("Symlinks", func(t *testing.T) {
		sfs, ok := fsys.(core.SymlinkFS)
		if !ok {
			t.Skip("SymlinkFS not supported")
		}
		withLink := scratch(t, fsys, root, "copy-link-src")
		if err := sfs.Symlink("target", path.Join(withLink, "link")); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}
		dst := path.Join(root, "copy-link-dst")
		if err := core.CopyTree(fsys, withLink, dst); err != nil {
			t.Fatalf("CopyTree: got error %v", err)
		}
		got, err := sfs.Readlink(path.Join(dst, "link"))
		if err != nil || got != "target" {
			t.Errorf("Readlink(copied link): got %q, %v", got, err)
		}
	})
}
