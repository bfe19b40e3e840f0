package fstest

import (
	"io/fs"
	"path"
	"reflect"
	"testing"

	"github.com/medusaphp/filesystem/core"
)

// TestWalkFS tests Walk ordering, SkipDir and symbolic link handling.
func TestWalkFS(t *testing.T, fsys core.FS, root string) {
	dir := scratch(t, fsys, root, "walk")
	if err := fsys.MkdirAll(path.Join(dir, "sub", "deep"), 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	mustWrite(t, fsys, path.Join(dir, "b.txt"), "")
	mustWrite(t, fsys, path.Join(dir, "a.txt"), "")
	mustWrite(t, fsys, path.Join(dir, "sub", "c.txt"), "")
	mustWrite(t, fsys, path.Join(dir, "sub", "deep", "d.txt"), "")

	collect := func(t *testing.T, skip string) []string {
		t.Helper()
		var visited []string
		err := fsys.Walk(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel := p[len(dir):]
			visited = append(visited, rel)
			if skip != "" && rel == skip && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%s): got error %v", dir, err)
		}
		return visited
	}

	t.Run("PreOrderLexical", func(t *testing.T) {
		want := []string{"", "/a.txt", "/b.txt", "/sub", "/sub/c.txt", "/sub/deep", "/sub/deep/d.txt"}
		if got := collect(t, ""); !reflect.DeepEqual(got, want) {
			t.Errorf("Walk(%s): got %v, want %v", dir, got, want)
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		want := []string{"", "/a.txt", "/b.txt", "/sub", "/sub/c.txt", "/sub/deep"}
		if got := collect(t, "/sub/deep"); !reflect.DeepEqual(got, want) {
			t.Errorf("Walk(%s) skipping /sub/deep: got %v, want %v", dir, got, want)
		}
	})

	t.Run("DoesNotFollowSymlinks", func(t *testing.T) {
		sfs, ok := fsys.(core.SymlinkFS)
		if !ok {
			t.Skip("SymlinkFS not supported")
		}
		linkDir := scratch(t, fsys, root, "walk-links")
		link := path.Join(linkDir, "link")
		if err := sfs.Symlink(path.Join(dir, "sub"), link); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}

		var visited []string
		err := fsys.Walk(linkDir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, p)
			if p == link && d.Type()&fs.ModeSymlink == 0 {
				t.Errorf("Walk: %s should be reported as a symbolic link", p)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%s): got error %v", linkDir, err)
		}
		if want := []string{linkDir, link}; !reflect.DeepEqual(visited, want) {
			t.Errorf("Walk(%s): got %v, want %v", linkDir, visited, want)
		}
	})
}
