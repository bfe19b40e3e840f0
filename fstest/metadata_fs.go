package fstest

import (
	"io/fs"
	"path"
	"testing"
	"time"

	"github.com/medusaphp/filesystem/core"
)

// TestMetadataFS tests Lstat, Chmod and Chtimes. Skips when the provider
// does not implement core.MetadataFS.
func TestMetadataFS(t *testing.T, fsys core.FS, root string) {
	mfs, ok := fsys.(core.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
	}

	t.Run("Chmod", func(t *testing.T) {
		name := path.Join(root, "chmod.txt")
		mustWrite(t, fsys, name, "")
		if err := mfs.Chmod(name, 0o600); err != nil {
			t.Fatalf("Chmod(%s): got error %v", name, err)
		}
		info, err := fsys.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v", name, err)
		}
		if got := info.Mode().Perm(); got != 0o600 {
			t.Errorf("Chmod(%s, 0600): got mode %o", name, got)
		}
	})

	t.Run("Chtimes", func(t *testing.T) {
		name := path.Join(root, "chtimes.txt")
		mustWrite(t, fsys, name, "")
		mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		if err := mfs.Chtimes(name, mtime, mtime); err != nil {
			t.Fatalf("Chtimes(%s): got error %v", name, err)
		}
		info, err := fsys.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v", name, err)
		}
		if !info.ModTime().Equal(mtime) {
			t.Errorf("Chtimes(%s): got mtime %v, want %v", name, info.ModTime(), mtime)
		}
	})

	t.Run("LstatDoesNotFollow", func(t *testing.T) {
		sfs, ok := fsys.(core.SymlinkFS)
		if !ok {
			t.Skip("SymlinkFS not supported")
		}
		target := path.Join(root, "lstat-target")
		link := path.Join(root, "lstat-link")
		mustWrite(t, fsys, target, "x")
		if err := sfs.Symlink(target, link); err != nil {
			t.Fatalf("Symlink: setup failed: %v", err)
		}

		info, err := mfs.Lstat(link)
		if err != nil {
			t.Fatalf("Lstat(%s): got error %v", link, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(%s): got mode %v, want a symbolic link", link, info.Mode())
		}
		info, err = fsys.Stat(link)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v", link, err)
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			t.Errorf("Stat(%s): should follow the link", link)
		}
	})
}
