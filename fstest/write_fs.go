package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/medusaphp/filesystem/core"
)

// TestWriteFS tests WriteFile, Mkdir and MkdirAll, including the rule that
// nothing creates a missing parent implicitly.
func TestWriteFS(t *testing.T, fsys core.FS, root string) {
	t.Run("WriteFileTruncates", func(t *testing.T) {
		dir := scratch(t, fsys, root, "truncate")
		name := path.Join(dir, "a.txt")
		mustWrite(t, fsys, name, "a much longer first version")
		mustWrite(t, fsys, name, "short")

		data, err := fsys.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v", name, err)
		}
		if string(data) != "short" {
			t.Errorf("ReadFile(%s): got %q, want %q", name, data, "short")
		}
	})

	t.Run("WriteFileMissingParent", func(t *testing.T) {
		name := path.Join(root, "nope", "a.txt")
		err := fsys.WriteFile(name, []byte("x"), 0o644)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("WriteFile(%s): got error %v, want fs.ErrNotExist", name, err)
		}
		if ok, _ := fsys.Exists(path.Join(root, "nope")); ok {
			t.Errorf("WriteFile(%s) created the missing parent", name)
		}
	})

	t.Run("Mkdir", func(t *testing.T) {
		name := path.Join(root, "mkdir")
		if err := fsys.Mkdir(name, 0o755); err != nil {
			t.Fatalf("Mkdir(%s): got error %v, want nil", name, err)
		}
		info, err := fsys.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v", name, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%s): should be a directory", name)
		}

		if err := fsys.Mkdir(name, 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%s) twice: got error %v, want fs.ErrExist", name, err)
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		name := path.Join(root, "missing", "child")
		if err := fsys.Mkdir(name, 0o755); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(%s): got error %v, want fs.ErrNotExist", name, err)
		}
	})

	t.Run("MkdirExactMode", func(t *testing.T) {
		name := path.Join(root, "mode")
		if err := fsys.Mkdir(name, 0o754); err != nil {
			t.Fatalf("Mkdir(%s): got error %v", name, err)
		}
		info, err := fsys.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v", name, err)
		}
		if got := info.Mode().Perm(); got != 0o754 {
			t.Errorf("Mkdir(%s, 0754): got mode %o", name, got)
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		name := path.Join(root, "all", "b", "c")
		if err := fsys.MkdirAll(name, 0o755); err != nil {
			t.Fatalf("MkdirAll(%s): got error %v", name, err)
		}
		if err := fsys.MkdirAll(name, 0o755); err != nil {
			t.Errorf("MkdirAll(%s) twice: got error %v, want nil", name, err)
		}
		for _, p := range []string{path.Join(root, "all"), path.Join(root, "all", "b"), name} {
			info, err := fsys.Stat(p)
			if err != nil || !info.IsDir() {
				t.Errorf("Stat(%s): want directory, got %v", p, err)
			}
		}
	})

	t.Run("MkdirAllOverFile", func(t *testing.T) {
		name := path.Join(root, "file-in-the-way")
		mustWrite(t, fsys, name, "")
		if err := fsys.MkdirAll(name, 0o755); err == nil {
			t.Errorf("MkdirAll(%s) over a file: got nil, want error", name)
		}
	})
}
