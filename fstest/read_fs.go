package fstest

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"testing"

	"github.com/medusaphp/filesystem/core"
)

// TestReadFS tests Open, Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, fsys core.FS, root string) {
	t.Run("ReadFile", func(t *testing.T) {
		dir := scratch(t, fsys, root, "readfile")
		name := path.Join(dir, "a.txt")
		mustWrite(t, fsys, name, "hello")

		data, err := fsys.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v, want nil", name, err)
		}
		if string(data) != "hello" {
			t.Errorf("ReadFile(%s): got %q, want %q", name, data, "hello")
		}
	})

	t.Run("Open", func(t *testing.T) {
		dir := scratch(t, fsys, root, "open")
		name := path.Join(dir, "a.txt")
		mustWrite(t, fsys, name, "content")

		f, err := fsys.Open(name)
		if err != nil {
			t.Fatalf("Open(%s): got error %v, want nil", name, err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll: got error %v", err)
		}
		if string(data) != "content" {
			t.Errorf("Open(%s) content: got %q, want %q", name, data, "content")
		}

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("File.Stat: got error %v", err)
		}
		if info.Size() != int64(len("content")) {
			t.Errorf("File.Stat size: got %d, want %d", info.Size(), len("content"))
		}
	})

	t.Run("StatMissing", func(t *testing.T) {
		_, err := fsys.Stat(path.Join(root, "missing"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadDirSorted", func(t *testing.T) {
		dir := scratch(t, fsys, root, "readdir")
		mustWrite(t, fsys, path.Join(dir, "c.txt"), "")
		mustWrite(t, fsys, path.Join(dir, "a.txt"), "")
		if err := fsys.Mkdir(path.Join(dir, "b"), 0o755); err != nil {
			t.Fatalf("Mkdir: setup failed: %v", err)
		}

		entries, err := fsys.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir(%s): got error %v", dir, err)
		}
		want := []string{"a.txt", "b", "c.txt"}
		if len(entries) != len(want) {
			t.Fatalf("ReadDir(%s): got %d entries, want %d", dir, len(entries), len(want))
		}
		for i, e := range entries {
			if e.Name() != want[i] {
				t.Errorf("ReadDir(%s)[%d]: got %q, want %q", dir, i, e.Name(), want[i])
			}
		}
		if !entries[1].IsDir() {
			t.Errorf("ReadDir(%s): %q should be a directory", dir, entries[1].Name())
		}
	})

	t.Run("Exists", func(t *testing.T) {
		dir := scratch(t, fsys, root, "exists")
		name := path.Join(dir, "a.txt")
		mustWrite(t, fsys, name, "")

		for _, tt := range []struct {
			name string
			want bool
		}{
			{dir, true},
			{name, true},
			{path.Join(dir, "missing"), false},
			{path.Join(name, "below-a-file"), false},
		} {
			got, err := fsys.Exists(tt.name)
			if err != nil {
				t.Errorf("Exists(%s): got error %v, want nil", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Exists(%s): got %v, want %v", tt.name, got, tt.want)
			}
		}
	})
}
