package resource_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/medusaphp/filesystem/billy"
	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/resource"
)

func TestFile_LoadSave(t *testing.T) {
	root := tempDir(t)
	name := root + "/data.txt"

	f := resource.NewFile(name)
	require.False(t, f.Exists())
	require.Equal(t, "data.txt", f.Filename())
	require.Equal(t, root, f.Dirname())

	f.SetContent("hello")
	require.False(t, f.Exists())

	require.NoError(t, f.Save())
	require.True(t, f.Exists())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	require.NoError(t, os.WriteFile(name, []byte("changed"), 0o644))
	require.Equal(t, "hello", f.Content())
	require.NoError(t, f.Load())
	require.Equal(t, "changed", f.Content())

	f.SetContent("x")
	require.NoError(t, f.Save())
	data, err = os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "x", string(data))
}

func TestFile_LoadMissing(t *testing.T) {
	f := resource.NewFile("/missing.txt", resource.WithFS(billy.NewMemory()))
	err := f.Load()
	require.Error(t, err)
	require.True(t, errors.IsIO(err))
	require.Equal(t, "", f.Content())
}

func TestOpenFile(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/conf.ini", []byte("a = 1"), 0o644))

	f, err := resource.OpenFile("/conf.ini", resource.WithFS(fsys))
	require.NoError(t, err)
	require.Equal(t, "a = 1", f.Content())

	f, err = resource.OpenFile("/absent.ini", resource.WithFS(fsys))
	require.NoError(t, err)
	require.Equal(t, "", f.Content())
	require.False(t, f.Exists())
}

func TestFile_EnsureExists(t *testing.T) {
	fsys := billy.NewMemory()
	f := resource.NewFile("/empty.txt", resource.WithFS(fsys))

	require.NoError(t, f.EnsureExists())
	require.True(t, f.Exists())

	require.NoError(t, fsys.WriteFile("/empty.txt", []byte("kept"), 0o644))
	require.NoError(t, f.EnsureExists())

	data, err := fsys.ReadFile("/empty.txt")
	require.NoError(t, err)
	require.Equal(t, "kept", string(data))

	info, err := f.Info()
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFile_EnsureExistsMissingParent(t *testing.T) {
	f := resource.NewFile("/no/such/dir/file.txt", resource.WithFS(billy.NewMemory()))
	err := f.EnsureExists()
	require.True(t, errors.IsIO(err))
}

func TestFile_Touch(t *testing.T) {
	root := tempDir(t)
	name := root + "/stamp"
	writeFile(t, name, "x")

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(name, old, old))

	require.NoError(t, resource.NewFile(name).Touch())

	info, err := os.Stat(name)
	require.NoError(t, err)
	require.True(t, info.ModTime().After(old.Add(time.Hour)))
}

func TestFile_Copy(t *testing.T) {
	root := tempDir(t)
	writeFile(t, root+"/src.txt", "payload")
	require.NoError(t, os.Mkdir(root+"/into", 0o755))

	src := resource.NewFile(root + "/src.txt")

	require.NoError(t, src.Copy(resource.NewFile(root+"/dst.txt")))
	data, err := os.ReadFile(root + "/dst.txt")
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
	require.True(t, src.Exists())

	require.NoError(t, src.Copy(resource.NewDirectory(root+"/into")))
	data, err = os.ReadFile(root + "/into/src.txt")
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
}

func TestFile_Move(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/a.txt", []byte("a"), 0o644))

	src := resource.NewFile("/a.txt", resource.WithFS(fsys))
	dst := resource.NewFile("/b.txt", resource.WithFS(fsys))
	require.NoError(t, src.Move(dst))

	require.False(t, src.Exists())
	require.True(t, dst.Exists())
}

func TestFile_Unlink(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/a.txt", []byte("a"), 0o644))
	require.NoError(t, fsys.Symlink("/a.txt", "/link"))
	require.NoError(t, fsys.MkdirAll("/dir", 0o755))

	require.NoError(t, resource.NewFile("/link", resource.WithFS(fsys)).Unlink())
	require.True(t, resource.NewFile("/a.txt", resource.WithFS(fsys)).Exists())

	require.NoError(t, resource.NewFile("/a.txt", resource.WithFS(fsys)).Unlink())
	require.False(t, resource.NewFile("/a.txt", resource.WithFS(fsys)).Exists())

	err := resource.NewFile("/dir", resource.WithFS(fsys)).Unlink()
	require.True(t, errors.IsIO(err))
}
