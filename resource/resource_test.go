package resource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medusaphp/filesystem/billy"
	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/resource"
)

// tempDir returns a canonical scratch directory on the local filesystem.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return filepath.ToSlash(dir)
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "file", resource.KindFile.String())
	require.Equal(t, "directory", resource.KindDirectory.String())
	require.Equal(t, "unknown", resource.Kind(0).String())
}

func TestSetSymlinkTarget(t *testing.T) {
	root := tempDir(t)
	writeFile(t, root+"/one.txt", "1")
	writeFile(t, root+"/two.txt", "2")

	link := resource.NewFile(root + "/link.txt")
	one := resource.NewFile(root + "/one.txt")
	two := resource.NewFile(root + "/two.txt")

	t.Run("creates link", func(t *testing.T) {
		require.NoError(t, link.SetSymlinkTarget(one))
		require.True(t, link.IsSymlink())

		dest, err := os.Readlink(root + "/link.txt")
		require.NoError(t, err)
		require.Equal(t, root+"/one.txt", dest)
	})

	t.Run("same target is a no-op", func(t *testing.T) {
		require.NoError(t, link.SetSymlinkTarget(one))

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Len(t, entries, 3)
	})

	t.Run("other target replaces link", func(t *testing.T) {
		require.NoError(t, link.SetSymlinkTarget(two))

		target, err := link.SymlinkTarget()
		require.NoError(t, err)
		require.Equal(t, root+"/two.txt", target.Location())
		require.Equal(t, resource.KindFile, target.Kind())

		require.NoError(t, link.Load())
		require.Equal(t, "2", link.Content())
	})

	t.Run("real file is refused", func(t *testing.T) {
		err := one.SetSymlinkTarget(two)
		require.Error(t, err)
		require.True(t, errors.IsLogic(err))
		require.Contains(t, err.Error(), "already exists")
		require.False(t, one.IsSymlink())
	})
}

func TestSetSymlinkTarget_Directory(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.MkdirAll("/data/real", 0o755))

	link := resource.NewDirectory("/data/link/", resource.WithFS(fsys))
	require.Equal(t, "/data/link", link.Location())

	require.NoError(t, link.SetSymlinkTarget(resource.NewDirectory("/data/real", resource.WithFS(fsys))))
	require.True(t, link.IsSymlink())
	require.True(t, link.Exists())

	target, err := link.SymlinkTarget()
	require.NoError(t, err)
	require.Equal(t, resource.KindDirectory, target.Kind())
	require.Equal(t, "/data/real", target.Location())

	err = resource.NewDirectory("/data/real", resource.WithFS(fsys)).
		SetSymlinkTarget(resource.NewDirectory("/data", resource.WithFS(fsys)))
	require.True(t, errors.IsLogic(err))

	require.NoError(t, link.Unlink())
	require.False(t, link.IsSymlink())
	require.True(t, resource.NewDirectory("/data/real", resource.WithFS(fsys)).Exists())
}

func TestMove_MissingParent(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/a.txt", []byte("a"), 0o644))

	err := resource.NewFile("/a.txt", resource.WithFS(fsys)).
		Move(resource.NewFile("/missing/a.txt", resource.WithFS(fsys)))
	require.Error(t, err)
	require.True(t, errors.IsIO(err))

	ok, err := fsys.Exists("/a.txt")
	require.NoError(t, err)
	require.True(t, ok)
}
