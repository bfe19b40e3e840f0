package billy

import (
	"io/fs"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/medusaphp/filesystem/core"
)

// LocalFS is the host filesystem through go-billy's osfs, rooted at "/".
type LocalFS struct {
	*provider
}

// NewLocal creates a local filesystem rooted at "/".
func NewLocal() *LocalFS {
	return &LocalFS{provider: &provider{
		bfs:   osfs.New("/"),
		chmod: os.Chmod,
	}}
}

// Unwrap returns the underlying billy.Filesystem.
func (lfs *LocalFS) Unwrap() billy.Filesystem {
	return lfs.bfs
}

// Rename moves oldpath to newpath with rename(2). The parent of newpath must exist.
func (lfs *LocalFS) Rename(oldpath, newpath string) error {
	oldpath = normalize(oldpath)
	newpath = normalize(newpath)
	if err := lfs.requireParent("rename", newpath); err != nil {
		return err
	}
	if err := lfs.bfs.Rename(oldpath, newpath); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	return nil
}

// Chmod sets the permission bits of name exactly, ignoring the umask.
// osfs has no Change implementation so this goes to the os package directly.
func (lfs *LocalFS) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(normalize(name), mode)
}

// Chtimes changes the access and modification times of name.
func (lfs *LocalFS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(normalize(name), atime, mtime)
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

var (
	_ core.FS         = (*LocalFS)(nil)
	_ core.MetadataFS = (*LocalFS)(nil)
	_ core.SymlinkFS  = (*LocalFS)(nil)
)
