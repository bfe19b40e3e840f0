package billy

import (
	"io/fs"
	"os"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/medusaphp/filesystem/core"
)

// MemoryFS is an in-memory filesystem backed by go-billy's memfs.
//
// memfs only resolves a symbolic link in the final path component, so paths
// that traverse a linked directory are not followed.
type MemoryFS struct {
	*provider
}

// NewMemory creates an empty in-memory filesystem containing only "/".
func NewMemory() *MemoryFS {
	bfs := memfs.New()
	_ = bfs.MkdirAll("/", 0o755)

	attrs := newAttrTable()
	return &MemoryFS{provider: &provider{
		bfs:   bfs,
		attrs: attrs,
		chmod: func(name string, mode fs.FileMode) error {
			attrs.setPerm(normalize(name), mode)
			return nil
		},
	}}
}

// Unwrap returns the underlying billy.Filesystem.
func (mfs *MemoryFS) Unwrap() billy.Filesystem {
	return mfs.bfs
}

// Rename moves oldpath to newpath. memfs renames every path sharing the old
// prefix, so entries are moved one by one instead.
func (mfs *MemoryFS) Rename(oldpath, newpath string) error {
	oldpath = normalize(oldpath)
	newpath = normalize(newpath)

	linkErr := func(err error) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}

	info, err := mfs.bfs.Lstat(oldpath)
	if err != nil {
		return linkErr(fs.ErrNotExist)
	}
	if err := mfs.requireParent("rename", newpath); err != nil {
		return err
	}
	if oldpath == newpath {
		return nil
	}
	if strings.HasPrefix(newpath, oldpath+"/") {
		return linkErr(syscall.EINVAL)
	}

	if existing, err := mfs.bfs.Lstat(newpath); err == nil {
		switch {
		case existing.IsDir() && !info.IsDir():
			return linkErr(syscall.EISDIR)
		case !existing.IsDir() && info.IsDir():
			return linkErr(syscall.ENOTDIR)
		case existing.IsDir():
			children, err := mfs.bfs.ReadDir(newpath)
			if err != nil {
				return linkErr(err)
			}
			if len(children) > 0 {
				return linkErr(syscall.ENOTEMPTY)
			}
		}
		if err := mfs.Remove(newpath); err != nil {
			return linkErr(err)
		}
	}

	if err := mfs.move(oldpath, newpath, info); err != nil {
		return linkErr(err)
	}
	return nil
}

func (mfs *MemoryFS) move(from, to string, info fs.FileInfo) error {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := mfs.bfs.Readlink(from)
		if err != nil {
			return err
		}
		if err := mfs.bfs.Symlink(target, to); err != nil {
			return err
		}
	case info.IsDir():
		if err := mfs.bfs.MkdirAll(to, info.Mode().Perm()); err != nil {
			return err
		}
		children, err := mfs.bfs.ReadDir(from)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := mfs.move(path.Join(from, child.Name()), path.Join(to, child.Name()), child); err != nil {
				return err
			}
		}
	default:
		data, err := util.ReadFile(mfs.bfs, from)
		if err != nil {
			return err
		}
		if err := util.WriteFile(mfs.bfs, to, data, info.Mode().Perm()); err != nil {
			return err
		}
	}

	mfs.attrs.rename(from, to)
	return mfs.bfs.Remove(from)
}

// Chmod records the permission bits of name.
func (mfs *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	name = normalize(name)
	if _, err := mfs.bfs.Stat(name); err != nil {
		return pathError("chmod", name, err)
	}
	mfs.attrs.setPerm(name, mode)
	return nil
}

// Chtimes records the modification time of name. memfs keeps no access time.
func (mfs *MemoryFS) Chtimes(name string, _, mtime time.Time) error {
	name = normalize(name)
	if _, err := mfs.bfs.Stat(name); err != nil {
		return pathError("chtimes", name, err)
	}
	mfs.attrs.setModTime(name, mtime)
	return nil
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

var (
	_ core.FS         = (*MemoryFS)(nil)
	_ core.MetadataFS = (*MemoryFS)(nil)
	_ core.SymlinkFS  = (*MemoryFS)(nil)
)
