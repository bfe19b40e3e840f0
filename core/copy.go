package core

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// CopyFile copies the bytes of src to dst, preserving permission bits.
// An existing dst is overwritten.
func CopyFile(fsys FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fmt.Errorf("is a directory")}
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}

	return fsys.WriteFile(dst, data, info.Mode().Perm())
}

// CopyTree recursively copies the directory src to dst, which is created
// when missing. Directories keep their permission bits, regular files are
// copied byte for byte and symbolic links are recreated with the same
// target. Existing files in dst are overwritten; nothing is removed.
func CopyTree(fsys FS, src, dst string) error {
	src = path.Clean(src)
	dst = path.Clean(dst)

	if dst == src || strings.HasPrefix(dst, src+"/") {
		return &fs.PathError{Op: "copy", Path: dst, Err: fmt.Errorf("cannot copy %s into itself", src)}
	}

	sfs, canLink := fsys.(SymlinkFS)

	return fsys.Walk(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, src), "/")
		target := path.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			if !canLink {
				return &fs.PathError{Op: "copy", Path: p, Err: ErrUnsupported}
			}
			link, err := sfs.Readlink(p)
			if err != nil {
				return err
			}
			if _, err := Lstat(fsys, target); err == nil {
				if err := fsys.Remove(target); err != nil {
					return err
				}
			}
			return sfs.Symlink(link, target)
		case info.IsDir():
			return fsys.MkdirAll(target, info.Mode().Perm())
		default:
			data, err := fsys.ReadFile(p)
			if err != nil {
				return err
			}
			return fsys.WriteFile(target, data, info.Mode().Perm())
		}
	})
}

// Lstat returns info for name without following a final symbolic link when
// the provider supports it, and falls back to Stat otherwise.
func Lstat(fsys FS, name string) (fs.FileInfo, error) {
	if mfs, ok := fsys.(MetadataFS); ok {
		return mfs.Lstat(name)
	}
	return fsys.Stat(name)
}
