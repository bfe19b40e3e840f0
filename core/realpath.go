package core

import (
	"io/fs"
	"path"
	"strings"
)

// maxSymlinks bounds link expansion during Realpath, matching Linux's ELOOP limit.
const maxSymlinks = 40

// Realpath returns the canonical form of name: absolute, cleaned and with
// every symbolic link component expanded. Every component must exist, so a
// dangling link or missing path yields an error wrapping ErrNotExist.
//
// Providers without SymlinkFS and MetadataFS have no links to expand; for
// them Realpath only checks existence.
func Realpath(fsys FS, name string) (string, error) {
	if !path.IsAbs(name) {
		name = "/" + name
	}

	mfs, okMeta := fsys.(MetadataFS)
	sfs, okLink := fsys.(SymlinkFS)
	if !okMeta || !okLink {
		name = path.Clean(name)
		if _, err := fsys.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}

	resolved := "/"
	pending := splitPath(name)
	links := 0

	for len(pending) > 0 {
		comp := pending[0]
		pending = pending[1:]

		if comp == ".." {
			resolved = path.Dir(resolved)
			continue
		}

		candidate := path.Join(resolved, comp)
		info, err := mfs.Lstat(candidate)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			if len(pending) > 0 && !info.IsDir() {
				return "", &fs.PathError{Op: "realpath", Path: name, Err: fs.ErrNotExist}
			}
			resolved = candidate
			continue
		}

		links++
		if links > maxSymlinks {
			return "", &fs.PathError{Op: "realpath", Path: name, Err: ErrLoop}
		}

		target, err := sfs.Readlink(candidate)
		if err != nil {
			return "", err
		}
		if path.IsAbs(target) {
			resolved = "/"
		}
		pending = append(splitPath(target), pending...)
	}

	return resolved, nil
}

func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			out = append(out, part)
		}
	}
	return out
}
