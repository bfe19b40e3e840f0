package filter

import (
	"io/fs"

	"github.com/medusaphp/filesystem/errors"
)

// SelfName is the name under which the walked root is presented.
const SelfName = "."

// Entry is one node visited by a walk.
type Entry struct {
	// Name is the base name, or SelfName for the walked root.
	Name string
	// Path is the path as visited, below the walked root.
	Path string
	// Depth is 0 for the root and 1 for its direct children.
	Depth int
	// IsDir reports whether the entry resolves to a directory, following
	// a symbolic link.
	IsDir bool
	// Info describes the entry itself without following a symbolic link.
	Info fs.FileInfo
	// Resolve returns the canonical path of Path.
	Resolve func(path string) (string, error)

	resolved bool
	realpath string
	realErr  error
}

// RealPath returns the canonical path of the entry, resolving it on first
// use. An entry whose canonical path cannot be determined is invisible.
func (e *Entry) RealPath() (string, error) {
	if !e.resolved {
		e.resolved = true
		if e.Resolve == nil {
			e.realErr = errors.Newf(errors.CodeNotFound, "no resolver for %s", e.Path)
		} else {
			e.realpath, e.realErr = e.Resolve(e.Path)
		}
	}
	return e.realpath, e.realErr
}

// IsSymlink reports whether the entry itself is a symbolic link.
func (e *Entry) IsSymlink() bool {
	return e.Info != nil && e.Info.Mode()&fs.ModeSymlink != 0
}
