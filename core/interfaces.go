package core

import (
	"io/fs"
	"time"
)

// FSType identifies the storage behind an FS.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host operating system's filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the backend contract resources operate on. Paths are absolute,
// slash separated and rooted at "/".
//
// FS embeds fs.FS for stdlib compatibility. Symbolic links and permission
// bits are optional capabilities (SymlinkFS, MetadataFS) discovered with a
// type assertion.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Stat returns file metadata, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named path resolves to an entry. A false
	// result with a non-nil error means existence could not be determined.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// WriteFile writes data to the named file, creating it with perm if
	// necessary and truncating it otherwise. The parent must exist.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. It fails with ErrNotExist when the
	// parent is missing and ErrExist when name already exists.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines removal and renaming.
type ManageFS interface {
	// Remove removes the named file, symbolic link or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// If the path does not exist, RemoveAll returns nil.
	RemoveAll(path string) error

	// Rename moves oldpath to newpath. The parent of newpath must exist;
	// providers never create it implicitly.
	Rename(oldpath, newpath string) error
}

// WalkFS defines directory tree traversal.
type WalkFS interface {
	// Walk walks the file tree rooted at root in lexical, depth-first
	// pre-order, calling walkFn for each entry including root. Symbolic
	// links are reported but never followed. Returning fs.SkipDir from
	// walkFn for a directory skips its contents.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// MetadataFS defines metadata operations.
//
//	if mfs, ok := fsys.(core.MetadataFS); ok {
//	    err := mfs.Chmod("/srv/data", 0o754)
//	}
type MetadataFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod sets the permission bits of the named entry exactly.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}

// SymlinkFS defines symbolic link operations.
type SymlinkFS interface {
	// Symlink creates newname as a symbolic link to oldname. The target is
	// stored as given. It fails with ErrExist if newname exists and with
	// ErrNotExist if the parent of newname is missing.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}
