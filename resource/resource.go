package resource

import (
	"io/fs"
	"log/slog"

	"github.com/medusaphp/filesystem/core"
	"github.com/medusaphp/filesystem/errors"
)

// Kind distinguishes file handles from directory handles.
type Kind int

const (
	// KindFile marks a *File.
	KindFile Kind = iota + 1
	// KindDirectory marks a *Directory.
	KindDirectory
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Resource is a location on a filesystem that can be moved, copied and
// linked. *File and *Directory implement it.
type Resource interface {
	// Location returns the path the handle was created with.
	Location() string

	// Kind reports whether the handle is a file or a directory handle.
	Kind() Kind

	// Exists reports whether the location resolves to an entry of the
	// handle's kind. Existence that cannot be determined reports false.
	Exists() bool

	// EnsureExists creates the entry when it is missing.
	EnsureExists() error

	// Move renames the location to target's location. The parent of the
	// target must exist.
	Move(target Resource) error

	// Copy duplicates the entry at target's location.
	Copy(target Resource) error

	// IsSymlink reports whether the location itself is a symbolic link.
	IsSymlink() bool

	// SetSymlinkTarget makes the location a symbolic link to target.
	SetSymlinkTarget(target Resource) error

	// SymlinkTarget returns a handle of the same kind for the immediate
	// destination of the link at the location.
	SymlinkTarget() (Resource, error)

	// Entry returns the traversal metadata attached by GetResources, or
	// nil for a handle created directly.
	Entry() *EntryInfo
}

// EntryInfo is the metadata a traversal attaches to a handle it discovered.
type EntryInfo struct {
	// Path is the visited path relative to the walked root.
	Path string
	// Depth is 1 for direct children of the walked root.
	Depth int
	// Info describes the visited entry without following a link.
	Info fs.FileInfo
}

// handle holds what File and Directory share.
type handle struct {
	location string
	opts     *options
	entry    *EntryInfo

	// info caches Stat for handles that carry no traversal metadata.
	info fs.FileInfo
}

// Location returns the path the handle was created with.
func (h *handle) Location() string {
	return h.location
}

// Entry returns the traversal metadata, if any.
func (h *handle) Entry() *EntryInfo {
	return h.entry
}

// FS returns the filesystem the handle operates on.
func (h *handle) FS() core.FS {
	return h.opts.fs
}

func (h *handle) logger() *slog.Logger {
	return h.opts.logger
}

// path resolves the location against the current working directory.
func (h *handle) path() (string, error) {
	return absolute(h.location)
}

// Info returns metadata for the location. Traversal metadata wins; otherwise
// the first call stats the location and later calls reuse the result.
func (h *handle) Info() (fs.FileInfo, error) {
	if h.entry != nil && h.entry.Info != nil {
		return h.entry.Info, nil
	}
	if h.info == nil {
		p, err := h.path()
		if err != nil {
			return nil, err
		}
		info, err := h.opts.fs.Stat(p)
		if err != nil {
			return nil, ioError(err, "failed to stat", p)
		}
		h.info = info
	}
	return h.info, nil
}

// IsSymlink reports whether the location itself is a symbolic link.
func (h *handle) IsSymlink() bool {
	p, err := h.path()
	if err != nil {
		return false
	}
	info, err := core.Lstat(h.opts.fs, p)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

func (h *handle) symlinkFS() (core.SymlinkFS, error) {
	sfs, ok := h.opts.fs.(core.SymlinkFS)
	if !ok {
		return nil, errors.WithContext(
			errors.Wrap(core.ErrUnsupported, errors.CodeUnsupported, "filesystem does not support symbolic links"),
			"location", h.location)
	}
	return sfs, nil
}

// readlink returns the raw destination of the link at the location.
func (h *handle) readlink() (string, error) {
	sfs, err := h.symlinkFS()
	if err != nil {
		return "", err
	}
	p, err := h.path()
	if err != nil {
		return "", err
	}
	dest, err := sfs.Readlink(p)
	if err != nil {
		return "", ioError(err, "failed to read symbolic link", p)
	}
	return dest, nil
}

// SetSymlinkTarget links the location to target. A link that already points
// at target is left alone and a link pointing elsewhere is replaced. Any
// other entry at the location is a logic error.
func (h *handle) SetSymlinkTarget(target Resource) error {
	sfs, err := h.symlinkFS()
	if err != nil {
		return err
	}
	p, err := h.path()
	if err != nil {
		return err
	}

	dest := target.Location()
	if h.IsSymlink() {
		current, err := h.readlink()
		if err != nil {
			return err
		}
		if current == dest {
			return nil
		}
		if err := h.opts.fs.Remove(p); err != nil {
			return ioError(err, "failed to replace symbolic link", p)
		}
	} else if _, err := core.Lstat(h.opts.fs, p); err == nil {
		return errors.WithContext(
			errors.Newf(errors.CodeLogic, "Location %q already exists. Cant create symlink", h.location),
			"location", p)
	}

	if err := sfs.Symlink(dest, p); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to create symbolic link",
			map[string]interface{}{"location": p, "target": dest})
	}
	h.logger().Debug("symbolic link set", "location", p, "target", dest)
	return nil
}

// Move renames the location to target's location.
func (h *handle) Move(target Resource) error {
	src, err := h.path()
	if err != nil {
		return err
	}
	dst, err := absolute(target.Location())
	if err != nil {
		return err
	}
	if err := h.opts.fs.Rename(src, dst); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to move resource",
			map[string]interface{}{"source": src, "target": dst})
	}
	h.logger().Debug("resource moved", "source", src, "target", dst)
	return nil
}

// ioError wraps a failing filesystem call.
func ioError(err error, message, location string) error {
	return errors.WrapWithContext(err, errors.CodeIO, message,
		map[string]interface{}{"location": location})
}

var (
	_ Resource = (*File)(nil)
	_ Resource = (*Directory)(nil)
)
