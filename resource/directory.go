package resource

import (
	"context"
	"io/fs"
	"path"
	"strings"

	"github.com/medusaphp/filesystem/core"
	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/exec"
)

// DirPerm is the mode EnsureExists creates directories with.
const DirPerm fs.FileMode = 0o755

// Directory is a handle to a directory. It remembers the working directory
// it replaced on Chdir so GoBack can restore it.
type Directory struct {
	handle
	previous string
}

// NewDirectory returns a handle for location with trailing slashes removed.
func NewDirectory(location string, opts ...Option) *Directory {
	return newDirectory(location, newOptions(opts))
}

func newDirectory(location string, o *options) *Directory {
	trimmed := strings.TrimRight(location, "/")
	if trimmed == "" && location != "" {
		trimmed = "/"
	}
	return &Directory{handle: handle{location: trimmed, opts: o}}
}

// Kind returns KindDirectory.
func (d *Directory) Kind() Kind { return KindDirectory }

// Exists reports whether the location resolves to a directory.
func (d *Directory) Exists() bool {
	p, err := d.path()
	if err != nil {
		return false
	}
	info, err := d.opts.fs.Stat(p)
	return err == nil && info.IsDir()
}

// EnsureExists creates the directory and any missing parents with DirPerm.
func (d *Directory) EnsureExists() error {
	if d.Exists() {
		return nil
	}
	return d.Mkdir(true, DirPerm)
}

// Mkdir creates the directory with exactly the permission bits in mode. When
// recursive is false the parent must already exist.
func (d *Directory) Mkdir(recursive bool, mode fs.FileMode) error {
	p, err := d.path()
	if err != nil {
		return err
	}
	if _, err := core.Lstat(d.opts.fs, p); err == nil {
		return ioError(&fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}, "failed to create directory", p)
	}

	if recursive {
		err = d.opts.fs.MkdirAll(p, mode)
	} else {
		err = d.opts.fs.Mkdir(p, mode)
	}
	if err != nil {
		return ioError(err, "failed to create directory", p)
	}

	if mfs, ok := d.opts.fs.(core.MetadataFS); ok {
		if err := mfs.Chmod(p, mode.Perm()); err != nil {
			return ioError(err, "failed to set directory mode", p)
		}
	}
	d.logger().Debug("directory created", "location", p, "mode", mode.Perm().String(), "recursive", recursive)
	return nil
}

// Copy copies the whole subtree to target's location. An existing directory
// target receives the copy under the source's base name.
func (d *Directory) Copy(target Resource) error {
	src, err := d.path()
	if err != nil {
		return err
	}
	dst, err := absolute(target.Location())
	if err != nil {
		return err
	}
	if info, err := d.opts.fs.Stat(dst); err == nil && info.IsDir() {
		dst = path.Join(dst, path.Base(src))
	}
	if err := core.CopyTree(d.opts.fs, src, dst); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to copy directory",
			map[string]interface{}{"source": src, "target": dst})
	}
	d.logger().Debug("directory copied", "source", src, "target", dst)
	return nil
}

// SymlinkTarget returns a directory handle for the immediate link
// destination.
func (d *Directory) SymlinkTarget() (Resource, error) {
	dest, err := d.readlink()
	if err != nil {
		return nil, err
	}
	return newDirectory(dest, d.opts), nil
}

// Remove deletes the directory, which must be empty.
func (d *Directory) Remove() error {
	p, err := d.path()
	if err != nil {
		return err
	}
	info, err := core.Lstat(d.opts.fs, p)
	if err != nil {
		return ioError(err, "failed to remove directory", p)
	}
	if !info.IsDir() {
		return errors.WithContext(
			errors.New(errors.CodeIO, "failed to remove directory: not a directory"),
			"location", p)
	}
	if err := d.opts.fs.Remove(p); err != nil {
		return ioError(err, "failed to remove directory", p)
	}
	d.info = nil
	return nil
}

// Unlink removes a symbolic link standing at the location.
func (d *Directory) Unlink() error {
	p, err := d.path()
	if err != nil {
		return err
	}
	if !d.IsSymlink() {
		return errors.WithContext(
			errors.New(errors.CodeIO, "failed to unlink: not a symbolic link"),
			"location", p)
	}
	if err := d.opts.fs.Remove(p); err != nil {
		return ioError(err, "failed to unlink", p)
	}
	return nil
}

// Chdir makes the directory the process working directory and records the
// one it replaced. Nothing happens when it already is current. Only local
// directories can be entered; other providers fail with CodeUnsupported.
func (d *Directory) Chdir() error {
	p, err := d.path()
	if err != nil {
		return err
	}
	if err := requireLocal(d.opts.fs, p); err != nil {
		return err
	}
	wd, err := Getwd()
	if err != nil {
		return err
	}
	if wd == p {
		return nil
	}
	if err := chdir(d.opts.fs, p); err != nil {
		return err
	}
	d.previous = wd
	d.logger().Debug("working directory changed", "from", wd, "to", p)
	return nil
}

// GoBack restores the working directory recorded by the last Chdir and
// clears the record. Without a record it does nothing.
func (d *Directory) GoBack() error {
	if d.previous == "" {
		return nil
	}
	prev := d.previous
	if err := restore(prev); err != nil {
		return err
	}
	d.previous = ""
	d.logger().Debug("working directory restored", "to", prev)
	return nil
}

// CreateArchive writes a tar archive of the directory to target. The archive
// holds the directory under its base name. It runs the system tar on a clone
// of the configured executor, so per-run settings never reach the caller's
// executor, and works on the local filesystem only.
func (d *Directory) CreateArchive(ctx context.Context, target *File) error {
	if d.opts.fs.Type() != core.FSTypeLocal {
		return errors.WithContext(
			errors.Wrap(core.ErrUnsupported, errors.CodeUnsupported, "archives require the local filesystem"),
			"location", d.location)
	}

	src, err := d.path()
	if err != nil {
		return err
	}
	dst, err := target.path()
	if err != nil {
		return err
	}

	if err := newDirectory(path.Dir(dst), d.opts).EnsureExists(); err != nil {
		return err
	}

	tar := exec.NewWrapper(d.opts.executor.Clone(), "tar")
	_, err = tar.WithDir(path.Dir(src)).
		WithEnv(map[string]string{"LC_ALL": "C"}).
		WithContext(ctx).
		Run("-cf", dst, path.Base(src))
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeExecutionFailed, "failed to create archive",
			map[string]interface{}{"source": src, "target": dst})
	}
	d.logger().Debug("archive created", "source", src, "target", dst)
	return nil
}
