package resource

import (
	"io/fs"
	"path"
	"time"

	"github.com/medusaphp/filesystem/core"
	"github.com/medusaphp/filesystem/errors"
)

// filePerm is the mode of files created by Save and Touch.
const filePerm fs.FileMode = 0o644

// File is a handle to a regular file with an in-memory content buffer. The
// buffer is filled by Load and written by Save; SetContent never touches
// the filesystem.
type File struct {
	handle
	content string
}

// NewFile returns a handle for location. Nothing is read.
func NewFile(location string, opts ...Option) *File {
	return newFile(location, newOptions(opts))
}

func newFile(location string, o *options) *File {
	return &File{handle: handle{location: location, opts: o}}
}

// OpenFile returns a handle for location and loads its content when the file
// exists.
func OpenFile(location string, opts ...Option) (*File, error) {
	f := NewFile(location, opts...)
	if f.Exists() {
		if err := f.Load(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Kind returns KindFile.
func (f *File) Kind() Kind { return KindFile }

// Filename returns the base name of the location.
func (f *File) Filename() string {
	return path.Base(f.location)
}

// Dirname returns the directory part of the location.
func (f *File) Dirname() string {
	return path.Dir(f.location)
}

// Exists reports whether anything exists at the location, following links.
func (f *File) Exists() bool {
	p, err := f.path()
	if err != nil {
		return false
	}
	ok, err := f.opts.fs.Exists(p)
	return err == nil && ok
}

// EnsureExists creates an empty file when nothing exists at the location.
func (f *File) EnsureExists() error {
	if f.Exists() {
		return nil
	}
	return f.Touch()
}

// Touch creates an empty file, or sets the modification time of an existing
// one to now.
func (f *File) Touch() error {
	p, err := f.path()
	if err != nil {
		return err
	}
	if !f.Exists() {
		if err := f.opts.fs.WriteFile(p, nil, filePerm); err != nil {
			return ioError(err, "failed to create file", p)
		}
		return nil
	}
	mfs, ok := f.opts.fs.(core.MetadataFS)
	if !ok {
		return nil
	}
	now := time.Now()
	if err := mfs.Chtimes(p, now, now); err != nil {
		return ioError(err, "failed to touch file", p)
	}
	return nil
}

// Load reads the file into the content buffer.
func (f *File) Load() error {
	p, err := f.path()
	if err != nil {
		return err
	}
	data, err := f.opts.fs.ReadFile(p)
	if err != nil {
		return ioError(err, "failed to load file", p)
	}
	f.content = string(data)
	f.logger().Debug("file loaded", "location", p, "bytes", len(data))
	return nil
}

// Save writes the content buffer to the file, replacing what was there and
// creating the file if needed.
func (f *File) Save() error {
	p, err := f.path()
	if err != nil {
		return err
	}
	if err := f.opts.fs.WriteFile(p, []byte(f.content), filePerm); err != nil {
		return ioError(err, "failed to save file", p)
	}
	f.info = nil
	f.logger().Debug("file saved", "location", p, "bytes", len(f.content))
	return nil
}

// Content returns the content buffer.
func (f *File) Content() string {
	return f.content
}

// SetContent replaces the content buffer.
func (f *File) SetContent(content string) {
	f.content = content
}

// Copy duplicates the file at target's location. When the target is an
// existing directory the copy is placed inside it under the same base name.
func (f *File) Copy(target Resource) error {
	src, err := f.path()
	if err != nil {
		return err
	}
	dst, err := absolute(target.Location())
	if err != nil {
		return err
	}
	if info, err := f.opts.fs.Stat(dst); err == nil && info.IsDir() {
		dst = path.Join(dst, path.Base(src))
	}
	if err := core.CopyFile(f.opts.fs, src, dst); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to copy file",
			map[string]interface{}{"source": src, "target": dst})
	}
	f.logger().Debug("file copied", "source", src, "target", dst)
	return nil
}

// SymlinkTarget returns a file handle for the immediate link destination.
func (f *File) SymlinkTarget() (Resource, error) {
	dest, err := f.readlink()
	if err != nil {
		return nil, err
	}
	return newFile(dest, f.opts), nil
}

// Unlink removes the file or symbolic link at the location.
func (f *File) Unlink() error {
	p, err := f.path()
	if err != nil {
		return err
	}
	info, err := core.Lstat(f.opts.fs, p)
	if err != nil {
		return ioError(err, "failed to unlink", p)
	}
	if info.IsDir() {
		return errors.WithContext(
			errors.New(errors.CodeIO, "failed to unlink: is a directory"),
			"location", p)
	}
	if err := f.opts.fs.Remove(p); err != nil {
		return ioError(err, "failed to unlink", p)
	}
	f.info = nil
	return nil
}
