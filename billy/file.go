package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
)

// File adapts a billy.File to fs.File. billy.File has no Stat, so the
// owning provider's Stat is captured instead.
type File struct {
	file billy.File
	stat func(name string) (fs.FileInfo, error)
	name string
}

func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *File) Close() error {
	return f.file.Close()
}

func (f *File) Stat() (fs.FileInfo, error) {
	return f.stat(f.name)
}

// Name returns the name passed to Open.
func (f *File) Name() string {
	return f.name
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

var (
	_ fs.File   = (*File)(nil)
	_ io.Seeker = (*File)(nil)
)
