package billy

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// provider holds the operations shared by LocalFS and MemoryFS. go-billy
// creates missing parents on create, rename and symlink; provider refuses
// those calls instead so both backends behave like POSIX.
type provider struct {
	bfs   billy.Filesystem
	attrs *attrTable
	chmod func(name string, mode fs.FileMode) error
}

// normalize converts paths to cleaned, absolute, forward-slash form.
func normalize(name string) string {
	return path.Clean("/" + filepath.ToSlash(name))
}

// pathError attaches op and path to bare errors returned by go-billy.
func pathError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	var pe *fs.PathError
	var le *os.LinkError
	if errors.As(err, &pe) || errors.As(err, &le) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// requireParent fails unless the parent directory of name exists.
func (p *provider) requireParent(op, name string) error {
	parent := path.Dir(name)
	if parent == name {
		return nil
	}
	info, err := p.bfs.Stat(parent)
	if err != nil {
		if isNotExist(err) {
			return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
		}
		return pathError(op, name, err)
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: syscall.ENOTDIR}
	}
	return nil
}

func (p *provider) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := p.bfs.Open(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return &File{file: f, stat: p.Stat, name: name}, nil
}

func (p *provider) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := p.bfs.Stat(name)
	if err != nil {
		return nil, pathError("stat", name, err)
	}
	return p.attrs.apply(name, info), nil
}

func (p *provider) Lstat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := p.bfs.Lstat(name)
	if err != nil {
		return nil, pathError("lstat", name, err)
	}
	return p.attrs.apply(name, info), nil
}

func (p *provider) ReadDir(name string) ([]fs.DirEntry, error) {
	name = normalize(name)
	infos, err := p.bfs.ReadDir(name)
	if err != nil {
		return nil, pathError("readdir", name, err)
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(p.attrs.apply(path.Join(name, info.Name()), info))
	}
	return entries, nil
}

func (p *provider) ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	data, err := util.ReadFile(p.bfs, name)
	if err != nil {
		return nil, pathError("read", name, err)
	}
	return data, nil
}

func (p *provider) Exists(name string) (bool, error) {
	_, err := p.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}

func (p *provider) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if err := p.requireParent("write", name); err != nil {
		return err
	}
	return pathError("write", name, util.WriteFile(p.bfs, name, data, perm))
}

// Mkdir creates a single directory with exactly perm.
func (p *provider) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := p.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if err := p.requireParent("mkdir", name); err != nil {
		return err
	}
	if err := p.bfs.MkdirAll(name, perm); err != nil {
		return pathError("mkdir", name, err)
	}
	return p.chmod(name, perm)
}

// MkdirAll creates name and any missing parents. Only the final directory
// receives perm when it is created here.
func (p *provider) MkdirAll(name string, perm fs.FileMode) error {
	name = normalize(name)
	if info, err := p.bfs.Stat(name); err == nil {
		if info.IsDir() {
			return nil
		}
		return &fs.PathError{Op: "mkdir", Path: name, Err: syscall.ENOTDIR}
	}
	if err := p.bfs.MkdirAll(name, perm); err != nil {
		return pathError("mkdir", name, err)
	}
	return p.chmod(name, perm)
}

func (p *provider) Remove(name string) error {
	name = normalize(name)
	if err := p.bfs.Remove(name); err != nil {
		return pathError("remove", name, err)
	}
	p.attrs.forget(name)
	return nil
}

func (p *provider) RemoveAll(name string) error {
	name = normalize(name)
	if err := util.RemoveAll(p.bfs, name); err != nil {
		return pathError("remove", name, err)
	}
	p.attrs.forgetTree(name)
	return nil
}

func (p *provider) Symlink(oldname, newname string) error {
	newname = normalize(newname)
	if _, err := p.bfs.Lstat(newname); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrExist}
	}
	if err := p.requireParent("symlink", newname); err != nil {
		return err
	}
	if err := p.bfs.Symlink(filepath.FromSlash(oldname), newname); err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	return nil
}

func (p *provider) Readlink(name string) (string, error) {
	name = normalize(name)
	target, err := p.bfs.Readlink(name)
	if err != nil {
		return "", pathError("readlink", name, err)
	}
	return filepath.ToSlash(target), nil
}

// Walk walks root in lexical pre-order without following symbolic links.
func (p *provider) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	err := util.Walk(p.bfs, root, func(name string, info os.FileInfo, err error) error {
		name = filepath.ToSlash(name)
		var d fs.DirEntry
		if info != nil {
			d = fs.FileInfoToDirEntry(p.attrs.apply(name, info))
		}
		if err != nil {
			return walkFn(name, d, pathError("walk", name, err))
		}
		return walkFn(name, d, nil)
	})
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}
