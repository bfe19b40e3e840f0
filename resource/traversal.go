package resource

import (
	"io/fs"
	"path"
	"strings"

	"github.com/medusaphp/filesystem/core"
	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/filter"
)

// traversal is the walk state a filter configures.
type traversal struct {
	root     string
	maxDepth int
}

func (t *traversal) SetMaxDepth(depth int) {
	if depth < 0 {
		depth = 0
	}
	t.maxDepth = depth
}

func (t *traversal) Root() string {
	return t.root
}

// descends reports whether a directory at depth has its children visited.
// The root's children form the first level below the limit, so maxDepth N
// still reaches entries N levels beneath them.
func (t *traversal) descends(depth int) bool {
	return t.maxDepth == 0 || depth <= t.maxDepth
}

// GetResources walks the directory depth-first and returns the entries f
// accepts, keyed by canonical path. A nil f selects filter.NewLeaf().
//
// The walk starts at the canonical form of the directory. The root is
// offered to f as the "." entry at depth 0 and its children have depth 1.
// A filter depth of N visits entries down to depth N+1; 0 is unlimited.
// Symbolic links are reported but never descended into. In leaf-only mode
// directories are never offered, even below the depth limit, while links to
// directories count as leaves. A rejected
// directory is still descended into. Entries whose canonical path cannot be
// resolved are left out without error.
func (d *Directory) GetResources(f filter.Filter) (*Result, error) {
	if f == nil {
		f = filter.NewLeaf()
	}
	fsys := d.opts.fs

	p, err := d.path()
	if err != nil {
		return nil, err
	}
	root, err := core.Realpath(fsys, p)
	if err != nil {
		return nil, ioError(err, "failed to resolve directory", p)
	}
	if info, err := fsys.Stat(root); err != nil {
		return nil, ioError(err, "failed to read directory", root)
	} else if !info.IsDir() {
		return nil, errors.WithContext(
			errors.New(errors.CodeIO, "failed to read directory: not a directory"),
			"location", root)
	}

	t := &traversal{root: root}
	if err := f.Configure(t); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to configure filter",
			map[string]interface{}{"location": root})
	}

	resolve := func(rel string) (string, error) {
		return core.Realpath(fsys, path.Join(root, rel))
	}
	result := newResult(f.ResultAsTree())

	d.logger().Debug("traversal started", "root", root, "maxDepth", t.maxDepth,
		"leafsOnly", f.LeafsOnly(), "tree", f.ResultAsTree())

	err = fsys.Walk(root, func(name string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := relativePath(root, name)
		depth := depthOf(rel)
		descend := de.IsDir() && t.descends(depth)

		if !(f.LeafsOnly() && de.IsDir()) {
			entry, err := newEntry(fsys, name, rel, depth, de, resolve)
			if err != nil {
				return err
			}
			if f.Accept(entry) {
				if real, err := entry.RealPath(); err == nil {
					result.add(rel, real, materialize(real, entry, d.opts))
				}
			}
		}

		if de.IsDir() && !descend {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, ioError(err, "failed to walk directory", root)
	}

	d.logger().Debug("traversal finished", "root", root, "resources", result.Len())
	return result, nil
}

// newEntry describes a visited entry for a filter. IsDir follows a link with
// one Stat; a dangling link is not a directory.
func newEntry(fsys core.FS, name, rel string, depth int, de fs.DirEntry, resolve func(string) (string, error)) (*filter.Entry, error) {
	info, err := de.Info()
	if err != nil {
		return nil, err
	}

	isDir := de.IsDir()
	if de.Type()&fs.ModeSymlink != 0 {
		if target, err := fsys.Stat(name); err == nil {
			isDir = target.IsDir()
		}
	}

	base := de.Name()
	if depth == 0 {
		base = filter.SelfName
	}

	return &filter.Entry{
		Name:    base,
		Path:    rel,
		Depth:   depth,
		IsDir:   isDir,
		Info:    info,
		Resolve: resolve,
	}, nil
}

// materialize turns an accepted entry into a handle at its canonical path.
func materialize(real string, e *filter.Entry, o *options) Resource {
	meta := &EntryInfo{Path: e.Path, Depth: e.Depth, Info: e.Info}
	if e.IsDir {
		dir := newDirectory(real, o)
		dir.entry = meta
		return dir
	}
	file := newFile(real, o)
	file.entry = meta
	return file
}

// relativePath returns name relative to root, or "." for root itself.
func relativePath(root, name string) string {
	if name == root {
		return "."
	}
	if root == "/" {
		return strings.TrimPrefix(name, "/")
	}
	return strings.TrimPrefix(name, root+"/")
}

// depthOf counts the segments of a root-relative path.
func depthOf(rel string) int {
	if rel == "." {
		return 0
	}
	return strings.Count(rel, "/") + 1
}
