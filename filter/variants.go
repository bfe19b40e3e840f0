package filter

// Leaf emits files and links only; directories are walked but not emitted.
type Leaf struct {
	Base
}

// NewLeaf returns the default filter.
func NewLeaf(opts ...Option) *Leaf {
	return &Leaf{Base: newBase(opts)}
}

// LeafsOnly returns true.
func (f *Leaf) LeafsOnly() bool { return true }

// DirectoryOnly emits directories only.
type DirectoryOnly struct {
	Base
}

// NewDirectoryOnly returns a filter listing the directories below a root.
func NewDirectoryOnly(opts ...Option) *DirectoryOnly {
	return &DirectoryOnly{Base: newBase(opts)}
}

// Accept rejects anything that is not a directory before applying the
// shared rules.
func (f *DirectoryOnly) Accept(e *Entry) bool {
	if !e.IsDir {
		return false
	}
	return f.Base.Accept(e)
}

// LeafsOnly returns false.
func (f *DirectoryOnly) LeafsOnly() bool { return false }

// RootRelative emits files and directories below the walked root but never
// the root itself, including through a link that resolves to it.
type RootRelative struct {
	Base
	root string
}

// NewRootRelative returns a filter listing everything below a root.
func NewRootRelative(opts ...Option) *RootRelative {
	return &RootRelative{Base: newBase(opts)}
}

// Configure records the canonical root of t, then sets the walk depth.
func (f *RootRelative) Configure(t Traversal) error {
	f.root = t.Root()
	return f.Base.Configure(t)
}

// Root returns the canonical root recorded by the last Configure.
func (f *RootRelative) Root() string {
	return f.root
}

// Accept rejects "..", the root's self entry and anything resolving to the
// root, then applies the pattern and canonical path rules.
func (f *RootRelative) Accept(e *Entry) bool {
	if e.Name == ".." || e.Name == SelfName {
		return false
	}
	if f.root != "" {
		if real, err := e.RealPath(); err == nil && real == f.root {
			return false
		}
	}
	return f.Base.acceptVisible(e)
}

// LeafsOnly returns false.
func (f *RootRelative) LeafsOnly() bool { return false }

var (
	_ Filter = (*Leaf)(nil)
	_ Filter = (*DirectoryOnly)(nil)
	_ Filter = (*RootRelative)(nil)
)
