package filter

// Traversal is the walk a filter configures before iteration.
type Traversal interface {
	// SetMaxDepth bounds the walk. 0 means unlimited.
	SetMaxDepth(depth int)
	// Root returns the canonical path of the walked directory.
	Root() string
}

// Filter selects the entries a walk turns into resources.
type Filter interface {
	// Accept reports whether e becomes part of the result. A rejected
	// directory is still descended into.
	Accept(e *Entry) bool
	// Configure prepares t before the walk starts.
	Configure(t Traversal) error
	// MaxDepth returns the configured depth bound, 0 meaning unlimited.
	MaxDepth() int
	// Pattern returns the base name matcher, or nil.
	Pattern() Matcher
	// ResultAsTree reports whether results are nested by path segment.
	ResultAsTree() bool
	// LeafsOnly reports whether only terminal entries are emitted.
	LeafsOnly() bool
}

// Option configures the shared settings of a filter.
type Option func(*Base)

// WithMaxDepth bounds the walk depth. 0 means unlimited.
func WithMaxDepth(depth int) Option {
	return func(b *Base) {
		if depth < 0 {
			depth = 0
		}
		b.maxDepth = depth
	}
}

// WithPattern restricts results to entries whose base name matches m.
func WithPattern(m Matcher) Option {
	return func(b *Base) {
		b.pattern = m
	}
}

// WithResultAsTree nests the result by path segment instead of returning a
// flat collection.
func WithResultAsTree(tree bool) Option {
	return func(b *Base) {
		b.resultAsTree = tree
	}
}

// Base carries the settings and default acceptance rules shared by every
// filter variant. Its zero value accepts everything visible.
type Base struct {
	maxDepth     int
	pattern      Matcher
	resultAsTree bool
}

func newBase(opts []Option) Base {
	var b Base
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Accept rejects "." and "..", names not matching the pattern and entries
// without a canonical path, in that order.
func (b *Base) Accept(e *Entry) bool {
	if e.Name == SelfName || e.Name == ".." {
		return false
	}
	return b.acceptVisible(e)
}

// acceptVisible applies the pattern and canonical path rules.
func (b *Base) acceptVisible(e *Entry) bool {
	if b.pattern != nil && !b.pattern.Match(e.Name) {
		return false
	}
	if _, err := e.RealPath(); err != nil {
		return false
	}
	return true
}

// Configure sets the walk depth.
func (b *Base) Configure(t Traversal) error {
	t.SetMaxDepth(b.maxDepth)
	return nil
}

func (b *Base) MaxDepth() int      { return b.maxDepth }
func (b *Base) Pattern() Matcher   { return b.pattern }
func (b *Base) ResultAsTree() bool { return b.resultAsTree }

// SetMaxDepth changes the depth bound after construction.
func (b *Base) SetMaxDepth(depth int) { WithMaxDepth(depth)(b) }

// SetPattern changes the base name matcher after construction.
func (b *Base) SetPattern(m Matcher) { b.pattern = m }

// SetResultAsTree changes the result topology after construction.
func (b *Base) SetResultAsTree(tree bool) { b.resultAsTree = tree }
