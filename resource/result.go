package resource

import (
	"path"
	"strings"
)

// Result holds the resources found by GetResources in one of two shapes: a
// flat Collection keyed by canonical path, or a Tree nested by the path
// segments below the walked root.
type Result struct {
	flat  *Collection
	tree  *Tree
	order []Resource
}

func newResult(tree bool) *Result {
	if tree {
		return &Result{tree: newTree()}
	}
	return &Result{flat: newCollection()}
}

// IsTree reports whether the result is nested.
func (r *Result) IsTree() bool {
	return r.tree != nil
}

// Collection returns the flat result, or nil for a nested one.
func (r *Result) Collection() *Collection {
	return r.flat
}

// Tree returns the nested result, or nil for a flat one.
func (r *Result) Tree() *Tree {
	return r.tree
}

// Resources returns every resource in visitation order.
func (r *Result) Resources() []Resource {
	out := make([]Resource, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of resources.
func (r *Result) Len() int {
	return len(r.order)
}

// add records res under its canonical path. rel is the visited path
// relative to the walked root and decides the nesting in tree mode.
// A link resolving to an entry already stored at the same level replaces it
// in place.
func (r *Result) add(rel, real string, res Resource) {
	var prev Resource
	if r.flat != nil {
		prev = r.flat.put(real, res)
	} else {
		node := r.tree
		if dir := path.Dir(rel); dir != "." {
			for _, seg := range strings.Split(dir, "/") {
				node = node.child(seg)
			}
		}
		prev = node.put(real, res)
	}

	if prev != nil {
		for i := range r.order {
			if r.order[i] == prev {
				r.order[i] = res
				return
			}
		}
	}
	r.order = append(r.order, res)
}

// Collection is an insertion-ordered map from canonical path to resource.
type Collection struct {
	keys  []string
	items map[string]Resource
}

func newCollection() *Collection {
	return &Collection{items: make(map[string]Resource)}
}

// put stores res and returns the resource it replaced, if any.
func (c *Collection) put(key string, res Resource) Resource {
	prev, ok := c.items[key]
	if !ok {
		c.keys = append(c.keys, key)
	}
	c.items[key] = res
	return prev
}

// Keys returns the canonical paths in visitation order.
func (c *Collection) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get returns the resource stored under a canonical path.
func (c *Collection) Get(key string) (Resource, bool) {
	res, ok := c.items[key]
	return res, ok
}

// Len returns the number of resources.
func (c *Collection) Len() int {
	return len(c.keys)
}

// Resources returns the resources in visitation order.
func (c *Collection) Resources() []Resource {
	out := make([]Resource, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}

// Tree is one level of a nested result. Its keys are either path segments,
// which lead to a subtree, or canonical paths, which lead to a resource.
// Segments never contain a slash and canonical paths always start with one.
type Tree struct {
	keys     []string
	children map[string]*Tree
	items    map[string]Resource
}

func newTree() *Tree {
	return &Tree{
		children: make(map[string]*Tree),
		items:    make(map[string]Resource),
	}
}

// child returns the subtree for seg, creating it on first use.
func (t *Tree) child(seg string) *Tree {
	if c, ok := t.children[seg]; ok {
		return c
	}
	c := newTree()
	t.children[seg] = c
	t.keys = append(t.keys, seg)
	return c
}

func (t *Tree) put(key string, res Resource) Resource {
	prev, ok := t.items[key]
	if !ok {
		t.keys = append(t.keys, key)
	}
	t.items[key] = res
	return prev
}

// Keys returns segments and canonical paths in insertion order.
func (t *Tree) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Child returns the subtree stored under a path segment.
func (t *Tree) Child(seg string) (*Tree, bool) {
	c, ok := t.children[seg]
	return c, ok
}

// Get returns the resource stored under a canonical path at this level.
func (t *Tree) Get(key string) (Resource, bool) {
	res, ok := t.items[key]
	return res, ok
}

// Len returns the number of keys at this level.
func (t *Tree) Len() int {
	return len(t.keys)
}
