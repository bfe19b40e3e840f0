// Package filter decides which entries of a directory walk become resources.
//
// A Filter is consulted once per visited entry through Accept and configures
// the walk before it starts through Configure. Three variants share the
// defaults in Base:
//
//   - Leaf emits only terminal entries (files and links) and is the default.
//   - DirectoryOnly emits directories only.
//   - RootRelative emits files and directories but never the walked root.
//
// Patterns are Matchers applied to an entry's base name only:
//
//	f := filter.NewLeaf(
//	    filter.WithPattern(filter.MustRegexp(`/\.php$/i`)),
//	    filter.WithMaxDepth(2),
//	)
package filter
