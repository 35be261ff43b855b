// Package tree implements an in-memory hierarchical namespace of files and
// directories, addressed by slash-delimited paths beginning with a reserved
// root identifier.
//
// A [Tree] is not thread-safe, callers must serialize access.
package tree

import (
	"github.com/desertwitch/fstree/internal/schema"
)

const (
	// RootName is the reserved identifier of the root directory. It can never
	// collide with a sanitized entry name.
	RootName = "C:"

	// Separator separates the segments of a path. It must not be
	// alphanumeric.
	Separator = '/'
)

// Tree owns a root directory and the entire hierarchy below it.
type Tree struct {
	root *schema.Node
}

// New returns a pointer to a new, empty [Tree] consisting only of the root.
func New() *Tree {
	return &Tree{
		root: newRoot(),
	}
}

func newRoot() *schema.Node {
	return schema.NewReservedNode(RootName, schema.KindDirectory)
}

// Root returns the root directory of the [Tree].
func (t *Tree) Root() *schema.Node {
	return t.root
}

// Clone returns a fully independent deep copy of the [Tree].
func (t *Tree) Clone() *Tree {
	return &Tree{
		root: t.root.Clone(),
	}
}

// Assign replaces the hierarchy of the [Tree] with a deep copy of the
// hierarchy of other. The previously owned hierarchy is released.
func (t *Tree) Assign(other *Tree) {
	if other == nil || other == t {
		return
	}

	t.root = other.root.Clone()
}
