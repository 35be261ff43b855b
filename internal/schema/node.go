package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Node is a single file or directory entry of the simulated hierarchy. A
// [Node] of [KindDirectory] exclusively owns its children, which are unique
// by name and always kept in ascending name order.
//
// The name and kind of a [Node] are fixed at construction. Nodes are meant
// to be passed by reference (pointer) and are not thread-safe.
type Node struct {
	name     string
	kind     Kind
	children []*Node
}

// NewNode returns a pointer to a new [Node] of the given kind. The name is
// passed through [SanitizeName] before being stored.
func NewNode(name string, kind Kind) *Node {
	return &Node{
		name: SanitizeName(name),
		kind: kind,
	}
}

// NewReservedNode returns a pointer to a new [Node] whose name is stored
// verbatim, bypassing [SanitizeName]. It exists for reserved entries such as
// the root of a tree and must not be used for regular entries.
func NewReservedNode(name string, kind Kind) *Node {
	return &Node{
		name: name,
		kind: kind,
	}
}

// Name returns the name of the [Node].
func (n *Node) Name() string {
	return n.name
}

// Kind returns the [Kind] of the [Node].
func (n *Node) Kind() Kind {
	return n.kind
}

// IsFile returns whether the [Node] is of [KindFile].
func (n *Node) IsFile() bool {
	return n.kind == KindFile
}

// IsDirectory returns whether the [Node] is of [KindDirectory].
func (n *Node) IsDirectory() bool {
	return n.kind == KindDirectory
}

// AddChild attaches child to the [Node], keeping the children sorted. It
// fails without any mutation if child is nil, if the [Node] is not a
// directory or if a child of the same name already exists.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return fmt.Errorf("(schema-node) %w", ErrNilChild)
	}

	if !n.IsDirectory() {
		return fmt.Errorf("(schema-node) %w: %s", ErrNotDirectory, n.name)
	}

	pos, found := n.search(child.name)
	if found {
		return fmt.Errorf("(schema-node) %w: %s", ErrDuplicateName, child.name)
	}

	n.children = slices.Insert(n.children, pos, child)

	return nil
}

// ChildAt returns the child at position index in sorted order, or false if
// the index is out of bounds.
func (n *Node) ChildAt(index int) (*Node, bool) {
	if index < 0 || index >= len(n.children) {
		return nil, false
	}

	return n.children[index], true
}

// Child returns the child of the given name, or false if no such child
// exists.
func (n *Node) Child(name string) (*Node, bool) {
	pos, found := n.search(name)
	if !found {
		return nil, false
	}

	return n.children[pos], true
}

// ChildCount returns the number of direct children, which is always zero for
// a [Node] of [KindFile].
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Children returns a copy of the internal slice holding the children, in
// ascending name order.
func (n *Node) Children() []*Node {
	result := make([]*Node, len(n.children))
	copy(result, n.children)

	return result
}

// RemoveChild detaches the child of the given name, releasing its entire
// subtree along with it.
func (n *Node) RemoveChild(name string) error {
	if !n.IsDirectory() {
		return fmt.Errorf("(schema-node) %w: %s", ErrNotDirectory, n.name)
	}

	pos, found := n.search(name)
	if !found {
		return fmt.Errorf("(schema-node) %w: %s", ErrChildNotFound, name)
	}

	n.children[pos] = nil
	n.children = slices.Delete(n.children, pos, pos+1)

	return nil
}

// Contains returns whether other is the [Node] itself or one of its
// descendants.
func (n *Node) Contains(other *Node) bool {
	if n == other {
		return true
	}

	for _, child := range n.children {
		if child.Contains(other) {
			return true
		}
	}

	return false
}

// Clone returns a fully independent deep copy of the [Node] and all of its
// descendants. No [Node] is shared between the original and the copy.
func (n *Node) Clone() *Node {
	clone := &Node{
		name: n.name,
		kind: n.kind,
	}

	if len(n.children) > 0 {
		clone.children = make([]*Node, 0, len(n.children))
		for _, child := range n.children {
			// Children are already ordered, so appending keeps the order.
			clone.children = append(clone.children, child.Clone())
		}
	}

	return clone
}

func (n *Node) search(name string) (int, bool) {
	return slices.BinarySearchFunc(n.children, name, func(c *Node, target string) int {
		return strings.Compare(c.name, target)
	})
}
