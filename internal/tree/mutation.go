package tree

import (
	"fmt"

	"github.com/desertwitch/fstree/internal/schema"
)

// Create attaches a new, empty entry of the given kind to the directory at
// parentPath. The name is sanitized before being stored.
func (t *Tree) Create(name string, kind schema.Kind, parentPath string) error {
	if name == RootName {
		return fmt.Errorf("(tree-create) %w", ErrRootName)
	}

	parent, ok := t.Resolve(parentPath)
	if !ok {
		return fmt.Errorf("(tree-create) %w: %s", ErrPathNotFound, parentPath)
	}

	node := schema.NewNode(name, kind)
	if node.Name() == "" {
		return fmt.Errorf("(tree-create) %w: %q", ErrInvalidName, name)
	}

	if err := parent.AddChild(node); err != nil {
		return fmt.Errorf("(tree-create) %w", err)
	}

	return nil
}

// Remove removes the entry name, including its entire subtree, from the
// directory at parentPath.
func (t *Tree) Remove(name string, parentPath string) error {
	if name == RootName {
		return fmt.Errorf("(tree-remove) %w", ErrRootName)
	}

	parent, ok := t.Resolve(parentPath)
	if !ok {
		return fmt.Errorf("(tree-remove) %w: %s", ErrPathNotFound, parentPath)
	}

	if err := parent.RemoveChild(name); err != nil {
		return fmt.Errorf("(tree-remove) %w", err)
	}

	return nil
}

// Move re-parents the entry name from the directory at sourcePath to the
// directory at destPath. The entry is attached to the destination first and
// only detached from the source once that succeeded, so a failing move
// leaves the [Tree] unchanged.
func (t *Tree) Move(name string, sourcePath string, destPath string) error {
	src, dst, node, err := t.transferEnds(name, sourcePath, destPath)
	if err != nil {
		return fmt.Errorf("(tree-move) %w", err)
	}

	if node.Contains(dst) {
		return fmt.Errorf("(tree-move) %w: %s", ErrMoveIntoSelf, JoinPath(sourcePath, name))
	}

	if err := dst.AddChild(node); err != nil {
		return fmt.Errorf("(tree-move) %w", err)
	}

	if err := src.RemoveChild(name); err != nil {
		return fmt.Errorf("(tree-move) %w", err)
	}

	return nil
}

// Copy attaches an independent deep copy of the entry name from the
// directory at sourcePath to the directory at destPath. The source is never
// modified.
func (t *Tree) Copy(name string, sourcePath string, destPath string) error {
	_, dst, node, err := t.transferEnds(name, sourcePath, destPath)
	if err != nil {
		return fmt.Errorf("(tree-copy) %w", err)
	}

	if err := dst.AddChild(node.Clone()); err != nil {
		return fmt.Errorf("(tree-copy) %w", err)
	}

	return nil
}

// Format removes every entry below the root, leaving an empty [Tree].
func (t *Tree) Format() error {
	for t.root.ChildCount() > 0 {
		child, _ := t.root.ChildAt(0)
		if err := t.root.RemoveChild(child.Name()); err != nil {
			return fmt.Errorf("(tree-format) %w", err)
		}
	}

	return nil
}

// transferEnds resolves the source directory, the destination directory and
// the entry to be moved or copied.
func (t *Tree) transferEnds(name string, sourcePath string, destPath string) (*schema.Node, *schema.Node, *schema.Node, error) {
	if name == RootName {
		return nil, nil, nil, ErrRootName
	}

	src, ok := t.Resolve(sourcePath)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrPathNotFound, sourcePath)
	}

	dst, ok := t.Resolve(destPath)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrPathNotFound, destPath)
	}

	node, ok := src.Child(name)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %s", schema.ErrChildNotFound, JoinPath(sourcePath, name))
	}

	return src, dst, node, nil
}
