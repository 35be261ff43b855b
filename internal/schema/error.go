package schema

import "errors"

var (
	// ErrNilChild is an error that occurs when a nil [Node] is added as a
	// child.
	ErrNilChild = errors.New("child is nil")

	// ErrNotDirectory is an error that occurs when a child operation is
	// attempted on a [Node] of [KindFile].
	ErrNotDirectory = errors.New("node is not a directory")

	// ErrDuplicateName is an error that occurs when a directory already has a
	// child of the same name.
	ErrDuplicateName = errors.New("name already exists in directory")

	// ErrChildNotFound is an error that occurs when a directory has no child
	// of the requested name.
	ErrChildNotFound = errors.New("child does not exist")
)
