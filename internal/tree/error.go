package tree

import "errors"

var (
	// ErrRootName is an error that occurs when an operation targets the
	// reserved root identifier as the entity to create, remove, move or copy.
	ErrRootName = errors.New("root cannot be targeted")

	// ErrPathNotFound is an error that occurs when a path does not resolve.
	ErrPathNotFound = errors.New("path does not resolve")

	// ErrInvalidName is an error that occurs when a name is empty after
	// sanitization.
	ErrInvalidName = errors.New("name is empty after sanitization")

	// ErrMoveIntoSelf is an error that occurs when a directory would be moved
	// into itself or one of its own descendants.
	ErrMoveIntoSelf = errors.New("cannot move a directory into its own subtree")
)
