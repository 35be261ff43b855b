package script

import "errors"

var (
	// ErrUnknownCommand is an error that occurs when a line names a command
	// that does not exist.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrArgumentCount is an error that occurs when a command receives the
	// wrong number of arguments.
	ErrArgumentCount = errors.New("wrong number of arguments")
)
