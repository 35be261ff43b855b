package hydration

import "errors"

var (
	// ErrBlankLine is an error that occurs when a line holds no record.
	ErrBlankLine = errors.New("blank line")

	// ErrMalformedRecord is an error that occurs when a line cannot be
	// decoded into a [Record].
	ErrMalformedRecord = errors.New("malformed record")

	// ErrSourceUnreadable is an error that occurs when the import source
	// cannot be opened or read.
	ErrSourceUnreadable = errors.New("import source is unreadable")
)
