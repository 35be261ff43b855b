package hydration

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// maxLineSize is the longest line the decoder accepts.
const maxLineSize = 1024 * 1024

// LineError is a decoding error bound to its line of the import source.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Decode reads all lines from r and returns the decoded records in order.
// Blank lines are skipped silently, malformed lines are skipped and returned
// as [LineError]. A read failure of r is returned as a fatal error.
func Decode(r io.Reader) ([]Record, []error, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), maxLineSize) //nolint:mnd

	var records []Record
	var lineErrs []error
	lineNum := 0

	for sc.Scan() {
		lineNum++

		rec, err := ParseLine(sc.Text())
		if errors.Is(err, ErrBlankLine) {
			continue
		}
		if err != nil {
			lineErrs = append(lineErrs, &LineError{Line: lineNum, Err: err})

			continue
		}

		records = append(records, rec)
	}

	if err := sc.Err(); err != nil {
		return records, lineErrs, fmt.Errorf("(hydration-decode) %w: %w", ErrSourceUnreadable, err)
	}

	return records, lineErrs, nil
}
