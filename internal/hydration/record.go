package hydration

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/desertwitch/fstree/internal/schema"
)

// DirectoryMarker prefixes the lines of directory records.
const DirectoryMarker = '*'

// Record describes the creation of a single entry.
type Record struct {
	Name       string
	Kind       schema.Kind
	ParentPath string
}

// ParseLine decodes a single line into a [Record]. A file record has the
// form "<name> <parentPath>", a directory record "* <name> <parentPath>".
// The name ends at the first run of whitespace, the trimmed remainder is
// the parent path.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, ErrBlankLine
	}

	rec := Record{Kind: schema.KindFile}

	if line[0] == DirectoryMarker {
		rec.Kind = schema.KindDirectory
		line = strings.TrimLeftFunc(line[1:], unicode.IsSpace)
	}

	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return Record{}, fmt.Errorf("%w: missing parent path: %q", ErrMalformedRecord, line)
	}

	rec.Name = line[:idx]
	rec.ParentPath = strings.TrimSpace(line[idx:])

	if rec.Name == "" || rec.ParentPath == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	return rec, nil
}

// String returns the record in its line form.
func (r Record) String() string {
	if r.Kind == schema.KindDirectory {
		return fmt.Sprintf("%c %s %s", DirectoryMarker, r.Name, r.ParentPath)
	}

	return r.Name + " " + r.ParentPath
}
