package tree

import (
	"strings"

	"github.com/desertwitch/fstree/internal/schema"
)

// Resolve returns the [schema.Node] addressed by path, or false if the path
// is malformed or any of its segments does not exist. A trailing separator
// is tolerated.
func (t *Tree) Resolve(path string) (*schema.Node, bool) {
	if path == RootName {
		return t.root, true
	}

	rest, ok := strings.CutPrefix(path, RootName+string(Separator))
	if !ok {
		return nil, false
	}

	rest = strings.TrimSuffix(rest, string(Separator))

	node := t.root
	if rest == "" {
		return node, true
	}

	for segment := range strings.SplitSeq(rest, string(Separator)) {
		node, ok = node.Child(segment)
		if !ok {
			return nil, false
		}
	}

	return node, true
}

// JoinPath returns the path of the entry name inside the directory at
// parent. A trailing separator of parent is not duplicated.
func JoinPath(parent string, name string) string {
	return strings.TrimSuffix(parent, string(Separator)) + string(Separator) + name
}
