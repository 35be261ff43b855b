package tree

import (
	"fmt"
	"io"

	"github.com/desertwitch/fstree/internal/schema"
)

// RenderIndent is the prefix written once per depth level by [Tree.Render].
const RenderIndent = "|     "

// Stats holds the entry counts of a [Tree]. The root is not counted.
type Stats struct {
	Directories int
	Files       int
}

// Find writes the full path of every entry named name at or below the
// directory at startPath to w, one per line, and returns the number of
// matches. Matches of a directory are written before those of its
// subdirectories, which are visited in ascending name order. An unresolved
// startPath yields zero matches.
func (t *Tree) Find(name string, startPath string, w io.Writer) (int, error) {
	node, ok := t.Resolve(startPath)
	if !ok {
		return 0, nil
	}

	return find(node, name, startPath, w)
}

func find(node *schema.Node, name string, path string, w io.Writer) (int, error) {
	matches := 0

	if match, ok := node.Child(name); ok {
		if _, err := fmt.Fprintln(w, JoinPath(path, match.Name())); err != nil {
			return matches, fmt.Errorf("(tree-find) %w", err)
		}
		matches++
	}

	for _, child := range node.Children() {
		if !child.IsDirectory() {
			continue
		}

		n, err := find(child, name, JoinPath(path, child.Name()), w)
		matches += n

		if err != nil {
			return matches, err
		}
	}

	return matches, nil
}

// Stats returns the number of directories, excluding the root, and the
// number of files of the entire [Tree].
func (t *Tree) Stats() Stats {
	var stats Stats

	for _, child := range t.root.Children() {
		countNode(child, &stats)
	}

	return stats
}

func countNode(node *schema.Node, stats *Stats) {
	if node.IsFile() {
		stats.Files++

		return
	}

	stats.Directories++

	for _, child := range node.Children() {
		countNode(child, stats)
	}
}

// WriteStats writes the [Stats] of the [Tree] to w as two labeled lines.
func (t *Tree) WriteStats(w io.Writer) error {
	stats := t.Stats()

	if _, err := fmt.Fprintf(w, "Directories: %d\nFiles: %d\n", stats.Directories, stats.Files); err != nil {
		return fmt.Errorf("(tree-stats) %w", err)
	}

	return nil
}

// Render writes a depth-indented listing of the entire [Tree] to w.
// Directories are wrapped in angle brackets, files are written bare.
func (t *Tree) Render(w io.Writer) error {
	return render(t.root, "", w)
}

func render(node *schema.Node, prefix string, w io.Writer) error {
	line := node.Name()
	if node.IsDirectory() {
		line = "<" + line + ">"
	}

	if _, err := fmt.Fprintln(w, prefix+line); err != nil {
		return fmt.Errorf("(tree-render) %w", err)
	}

	for _, child := range node.Children() {
		if err := render(child, prefix+RenderIndent, w); err != nil {
			return err
		}
	}

	return nil
}
