// Package script implements a line-oriented command driver that replays
// operations onto a [tree.Tree] and writes their reports to an output sink.
//
// Every line holds one command with whitespace-separated arguments. Blank
// lines and lines starting with '#' are ignored.
//
//	create <name> <parentPath>
//	mkdir  <name> <parentPath>
//	remove <name> <parentPath>
//	move   <name> <sourcePath> <destPath>
//	copy   <name> <sourcePath> <destPath>
//	find   <name> <startPath>
//	stats
//	tree
//	format
//	digest
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/desertwitch/fstree/internal/schema"
	"github.com/desertwitch/fstree/internal/tree"
)

const commentPrefix = "#"

// Result summarizes a script run.
type Result struct {
	// Executed is the number of commands that were run, including failed ones.
	Executed int

	// Failed is the number of commands that returned an error.
	Failed int
}

type command struct {
	args int
	run  func(r *Runner, args []string) error
}

//nolint:gochecknoglobals,mnd
var commands = map[string]command{
	"create": {2, func(r *Runner, a []string) error { return r.tree.Create(a[0], schema.KindFile, a[1]) }},
	"mkdir":  {2, func(r *Runner, a []string) error { return r.tree.Create(a[0], schema.KindDirectory, a[1]) }},
	"remove": {2, func(r *Runner, a []string) error { return r.tree.Remove(a[0], a[1]) }},
	"move":   {3, func(r *Runner, a []string) error { return r.tree.Move(a[0], a[1], a[2]) }},
	"copy":   {3, func(r *Runner, a []string) error { return r.tree.Copy(a[0], a[1], a[2]) }},
	"find":   {2, (*Runner).find},
	"stats":  {0, func(r *Runner, _ []string) error { return r.tree.WriteStats(r.out) }},
	"tree":   {0, func(r *Runner, _ []string) error { return r.tree.Render(r.out) }},
	"format": {0, func(r *Runner, _ []string) error { return r.tree.Format() }},
	"digest": {0, (*Runner).digest},
}

// Runner executes commands against a single [tree.Tree].
type Runner struct {
	tree *tree.Tree
	out  io.Writer
}

// NewRunner returns a pointer to a new [Runner] operating on t and writing
// all reports to out.
func NewRunner(t *tree.Tree, out io.Writer) *Runner {
	return &Runner{
		tree: t,
		out:  out,
	}
}

// Run executes every command read from src in order. A failing command is
// logged and counted, but never aborts the run. The run stops early when
// the context is cancelled or src cannot be read.
func (r *Runner) Run(ctx context.Context, src io.Reader) (Result, error) {
	var res Result

	sc := bufio.NewScanner(src)
	lineNum := 0

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("(script) %w", err)
		}

		lineNum++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		res.Executed++

		if err := r.Execute(line); err != nil {
			res.Failed++

			slog.Warn("Command failed",
				"err", err,
				"line", lineNum,
				"cmd", line,
			)
		}
	}

	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("(script) failed to read: %w", err)
	}

	return res, nil
}

// Execute runs a single command line.
func (r *Runner) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]

	cmd, ok := commands[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("(script) %w: %s", ErrUnknownCommand, name)
	}

	if len(args) != cmd.args {
		return fmt.Errorf("(script) %w: %s wants %d, got %d", ErrArgumentCount, name, cmd.args, len(args))
	}

	return cmd.run(r, args)
}

func (r *Runner) find(args []string) error {
	n, err := r.tree.Find(args[0], args[1], r.out)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.out, "%d matches found.\n", n); err != nil {
		return fmt.Errorf("(script-find) %w", err)
	}

	return nil
}

func (r *Runner) digest(_ []string) error {
	if _, err := fmt.Fprintln(r.out, r.tree.Digest()); err != nil {
		return fmt.Errorf("(script-digest) %w", err)
	}

	return nil
}
