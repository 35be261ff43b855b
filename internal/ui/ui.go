// Package ui implements a command-line user interface using [tea] for
// browsing a rendered tree.
package ui

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/fstree/internal/tree"
)

// Snapshot is an immutable view of a [tree.Tree] at a point in time. The UI
// never touches the [tree.Tree] itself.
type Snapshot struct {
	Listing string
	Stats   tree.Stats
	Digest  string
}

// NewSnapshot captures the current state of t.
func NewSnapshot(t *tree.Tree) (Snapshot, error) {
	var buf bytes.Buffer
	if err := t.Render(&buf); err != nil {
		return Snapshot{}, fmt.Errorf("(ui-snapshot) %w", err)
	}

	return Snapshot{
		Listing: buf.String(),
		Stats:   t.Stats(),
		Digest:  t.Digest(),
	}, nil
}

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	program *tea.Program

	LogWriter *TeaLogWriter

	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler] showing
// the given [Snapshot].
func NewHandler(ctx context.Context, cancel context.CancelFunc, snapshot Snapshot) *Handler {
	handler := &Handler{}

	model := NewTeaModel(snapshot, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]) and
// blocks until it is quit.
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
