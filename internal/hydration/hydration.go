// Package hydration builds a [tree.Tree] from an ordered list of creation
// records, as decoded from the line-oriented import format.
package hydration

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/fstree/internal/tree"
)

type osProvider interface {
	Open(name string) (*os.File, error)
}

// Report summarizes a hydration.
type Report struct {
	// Created is the number of records that were replayed successfully.
	Created int

	// Failed holds the errors of all skipped lines and records, in order.
	Failed []error
}

// Handler is the principal implementation of the hydration services.
type Handler struct {
	osHandler osProvider
}

// NewHandler returns a pointer to a new hydration [Handler].
func NewHandler(osHandler osProvider) *Handler {
	return &Handler{
		osHandler: osHandler,
	}
}

// Load reads the import file at path and returns a new [tree.Tree] built
// from its records. An unreadable file is returned as error, whereas
// malformed lines and failing records are only reported.
func (h *Handler) Load(path string) (*tree.Tree, Report, error) {
	f, err := h.osHandler.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("(hydration) %w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	records, lineErrs, err := Decode(f)
	if err != nil {
		return nil, Report{}, fmt.Errorf("(hydration) %s: %w", path, err)
	}

	for _, lineErr := range lineErrs {
		slog.Warn("Skipped import line: malformed record",
			"err", lineErr,
			"file", path,
		)
	}

	t := tree.New()
	report := Replay(t, records)
	report.Failed = append(lineErrs, report.Failed...)

	return t, report, nil
}

// Replay creates every record on t in order. A record that cannot be
// created is logged and reported, but never aborts the replay.
func Replay(t *tree.Tree, records []Record) Report {
	var report Report

	for _, rec := range records {
		if err := t.Create(rec.Name, rec.Kind, rec.ParentPath); err != nil {
			slog.Warn("Skipped import record: could not create entry",
				"err", err,
				"name", rec.Name,
				"kind", rec.Kind.String(),
				"path", rec.ParentPath,
			)

			report.Failed = append(report.Failed, fmt.Errorf("(hydration) %s: %w", rec, err))

			continue
		}

		report.Created++
	}

	return report
}
