package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/fstree/internal/configuration"
	"github.com/desertwitch/fstree/internal/hydration"
	"github.com/desertwitch/fstree/internal/script"
	"github.com/desertwitch/fstree/internal/tree"
	"github.com/desertwitch/fstree/internal/ui"
	"github.com/lmittmann/tint"
)

// ErrCommandsFailed is an error that occurs when at least one command of
// the script failed.
var ErrCommandsFailed = errors.New("script commands failed")

type osProvider interface {
	Open(name string) (*os.File, error)
}

type unixProvider interface {
	IsTerminal(fd int) bool
}

type hydrationProvider interface {
	Load(path string) (*tree.Tree, hydration.Report, error)
}

type App struct {
	settings         configuration.Settings
	osHandler        osProvider
	unixHandler      unixProvider
	hydrationHandler hydrationProvider
	out              io.Writer
}

func NewApp(settings configuration.Settings,
	osHandler osProvider,
	unixHandler unixProvider,
	hydrationHandler hydrationProvider,
	out io.Writer,
) *App {
	return &App{
		settings:         settings,
		osHandler:        osHandler,
		unixHandler:      unixHandler,
		hydrationHandler: hydrationHandler,
		out:              out,
	}
}

// Launch hydrates the tree, runs the script and finally presents the tree,
// either in the UI or as plain text.
func (app *App) Launch(ctx context.Context, cancel context.CancelFunc) error {
	t, err := app.Hydrate()
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	scriptErr := app.RunScript(ctx, t)
	if scriptErr != nil && !errors.Is(scriptErr, ErrCommandsFailed) {
		return fmt.Errorf("(app) %w", scriptErr)
	}

	if app.useUI() {
		if err := app.LaunchUI(ctx, cancel, t); err != nil {
			slog.Error("UI failure: falling back to terminal.", "err", err)
		} else {
			return scriptErr
		}
	}

	if err := app.Present(t); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return scriptErr
}

// Hydrate returns the tree built from the import file, or an empty tree if
// no import file is configured.
func (app *App) Hydrate() (*tree.Tree, error) {
	if app.settings.ImportFile == "" {
		return tree.New(), nil
	}

	t, report, err := app.hydrationHandler.Load(app.settings.ImportFile)
	if err != nil {
		return nil, fmt.Errorf("(app-hydrate) %w", err)
	}

	slog.Info("Tree hydrated.",
		"created", report.Created,
		"skipped", len(report.Failed),
		"file", app.settings.ImportFile,
	)

	return t, nil
}

// RunScript runs the configured script file against t, writing all reports
// to the output of the [App].
func (app *App) RunScript(ctx context.Context, t *tree.Tree) error {
	if app.settings.ScriptFile == "" {
		return nil
	}

	f, err := app.osHandler.Open(app.settings.ScriptFile)
	if err != nil {
		return fmt.Errorf("(app-script) failed to open: %w", err)
	}
	defer f.Close()

	res, err := script.NewRunner(t, app.out).Run(ctx, f)
	if err != nil {
		return fmt.Errorf("(app-script) %w", err)
	}

	slog.Info("Script finished.",
		"executed", res.Executed,
		"failed", res.Failed,
		"file", app.settings.ScriptFile,
	)

	if res.Failed > 0 {
		return fmt.Errorf("(app-script) %w: %d of %d", ErrCommandsFailed, res.Failed, res.Executed)
	}

	return nil
}

// Present writes the rendered tree and its statistics to the output of the
// [App].
func (app *App) Present(t *tree.Tree) error {
	if err := t.Render(app.out); err != nil {
		return fmt.Errorf("(app-present) %w", err)
	}

	if err := t.WriteStats(app.out); err != nil {
		return fmt.Errorf("(app-present) %w", err)
	}

	return nil
}

// LaunchUI shows t in the command-line user interface until it is quit. All
// logs are redirected into the UI while it runs.
func (app *App) LaunchUI(ctx context.Context, cancel context.CancelFunc, t *tree.Tree) error {
	snapshot, err := ui.NewSnapshot(t)
	if err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	uiHandler := ui.NewHandler(ctx, cancel, snapshot)

	previous := slog.Default()
	defer slog.SetDefault(previous)

	slog.SetDefault(slog.New(
		tint.NewHandler(uiHandler.LogWriter, &tint.Options{
			Level:      app.settings.LogLevel,
			TimeFormat: time.Kitchen,
			NoColor:    true,
		}),
	))

	if err := uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

func (app *App) useUI() bool {
	return app.settings.UI && app.unixHandler.IsTerminal(int(os.Stdout.Fd()))
}
