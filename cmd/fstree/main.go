package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertwitch/fstree/internal/configuration"
	"github.com/desertwitch/fstree/internal/hydration"
	"github.com/desertwitch/fstree/internal/schema"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configFile = flag.String("config", "", "read settings from this dotenv file")
	importFile = flag.String("import", "", "hydrate the tree from this import file")
	scriptFile = flag.String("script", "", "run the commands of this script file")
	uiEnabled  = flag.Bool("ui", true, "browse the final tree in the UI (terminals only)")
	logLevel   = flag.String("log-level", "", "minimum log level (debug, info, warn, error)")
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

// establishSettings merges the configuration file (if any) with the flags
// given on the command line. Flags always win.
func establishSettings(configHandler *configuration.Handler) (configuration.Settings, error) {
	settings := configuration.DefaultSettings()

	if *configFile != "" {
		var err error
		if settings, err = configHandler.ReadSettings(*configFile); err != nil {
			return settings, err
		}
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "import":
			settings.ImportFile = *importFile
		case "script":
			settings.ScriptFile = *scriptFile
		case "ui":
			settings.UI = *uiEnabled
		case "log-level":
			var level slog.Level
			if level, err = configuration.ParseLogLevel(*logLevel); err == nil {
				settings.LogLevel = level
			}
		}
	})

	return settings, err
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()
	setupLogging(slog.LevelInfo)
	setupSignalHandlers(cancel)

	osOps := &schema.OS{}
	unixOps := &schema.Unix{}
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, err := establishSettings(configHandler)
	if err != nil {
		slog.Error("Failed to establish the settings.",
			"err", err,
		)
		ExitCode = 1

		return
	}
	setupLogging(settings.LogLevel)

	slog.Debug("Settings established.",
		"version", Version,
		"import", settings.ImportFile,
		"script", settings.ScriptFile,
		"ui", settings.UI,
	)

	hydrationHandler := hydration.NewHandler(osOps)

	app := NewApp(settings, osOps, unixOps, hydrationHandler, os.Stdout)
	if err := app.Launch(ctx, cancel); err != nil {
		slog.Error("Program failure.",
			"err", err,
		)
		ExitCode = 1
	}
}
