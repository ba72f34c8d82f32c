// Package sfoglia provides a minimal client-side single-page-application
// navigator: it maps URL paths to markup-producing handlers, intercepts
// in-app link clicks and history navigation through an injected environment,
// and swaps the contents of a mount element.
//
// The package wires the route table, navigator, and built-in demo content
// together. The routing pieces live in the route and nav subpackages and can
// be used directly; platform/dom and platform/headless provide the browser
// and in-memory environments.
package sfoglia

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/content"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/nav"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
)

// App is an initialized navigator with its route table and page content.
type App struct {
	Nav   *nav.Navigator
	Table *route.Table
	Pages *content.Pages
}

// Init builds the default route table ("/" and "/about" plus the not-found
// fallback), wires the counter demo as a post-render hook on the home page,
// and starts a navigator over env: interceptors installed, current path
// rendered.
//
// Errors are returned, not rendered; use Bootstrap for the in-page error
// panel behavior.
func Init(env nav.Environment, options Options) (*App, error) {
	if env == nil {
		return nil, NewInitError("init", ErrNoEnvironment)
	}
	options = options.withDefaults()

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
		internal.SetRawLogLevel(raw)
	} else {
		internal.SetRawLogLevel(options.LogLevel)
	}
	log := internal.GetLogger()

	pages, err := content.NewPages(options.Locale)
	if err != nil {
		return nil, NewInitError("build_content", err)
	}

	table := route.NewTable().
		Register("/", pages.Home).
		Register("/about", pages.About).
		OnNotFound(pages.NotFound)

	navigator := nav.New(env, table, options.MountID, log).
		OnRender(func(path string) {
			if path == "/" {
				content.WireCounter(env, log)
			}
		})
	navigator.Start()

	return &App{
		Nav:   navigator,
		Table: table,
		Pages: pages,
	}, nil
}

// Bootstrap initializes the navigator and, on failure, renders the error
// panel with a reload control into the mount element when one can be found.
// It returns nil when initialization failed.
func Bootstrap(env nav.Environment, options Options) *App {
	app, err := Init(env, options)
	if err == nil {
		return app
	}
	internal.GetLogger().Error("initialization failed", "error", err)

	if env == nil {
		return nil
	}
	mountID := options.withDefaults().MountID
	mount, ok := env.MountByID(mountID)
	if !ok {
		return nil
	}
	if pages, perr := content.NewPages("en"); perr == nil {
		mount.SetHTML(pages.ErrorPanel(err))
	}
	return nil
}

// GetLogger returns the shared logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// DisableConsoleLogging keeps log output off stdout; with no log file
// configured, output is discarded.
// Call before Init() to take effect during initialization.
func DisableConsoleLogging() {
	internal.DisableConsoleLogging()
}

// SetLogLevel sets the minimum log level for the shared logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file if one was opened.
// Call before program exit when logging to a file.
func CloseLogger() {
	internal.CloseLogger()
}
