package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile    *os.File
	logPath    string
	consoleOff bool

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first GetLogger call to take effect.
func SetLogPath(path string) {
	logPath = path
}

// DisableConsoleLogging keeps log output off stdout. Terminal UIs own the
// screen and need this; with no log file configured, output is discarded.
// Call before the first GetLogger call to take effect.
func DisableConsoleLogging() {
	consoleOff = true
}

func setup() {
	setupOnce.Do(func() {
		console := io.Writer(os.Stdout)
		if consoleOff {
			console = io.Discard
		}

		if logPath == "" {
			// No file configured (the usual case in a browser environment,
			// where stdout is the console).
			multiWriter = console
			return
		}

		dir := filepath.Dir(logPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			multiWriter = console
			return
		}

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			multiWriter = console
			return
		}

		multiWriter = io.MultiWriter(console, logFile)
	})
}

// GetLogger returns the shared logger for structured logging.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// SetLogLevel sets the minimum log level for the shared logger.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g., "debug", "info", "error"). Unknown values fall back to info.
func SetRawLogLevel(rawLevel string) {
	var level slog.Level

	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	GetLogger()
	levelVar.Set(level)
}

// CloseLogger closes the log file if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
