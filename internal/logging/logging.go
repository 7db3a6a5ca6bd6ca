// =============================================================================
// Trolley Part List Generator - Logging Setup
// =============================================================================
//
// Structured logging via log/slog. The logger is built once from the
// configuration at startup and handed to the pipeline components; nothing
// in this package is mutable after Init returns.
//
// =============================================================================

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Agilomatrix/Trolley-List/internal/config"
)

// Init builds a slog.Logger from the logging configuration and installs it
// as the process default. verbose forces debug level regardless of the
// configured level.
func Init(cfg config.LoggingConfig, verbose bool) *slog.Logger {
	return InitWithWriter(cfg, verbose, os.Stderr)
}

// InitWithWriter is Init with an explicit output writer, used by tests.
func InitWithWriter(cfg config.LoggingConfig, verbose bool, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a config string to a slog level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
