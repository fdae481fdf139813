// Package logger provides structured logging functionality for the application.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/optiq-app/optiq-api/internal/config"
)

// Setup initializes and configures the application's logging system based
// on the provided configuration. It creates a structured logger with the
// appropriate level and sets it as the default logger for the application.
//
// Two output formats are supported: "json" (production default) and
// "text", which uses a colored tint handler for local development.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "text":
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	logger := slog.New(handler)

	// Set this logger as the default so the slog package functions
	// (slog.Info, slog.Error, ...) use it directly.
	slog.SetDefault(logger)

	return logger, nil
}

// parseLevel maps a config string to a slog level (case-insensitive).
// Invalid values fall back to info with a warning on stderr.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", s,
			"default_level", "info")
		return slog.LevelInfo
	}
}
