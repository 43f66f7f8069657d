// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// InitLogger sets the default slog logger, writing to stderr.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "text", "json" or "auto" (text on a terminal, json otherwise)
func InitLogger(level, format string) *slog.Logger {
	logger := New(os.Stderr, level, resolveFormat(format, isTerminal(os.Stderr)))
	slog.SetDefault(logger)
	return logger
}

// New builds a logger without touching the default
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func resolveFormat(format string, terminal bool) string {
	switch format {
	case "json", "text":
		return format
	}
	if terminal {
		return "text"
	}
	return "json"
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
