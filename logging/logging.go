// logging.go - Structured logging setup and context plumbing.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures slog loggers for command-line applications
// and carries them through context.Context.
//
// Loggers write to the application's error stream so that command output
// on stdout stays clean for piping. The default level is warn; set
// Options.Level to slog.LevelDebug to trace command dispatch.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configures a logger.
type Options struct {
	// Level is the minimum level to emit. Zero value is slog.LevelInfo.
	Level slog.Leveler

	// Format selects the handler: "text" (default) or "json".
	Format string

	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer

	// AddSource includes file:line attribution in records.
	AddSource bool
}

// New creates a configured slog.Logger. It does not touch the global
// default logger, so applications and tests get isolated instances.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: opts.AddSource,
	}

	var handler slog.Handler
	if opts.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to a slog.Level. Accepted names are
// debug, info, warn, and error (case-insensitive).
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", name)
	}
}

// =============================================================================
// CONTEXT PLUMBING
// =============================================================================

// key is unexported to prevent collisions with other packages' context keys.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context. When no logger has been
// attached it returns slog.Default rather than failing, so library code
// can log unconditionally.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
