// command.go - The command abstraction.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"context"
	"log/slog"

	"github.com/jeranaias/carli/streams"
)

// =============================================================================
// COMMAND INTERFACE
// =============================================================================

// Command is a named unit of work an application can run. Implementations
// receive everything they need through the Context: parsed arguments, the
// stream set to read and write through, and a logger. A command must never
// touch os.Stdin, os.Stdout, or os.Stderr directly; all I/O goes through
// ctx.Streams so tests can substitute in-memory buffers.
//
// Run returns nil on success. Any non-nil error is rendered to the error
// stream and mapped to a process exit status by the application; return a
// *clierr.Error to control the status and the rendered context chain.
type Command interface {
	// Name is the token that invokes the command, e.g. "hello".
	Name() string

	// Summary is a one-line description shown in the command listing.
	Summary() string

	// Run executes the command.
	Run(ctx *Context) error
}

// LongHelper is implemented by commands that carry long-form help text.
// The returned string is Markdown; it is rendered for the terminal when
// colors are enabled and printed raw otherwise.
type LongHelper interface {
	LongHelp() string
}

// Func adapts a plain function into a Command. Useful for small
// applications that don't want a struct per command.
type Func struct {
	CommandName    string
	CommandSummary string
	RunFunc        func(ctx *Context) error
}

// Name returns the command name.
func (f *Func) Name() string { return f.CommandName }

// Summary returns the one-line description.
func (f *Func) Summary() string { return f.CommandSummary }

// Run invokes the wrapped function.
func (f *Func) Run(ctx *Context) error { return f.RunFunc(ctx) }

// =============================================================================
// CONTEXT
// =============================================================================

// Context carries the per-invocation state handed to a running command.
// It embeds a context.Context for cancellation: applications started via
// App.Main are cancelled on SIGINT/SIGTERM, and long-running commands
// should check ctx.Done() at natural stopping points.
type Context struct {
	context.Context

	// App is the application this command runs within.
	App *App

	// Streams is the stream set for all command I/O.
	Streams *streams.Streams

	// Args holds the parsed arguments for this invocation, with the
	// command name itself already removed.
	Args *Args

	// Logger is the structured logger for this invocation.
	Logger *slog.Logger

	// InvocationID uniquely identifies this invocation in log output.
	InvocationID string
}

// Outputf writes formatted text to the output stream.
func (c *Context) Outputf(format string, args ...any) error {
	return c.Streams.Outputf(format, args...)
}

// Outputln writes a formatted line to the output stream.
func (c *Context) Outputln(format string, args ...any) error {
	return c.Streams.Outputln(format, args...)
}

// Errorf writes formatted text to the error stream.
func (c *Context) Errorf(format string, args ...any) error {
	return c.Streams.Errorf(format, args...)
}

// Errorln writes a formatted line to the error stream.
func (c *Context) Errorln(format string, args ...any) error {
	return c.Streams.Errorln(format, args...)
}
