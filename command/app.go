// app.go - Application container, dispatch, and process entry point.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/jeranaias/carli/clierr"
	"github.com/jeranaias/carli/logging"
	"github.com/jeranaias/carli/streams"
)

// =============================================================================
// APP
// =============================================================================

// App is a container of commands sharing a stream set and a logger.
// A multi-command application registers several commands and dispatches
// on the first argument; a single-command application sets a root command
// that receives every argument.
type App struct {
	name    string
	version string
	summary string
	long    string

	root     Command
	commands []Command
	index    map[string]Command
	aliases  map[string]string

	streams *streams.Streams
	logger  *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithVersion sets the version string reported by the built-in version
// command.
func WithVersion(version string) Option {
	return func(a *App) { a.version = version }
}

// WithSummary sets the one-line application description shown at the top
// of help output.
func WithSummary(summary string) Option {
	return func(a *App) { a.summary = summary }
}

// WithLong sets the long-form application help, in Markdown.
func WithLong(long string) Option {
	return func(a *App) { a.long = long }
}

// WithStreams replaces the application's stream set. Tests pass
// streams.NewMemory() here to capture all output.
func WithStreams(s *streams.Streams) Option {
	return func(a *App) { a.streams = s }
}

// WithLogger replaces the application's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithRoot sets the root command for a single-command application.
// When set, dispatch is skipped and every argument reaches the root
// command's Args.
func WithRoot(cmd Command) Option {
	return func(a *App) { a.root = cmd }
}

// New creates an application. By default it talks to the real process
// streams and logs at the warn level to the error stream; both can be
// replaced with options.
func New(name string, opts ...Option) *App {
	a := &App{
		name:    name,
		version: "dev",
		index:   make(map[string]Command),
		aliases: make(map[string]string),
		streams: streams.Standard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.New(logging.Options{
			Level:  slog.LevelWarn,
			Writer: os.Stderr,
		})
	}
	return a
}

// Name returns the application name.
func (a *App) Name() string { return a.name }

// Version returns the application version string.
func (a *App) Version() string { return a.version }

// Streams returns the application's stream set.
func (a *App) Streams() *streams.Streams { return a.streams }

// Register adds commands to the application. Registering a name twice
// replaces the earlier command; listing order follows first registration.
func (a *App) Register(cmds ...Command) {
	for _, cmd := range cmds {
		if _, exists := a.index[cmd.Name()]; !exists {
			a.commands = append(a.commands, cmd)
		} else {
			for i, existing := range a.commands {
				if existing.Name() == cmd.Name() {
					a.commands[i] = cmd
					break
				}
			}
		}
		a.index[cmd.Name()] = cmd
	}
}

// Alias registers an alternate name for an existing command.
func (a *App) Alias(alias, name string) {
	a.aliases[alias] = name
}

// Lookup resolves a command by name or alias.
func (a *App) Lookup(name string) (Command, bool) {
	if cmd, ok := a.index[name]; ok {
		return cmd, true
	}
	if target, ok := a.aliases[name]; ok {
		cmd, ok := a.index[target]
		return cmd, ok
	}
	return nil, false
}

// Names returns the registered command names in listing order.
func (a *App) Names() []string {
	names := make([]string, 0, len(a.commands))
	for _, cmd := range a.commands {
		names = append(names, cmd.Name())
	}
	return names
}

// =============================================================================
// DISPATCH
// =============================================================================

// Run resolves and executes a command for the given arguments. The error
// it returns has not been rendered; callers that want exit-status mapping
// and error display use Main instead.
func (a *App) Run(ctx context.Context, argv []string) error {
	if a.root != nil {
		return a.invoke(ctx, a.root, argv)
	}

	if len(argv) == 0 {
		return a.renderAppHelp()
	}

	name, rest := argv[0], argv[1:]

	switch name {
	case "help", "--help", "-h":
		if len(rest) > 0 {
			return a.renderCommandHelp(rest[0])
		}
		return a.renderAppHelp()
	case "version", "--version":
		return a.streams.Outputln("%s %s", a.name, a.version)
	}

	cmd, ok := a.Lookup(name)
	if !ok {
		err := clierr.Usagef("unknown command: %s", name)
		if suggestion := Suggest(name, a.Names()); suggestion != "" {
			err = err.WithContext("did you mean '%s'?", suggestion)
		}
		return err.WithContext("run '%s help' for usage", a.name)
	}

	return a.invoke(ctx, cmd, rest)
}

// invoke builds the command context and runs the command.
func (a *App) invoke(ctx context.Context, cmd Command, argv []string) error {
	id := uuid.NewString()
	logger := a.logger.With("command", cmd.Name(), "invocation", id)

	cctx := &Context{
		Context:      logging.WithLogger(ctx, logger),
		App:          a,
		Streams:      a.streams,
		Args:         ParseArgs(argv),
		Logger:       logger,
		InvocationID: id,
	}

	logger.Debug("command started", "args", argv)
	err := cmd.Run(cctx)
	if err != nil {
		logger.Debug("command failed", "error", err)
	} else {
		logger.Debug("command finished")
	}
	return err
}

// =============================================================================
// PROCESS ENTRY POINT
// =============================================================================

// Main runs the application for a full process: it installs signal
// handling, dispatches, renders any error to the error stream, and
// returns the process exit status. A main function reduces to:
//
//	func main() {
//		os.Exit(app.Main(os.Args[1:]))
//	}
func (a *App) Main(argv []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := a.Run(ctx, argv)
	if err == nil {
		return clierr.ExitSuccess
	}

	a.streams.Error(func(w io.Writer) error {
		clierr.Display(w, err)
		return nil
	})
	return clierr.ExitCode(err)
}
