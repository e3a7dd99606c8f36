// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package command implements the command abstraction for building
// single-command and multi-command applications.
//
// # Key Types
//
//   - Command: a named unit of work with a Run method
//   - App: a container of commands sharing streams and a logger
//   - Context: per-invocation state (args, streams, logger) handed to Run
//   - Args: parsed flags and positional arguments
//
// # Usage
//
// A multi-command application registers commands and dispatches on the
// first argument:
//
//	app := command.New("greet",
//		command.WithVersion("1.0.0"),
//		command.WithSummary("An example application."))
//	app.Register(&helloCommand{}, &goodbyeCommand{})
//	os.Exit(app.Main(os.Args[1:]))
//
// A single-command application sets a root command instead:
//
//	app := command.New("hello", command.WithRoot(&helloCommand{}))
//	os.Exit(app.Main(os.Args[1:]))
//
// Commands do all I/O through their Context's stream set, which makes
// them fully testable: construct the App with command.WithStreams
// wrapping a streams.Memory, run it, and inspect the captured output.
// Running the same command with the same injected input always produces
// the same captured output, and the real process streams are never
// touched.
package command
