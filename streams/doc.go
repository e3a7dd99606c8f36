// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package streams provides commands with an abstraction over input and
// output streams.
//
// Commands typically use the standard streams provided by the operating
// environment. There are cases where that is not what you want: the most
// common one is testing what a command reads from and writes to those
// streams without spawning a real process. This package introduces a thin
// layer of indirection so the streams a command talks to can be swapped for
// in-memory buffers.
//
// # Key Types
//
//   - Streams: the error output, input, and global output streams shared by
//     an application and its commands, each guarded by its own mutex
//   - Memory: a Streams backed by in-memory buffers for tests
//
// # Usage
//
// Production code uses the real process streams:
//
//	s := streams.Standard()
//	s.Outputln("Hello, world!")
//
// Tests inject buffers and inspect what the command wrote:
//
//	m := streams.NewMemory()
//	m.SetInput([]byte("example\n"))
//	runCommand(m.Streams)
//	got := m.OutputString()
//
// The package also exposes terminal capability helpers (TTY detection,
// terminal width, color control) used to decide when prompts and colored
// output are appropriate.
package streams
