// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clierr provides error types tailored for a command line
// experience.
//
// A command line application reports failure to its user twice: once as
// text on the error stream, and once as the process exit status. This
// package keeps both together in a single value, and lets callers layer
// human-readable context on top of low-level errors as they travel up the
// call stack:
//
//	err := clierr.Newf(1, "The original error message.").
//	    WithContext("Some additional context.").
//	    WithContext("Even more specific context.")
//
// Rendered for the user, newest context first, each deeper level indented:
//
//	Even more specific context.
//	  Some additional context.
//	    The original error message.
//
// # Key Types
//
//   - Error: an error carrying an exit status, a message, and context lines
//   - Wrap: adopts an ordinary Go error, turning its unwrap chain into
//     context and recovering the OS error number as the exit status
//   - ExitCode: maps any error to a process exit status
//
// Exit statuses follow the usual conventions: 0 success, 1 general
// failure, 2 usage error, plus a few specific categories.
package clierr
