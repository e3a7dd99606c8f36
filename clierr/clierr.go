// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// clierr.go - The exit-status error type and its builders.
package clierr

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// Error is an error with a process exit status.
//
// The zero status is never used; a status of 1 is assumed when nothing more
// specific is known. The message is the original failure, and context holds
// the clarifications added as the error bubbled up. Both are optional: an
// Error without either still carries a meaningful exit status, for commands
// that already reported the failure themselves.
type Error struct {
	status  int
	message string
	context []string
}

// New creates an error with the given exit status and no message.
func New(status int) *Error {
	return &Error{status: status}
}

// Newf creates an error with the given exit status and a formatted message.
func Newf(status int, format string, args ...any) *Error {
	return &Error{status: status, message: fmt.Sprintf(format, args...)}
}

// Usagef creates an invalid-usage error (exit status 2).
func Usagef(format string, args ...any) *Error {
	return Newf(ExitUsage, format, args...)
}

// WithMessage sets the original error message and returns the error for
// chaining.
func (e *Error) WithMessage(format string, args ...any) *Error {
	e.message = fmt.Sprintf(format, args...)
	return e
}

// WithContext adds a context message and returns the error for chaining.
//
// A context message should be added when the original message alone may
// confuse the user. A bare "no such file or directory" from the OS says
// nothing about which file; the caller that knows the path adds it here.
func (e *Error) WithContext(format string, args ...any) *Error {
	e.context = append(e.context, fmt.Sprintf(format, args...))
	return e
}

// Status returns the exit status code.
func (e *Error) Status() int {
	return e.status
}

// Message returns the original error message, or an empty string if none
// was set.
func (e *Error) Message() string {
	return e.message
}

// ContextMessages returns the context messages in the order they were
// added, oldest first. The returned slice is a copy.
func (e *Error) ContextMessages() []string {
	return append([]string(nil), e.context...)
}

// Silent reports whether the error has nothing to show the user. Display
// prints nothing for silent errors; the exit status still applies.
func (e *Error) Silent() bool {
	return e.message == "" && len(e.context) == 0
}

// Error renders the message and context for the user: newest context
// first, each following line indented two more spaces, with the original
// message last.
func (e *Error) Error() string {
	if e.Silent() {
		return fmt.Sprintf("exit status %d", e.status)
	}

	var b strings.Builder
	depth := 0
	for i := len(e.context) - 1; i >= 0; i-- {
		if depth > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(e.context[i])
		depth++
	}
	if e.message != "" {
		if depth > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(e.message)
	}
	return b.String()
}

// Wrap adopts an ordinary Go error.
//
// The error's unwrap chain is flattened: each wrapping layer contributes a
// context line (with the inner message trimmed off, so nothing is repeated)
// and the root cause becomes the message. When the root cause carries an OS
// error number, that number becomes the exit status; otherwise the status
// is 1. An *Error passes through unchanged.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	var already *Error
	if errors.As(err, &already) {
		return already
	}

	status := ExitGeneral
	var errno syscall.Errno
	if errors.As(err, &errno) {
		status = int(errno)
	}

	// Walk the chain collecting each layer's own message, outermost first.
	var layers []string
	cur := err
	for {
		msg := cur.Error()
		next := errors.Unwrap(cur)
		if next == nil {
			layers = append(layers, msg)
			break
		}
		layers = append(layers, strings.TrimSuffix(msg, ": "+next.Error()))
		cur = next
	}

	wrapped := &Error{status: status, message: layers[len(layers)-1]}
	// Context renders newest-first, so the outermost layer goes in last.
	for i := len(layers) - 2; i >= 0; i-- {
		wrapped.context = append(wrapped.context, layers[i])
	}
	return wrapped
}

// Context adds a context message to any error result. A nil error stays
// nil, an *Error gains the context directly, and anything else is adopted
// via Wrap first.
func Context(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err).WithContext(format, args...)
}
