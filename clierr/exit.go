// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// exit.go - Exit status mapping and user-facing error display.
package clierr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeranaias/carli/streams"
	"github.com/jeranaias/carli/style"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitGeneral indicates a general or unknown error.
	ExitGeneral = 1
	// ExitUsage indicates invalid command usage or arguments.
	ExitUsage = 2
	// ExitConfig indicates a configuration file or settings error.
	ExitConfig = 3
	// ExitNotFound indicates a resource was not found.
	ExitNotFound = 7
	// ExitTimeout indicates an operation timed out.
	ExitTimeout = 8
)

// ExitCode determines the process exit status for an error.
//
// An *Error carries its own status. Other errors fall into a few broad
// categories: TTY requirements and flag problems are usage errors, context
// deadlines are timeouts, and message sniffing catches the common
// config/not-found cases. Everything else is a general failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *Error
	if errors.As(err, &exitErr) {
		return exitErr.Status()
	}

	var ttyErr *streams.TTYRequiredError
	if errors.As(err, &ttyErr) {
		return ExitUsage
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ExitTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "config"):
		return ExitConfig
	case strings.Contains(msg, "not found"):
		return ExitNotFound
	case strings.Contains(msg, "timed out") || strings.Contains(msg, "deadline exceeded"):
		return ExitTimeout
	}

	return ExitGeneral
}

// =============================================================================
// DISPLAY
// =============================================================================

// Display writes an error to w in a consistent, user-facing format: an
// [ERROR] tag on the first line, remaining context lines dimmed. Colors
// follow the usual detection rules. Silent errors produce no output.
func Display(w io.Writer, err error) {
	if err == nil {
		return
	}
	if exitErr := Wrap(err); exitErr.Silent() {
		return
	}

	lines := strings.Split(err.Error(), "\n")
	fmt.Fprintf(w, "%s %s\n", style.Error.Render("[ERROR]"), lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(w, "%s\n", style.Dim.Render(line))
	}
}

// Exit displays the error on stderr and terminates the process with the
// mapped exit status. When the application has reached the point where the
// only remaining task is to exit, call this.
func Exit(err error) {
	Display(os.Stderr, err)
	os.Exit(ExitCode(err))
}
