// confirm.go - Unified confirmation handling for destructive actions.
//
// Every command uses the same confirmation pattern:
//  1. If Options.Assume is set (--confirm was passed), proceed without prompting
//  2. If Options.DisablePrompt is set (machine-readable output mode), require Assume
//  3. If the input stream is not interactive, require Assume
//  4. Otherwise, prompt and wait for a y/yes answer
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prompt

import (
	"io"
	"strings"

	"github.com/jeranaias/carli/clierr"
	"github.com/jeranaias/carli/streams"
	"github.com/jeranaias/carli/style"
)

// Options controls how confirmation is obtained.
type Options struct {
	// Assume skips the interactive prompt, as if the user answered yes.
	// Commands set this from a --confirm or --yes flag.
	Assume bool

	// DisablePrompt forbids interactive prompting entirely; Assume becomes
	// mandatory. Set this in machine-readable output modes where a prompt
	// would corrupt the stream.
	DisablePrompt bool

	// Interactive overrides TTY detection. Tests running against memory
	// streams set this to allow prompting without a terminal.
	Interactive bool
}

// interactive reports whether prompting is possible.
func (o Options) interactive() bool {
	return o.Interactive || streams.IsTTY()
}

// Confirm asks the user to confirm a destructive action. The question and
// the answer both travel through the stream set, never the raw process
// streams, so tests drive it with streams.NewMemory.
//
//	confirmed, err := prompt.Confirm(ctx.Streams, "delete all sessions", prompt.Options{
//		Assume: ctx.Args.BoolFlag("confirm"),
//	})
func Confirm(s *streams.Streams, action string, opts Options) (bool, error) {
	if opts.Assume {
		return true, nil
	}
	if opts.DisablePrompt {
		return false, clierr.Usagef("confirmation required: use --confirm for destructive actions in this mode")
	}
	if !opts.interactive() {
		return false, clierr.Usagef("confirmation required but input is not a terminal; use --confirm")
	}

	if err := s.Outputf("Are you sure you want to %s? [y/N]: ", action); err != nil {
		return false, err
	}

	answer, err := readAnswer(s)
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "yes", nil
}

// ConfirmPhrase is a stricter confirmation for highly destructive
// operations: the user must type an exact phrase.
func ConfirmPhrase(s *streams.Streams, action, phrase string, opts Options) (bool, error) {
	if opts.Assume {
		return true, nil
	}
	if opts.DisablePrompt {
		return false, clierr.Usagef("confirmation required: use --confirm for destructive actions in this mode")
	}
	if !opts.interactive() {
		return false, clierr.Usagef("confirmation required but input is not a terminal; use --confirm")
	}

	s.Outputln("%s", style.Error.Render("DANGER: this action cannot be undone."))
	if err := s.Outputf("You are about to: %s\nTo confirm, type '%s': ", action, phrase); err != nil {
		return false, err
	}

	line, err := s.ReadLine()
	if err != nil && err != io.EOF {
		return false, clierr.Context(err, "failed to read confirmation")
	}
	if strings.TrimSpace(line) != phrase {
		s.Outputln("%s", style.Dim.Render("Confirmation phrase did not match. Cancelled."))
		return false, nil
	}
	return true, nil
}

// YesNo asks a simple non-destructive yes/no question. It returns false
// when prompting is impossible.
func YesNo(s *streams.Streams, question string, opts Options) bool {
	if !opts.interactive() {
		return false
	}
	if err := s.Outputf("%s [y/N]: ", question); err != nil {
		return false
	}
	answer, err := readAnswer(s)
	if err != nil {
		return false
	}
	return answer == "y" || answer == "yes"
}

func readAnswer(s *streams.Streams) (string, error) {
	line, err := s.ReadLine()
	if err != nil && err != io.EOF {
		return "", clierr.Context(err, "failed to read confirmation")
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
