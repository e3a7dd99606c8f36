// prompt.go - Interactive line editing with persistent history.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt provides interactive input for command-line
// applications: confirmation of destructive actions, yes/no questions,
// and a line editor with history and completion for REPL-style commands.
package prompt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/carli/config"
	"github.com/jeranaias/carli/history"
)

// ErrAborted is returned by ReadLine when the user presses Ctrl-C.
var ErrAborted = liner.ErrPromptAborted

// Editor is an interactive line editor with arrow-key history and tab
// completion. It takes over the terminal; use it only for genuinely
// interactive commands, and always Close it to restore terminal state.
type Editor struct {
	line        *liner.State
	historyFile string
	store       *history.Store
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithCompleter installs a tab-completion function.
func WithCompleter(complete func(line string) []string) EditorOption {
	return func(e *Editor) {
		e.line.SetCompleter(complete)
	}
}

// WithStore mirrors accepted lines into a persistent history store, so
// they survive beyond the flat history file and become searchable.
func WithStore(store *history.Store) EditorOption {
	return func(e *Editor) {
		e.store = store
	}
}

// NewEditor creates an Editor for the named application. History is
// loaded from ~/.{app}/prompt_history and saved back on Close.
func NewEditor(app string, opts ...EditorOption) *Editor {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.Dir(app)
	if err != nil {
		// Home directory unavailable; history goes to the temp dir.
		dir = os.TempDir()
	}

	e := &Editor{
		line:        line,
		historyFile: filepath.Join(dir, "prompt_history"),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.loadHistory()
	return e
}

// ReadLine reads one line of input with the given prompt. Non-empty
// lines are appended to history. Returns ErrAborted on Ctrl-C and
// io.EOF on Ctrl-D.
func (e *Editor) ReadLine(ctx context.Context, promptText string) (string, error) {
	input, err := e.line.Prompt(promptText)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		e.line.AppendHistory(input)
		if e.store != nil {
			// History persistence is best-effort; input was already read.
			_ = e.store.Append(ctx, input)
		}
	}

	return input, nil
}

// Close saves history and restores the terminal. It must be called even
// on error paths, or the terminal is left in raw mode.
func (e *Editor) Close() error {
	e.saveHistory()
	return e.line.Close()
}

func (e *Editor) loadHistory() {
	f, err := os.Open(e.historyFile)
	if err != nil {
		return
	}
	defer f.Close()
	e.line.ReadHistory(f)
}

func (e *Editor) saveHistory() {
	if err := os.MkdirAll(filepath.Dir(e.historyFile), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(e.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	e.line.WriteHistory(f)
}

// IsAborted reports whether an error from ReadLine means the user
// cancelled with Ctrl-C.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
