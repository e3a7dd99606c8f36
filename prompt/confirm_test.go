// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prompt

import (
	"strings"
	"testing"

	"github.com/jeranaias/carli/clierr"
	"github.com/jeranaias/carli/streams"
)

func TestConfirm(t *testing.T) {
	streams.ForceColorsEnabled(false)

	tests := []struct {
		name    string
		input   string
		opts    Options
		want    bool
		wantErr bool
	}{
		{"assume skips prompt", "", Options{Assume: true}, true, false},
		{"yes answer", "y\n", Options{Interactive: true}, true, false},
		{"full yes answer", "yes\n", Options{Interactive: true}, true, false},
		{"no answer", "n\n", Options{Interactive: true}, false, false},
		{"empty answer defaults to no", "\n", Options{Interactive: true}, false, false},
		{"disabled prompt requires assume", "y\n", Options{DisablePrompt: true}, false, true},
		{"non-interactive requires assume", "y\n", Options{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := streams.NewMemory()
			mem.SetInput([]byte(tt.input))

			got, err := Confirm(mem.Streams, "delete everything", tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Confirm() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if err != nil && clierr.ExitCode(err) != clierr.ExitUsage {
				t.Errorf("ExitCode() = %d, want usage", clierr.ExitCode(err))
			}
		})
	}
}

func TestConfirm_PromptGoesToOutputStream(t *testing.T) {
	streams.ForceColorsEnabled(false)
	mem := streams.NewMemory()
	mem.SetInput([]byte("y\n"))

	if _, err := Confirm(mem.Streams, "reset the config", Options{Interactive: true}); err != nil {
		t.Fatal(err)
	}

	if got := mem.OutputString(); !strings.Contains(got, "reset the config") {
		t.Errorf("prompt text missing from output stream: %q", got)
	}
	if got := mem.ErrorString(); got != "" {
		t.Errorf("error stream = %q, want empty", got)
	}
}

func TestConfirmPhrase(t *testing.T) {
	streams.ForceColorsEnabled(false)

	t.Run("exact phrase confirms", func(t *testing.T) {
		mem := streams.NewMemory()
		mem.SetInput([]byte("DELETE ALL\n"))

		got, err := ConfirmPhrase(mem.Streams, "wipe history", "DELETE ALL", Options{Interactive: true})
		if err != nil {
			t.Fatal(err)
		}
		if !got {
			t.Error("exact phrase was rejected")
		}
	})

	t.Run("wrong phrase cancels", func(t *testing.T) {
		mem := streams.NewMemory()
		mem.SetInput([]byte("delete all\n"))

		got, err := ConfirmPhrase(mem.Streams, "wipe history", "DELETE ALL", Options{Interactive: true})
		if err != nil {
			t.Fatal(err)
		}
		if got {
			t.Error("wrong phrase was accepted")
		}
		if out := mem.OutputString(); !strings.Contains(out, "did not match") {
			t.Errorf("cancellation message missing: %q", out)
		}
	})
}

func TestYesNo(t *testing.T) {
	streams.ForceColorsEnabled(false)

	mem := streams.NewMemory()
	mem.SetInput([]byte("yes\n"))
	if !YesNo(mem.Streams, "Enable logging?", Options{Interactive: true}) {
		t.Error("YesNo() = false for yes answer")
	}

	// Non-interactive input can never answer yes.
	mem = streams.NewMemory()
	mem.SetInput([]byte("yes\n"))
	if YesNo(mem.Streams, "Enable logging?", Options{}) {
		t.Error("YesNo() = true without a terminal")
	}
}
