// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		validate func(t *testing.T, args *Args)
	}{
		{
			name: "long flag with space value",
			raw:  []string{"--name", "world"},
			validate: func(t *testing.T, args *Args) {
				if got := args.Flag("name"); got != "world" {
					t.Errorf("Flag(name) = %q", got)
				}
			},
		},
		{
			name: "long flag with equals",
			raw:  []string{"--since=2024-01-01"},
			validate: func(t *testing.T, args *Args) {
				if got := args.Flag("since"); got != "2024-01-01" {
					t.Errorf("Flag(since) = %q", got)
				}
			},
		},
		{
			name: "short flag with value",
			raw:  []string{"-n", "50"},
			validate: func(t *testing.T, args *Args) {
				if got, err := args.FlagInt("n"); err != nil || got != 50 {
					t.Errorf("FlagInt(n) = %d, %v", got, err)
				}
			},
		},
		{
			name: "boolean flag",
			raw:  []string{"--yell"},
			validate: func(t *testing.T, args *Args) {
				if !args.BoolFlag("yell") {
					t.Error("BoolFlag(yell) = false")
				}
				if args.BoolFlag("quiet") {
					t.Error("BoolFlag(quiet) = true for unset flag")
				}
			},
		},
		{
			name: "explicit boolean value",
			raw:  []string{"--json=false"},
			validate: func(t *testing.T, args *Args) {
				if args.BoolFlag("json") {
					t.Error("BoolFlag(json) = true, want explicit false")
				}
				if !args.HasFlag("json") {
					t.Error("HasFlag(json) = false")
				}
			},
		},
		{
			name: "positionals preserved in order",
			raw:  []string{"alpha", "--flag", "value", "beta", "gamma"},
			validate: func(t *testing.T, args *Args) {
				if got := args.Positional(0); got != "alpha" {
					t.Errorf("Positional(0) = %q", got)
				}
				want := []string{"beta", "gamma"}
				if got := args.PositionalFrom(1); !reflect.DeepEqual(got, want) {
					t.Errorf("PositionalFrom(1) = %v, want %v", got, want)
				}
				if got := args.PositionalCount(); got != 3 {
					t.Errorf("PositionalCount() = %d", got)
				}
			},
		},
		{
			name: "flag lookup tolerates dashes",
			raw:  []string{"--name", "world"},
			validate: func(t *testing.T, args *Args) {
				if got := args.Flag("--name"); got != "world" {
					t.Errorf("Flag(--name) = %q", got)
				}
			},
		},
		{
			name: "defaults",
			raw:  []string{},
			validate: func(t *testing.T, args *Args) {
				if got := args.FlagOrDefault("name", "world"); got != "world" {
					t.Errorf("FlagOrDefault() = %q", got)
				}
				if got := args.FlagIntOrDefault("count", 7); got != 7 {
					t.Errorf("FlagIntOrDefault() = %d", got)
				}
				if got := args.Positional(0); got != "" {
					t.Errorf("Positional(0) = %q on empty args", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseArgs(tt.raw))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	truthy := []string{"true", "yes", "Y", "1", "on"}
	for _, s := range truthy {
		got, err := ParseBoolString(s)
		if err != nil || !got {
			t.Errorf("ParseBoolString(%q) = %v, %v", s, got, err)
		}
	}

	falsy := []string{"false", "no", "n", "0", "OFF"}
	for _, s := range falsy {
		got, err := ParseBoolString(s)
		if err != nil || got {
			t.Errorf("ParseBoolString(%q) = %v, %v", s, got, err)
		}
	}

	if _, err := ParseBoolString("maybe"); err == nil {
		t.Error("ParseBoolString(maybe) accepted an invalid value")
	}
}
