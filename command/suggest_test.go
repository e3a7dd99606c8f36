// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import "testing"

func TestSuggest(t *testing.T) {
	names := []string{"hello", "goodbye", "version", "help"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"transposition", "hlelo", "hello"},
		{"missing letter", "goodby", "goodbye"},
		{"typo in help", "hepl", "help"},
		{"too far", "xyzzy", ""},
		{"too short", "h", ""},
		{"exact match suggests nothing", "hello", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(tt.input, names); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"hello", "hlelo", 2},
	}

	for _, tt := range tests {
		if got := levenshteinDistance(tt.s1, tt.s2); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
		}
	}
}
