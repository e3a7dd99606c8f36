// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package textutil provides rune-aware text layout helpers.
//
// These functions handle strings correctly regardless of character
// encoding: widths are measured in display columns (double-width CJK
// characters count as 2), never in bytes.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width returns the display width of a string in terminal columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads a string with spaces to the given display width. Strings
// already at or beyond the width are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Truncate shortens a string to a maximum display width, appending "..."
// when anything was cut. Safe for UTF-8: it never splits a multi-byte
// character.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// LongestWidth returns the widest display width among the given strings.
func LongestWidth(items []string) int {
	widest := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item); w > widest {
			widest = w
		}
	}
	return widest
}
