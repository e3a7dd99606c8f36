// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package style centralizes the lipgloss styles shared by carli and the
// applications built on it.
//
// Color handling:
//   - Colors are automatically disabled for non-TTY output (piped, redirected)
//   - Respects the NO_COLOR environment variable (https://no-color.org/)
//   - Supports FORCE_COLOR to override detection
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/carli/streams"
)

// init configures lipgloss with the color profile the terminal supports.
func init() {
	lipgloss.SetColorProfile(streams.ColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// Title is used for application and command titles.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")) // Cyan

	// Section is used for section headers within output.
	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")) // White

	// Label is used for left-aligned field labels.
	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")) // Light gray

	// Value is used for regular values and text.
	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")) // Off-white

	// Success is used for success messages and OK statuses.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")). // Green
		Bold(true)

	// Error is used for error messages and failures.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")). // Red
		Bold(true)

	// Warning is used for warnings and cautions.
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")) // Yellow/Orange

	// Dim is used for secondary information and hints.
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")) // Dim gray

	// Separator is used for visual dividers.
	Separator = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dark gray

	// Highlight is used for emphasis without alarm.
	Highlight = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")) // Bright green
)

// =============================================================================
// HELPERS
// =============================================================================

// RenderSeparator renders a horizontal separator line. Width defaults to 70
// characters when not specified.
func RenderSeparator(width ...int) string {
	w := 70
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}
	return Separator.Render(strings.Repeat("=", w))
}

// RenderStatus renders a bracketed status tag with the matching color.
// status should be one of: "ok", "success", "error", "fail", "warning",
// "pending"; anything else renders uppercased in the dim style.
func RenderStatus(status string) string {
	switch strings.ToLower(status) {
	case "ok", "success", "pass":
		return Success.Render("[OK]")
	case "error", "fail", "failed":
		return Error.Render("[FAIL]")
	case "warning", "warn", "pending":
		return Warning.Render("[WARN]")
	default:
		return Dim.Render("[" + strings.ToUpper(status) + "]")
	}
}

// Conditional renders text with the style when colors are enabled, and
// unmodified otherwise. Use it when a call site needs explicit control.
func Conditional(s lipgloss.Style, text string) string {
	if !streams.ColorsEnabled() {
		return text
	}
	return s.Render(text)
}
