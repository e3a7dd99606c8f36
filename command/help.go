// help.go - Application and per-command help rendering.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/carli/clierr"
	"github.com/jeranaias/carli/internal/textutil"
	"github.com/jeranaias/carli/streams"
	"github.com/jeranaias/carli/style"
)

// renderAppHelp writes the application help screen: usage line, summary,
// and an aligned table of registered commands.
func (a *App) renderAppHelp() error {
	return a.streams.Output(func(w io.Writer) error {
		var b strings.Builder

		b.WriteString(style.Title.Render(a.name))
		if a.summary != "" {
			b.WriteString(" - " + style.Value.Render(a.summary))
		}
		b.WriteString("\n\n")

		b.WriteString(style.Section.Render("Usage:") + "\n")
		fmt.Fprintf(&b, "  %s <command> [arguments]\n\n", a.name)

		if len(a.commands) > 0 {
			b.WriteString(style.Section.Render("Commands:") + "\n")
			width := textutil.LongestWidth(a.Names())
			for _, cmd := range a.commands {
				fmt.Fprintf(&b, "  %s  %s\n",
					style.Highlight.Render(textutil.PadRight(cmd.Name(), width)),
					cmd.Summary())
			}
			b.WriteString("\n")
		}

		if a.long != "" {
			b.WriteString(renderMarkdown(a.long))
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "Run '%s help <command>' for details on a command.\n", a.name)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// renderCommandHelp writes the help screen for a single command.
func (a *App) renderCommandHelp(name string) error {
	cmd, ok := a.Lookup(name)
	if !ok {
		return clierr.Usagef("unknown command: %s", name)
	}

	return a.streams.Output(func(w io.Writer) error {
		var b strings.Builder

		b.WriteString(style.Title.Render(a.name+" "+cmd.Name()) + "\n")
		b.WriteString(cmd.Summary() + "\n")

		if lh, ok := cmd.(LongHelper); ok {
			b.WriteString("\n")
			b.WriteString(renderMarkdown(lh.LongHelp()))
			b.WriteString("\n")
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// renderMarkdown renders Markdown help text for the terminal. When colors
// are disabled or rendering fails, the raw Markdown is returned unchanged;
// help must never be lost to a renderer problem.
func renderMarkdown(markdown string) string {
	if !streams.ColorsEnabled() {
		return strings.TrimSpace(markdown)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(streams.Width()),
	)
	if err != nil {
		return strings.TrimSpace(markdown)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return strings.TrimSpace(markdown)
	}
	return strings.TrimSpace(rendered)
}
