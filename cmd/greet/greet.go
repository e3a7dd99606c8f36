// greet.go - The hello and goodbye subcommands.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"strings"

	"github.com/jeranaias/carli/command"
)

// greetCommand greets or dismisses the named user. Both subcommands share
// the same flags:
//
//	--name   who to address (default "world")
//	--yell   end with an exclamation mark instead of a period
type greetCommand struct {
	verb string
}

func (c *greetCommand) Name() string {
	return strings.ToLower(c.verb)
}

func (c *greetCommand) Summary() string {
	return c.verb + " the named user."
}

func (c *greetCommand) LongHelp() string {
	return "Writes \"" + c.verb + ", <name>.\" to the output stream.\n\n" +
		"## Flags\n\n" +
		"- `--name <name>` selects who to address (default: world)\n" +
		"- `--yell` ends the greeting with an exclamation mark\n"
}

func (c *greetCommand) Run(ctx *command.Context) error {
	name := ctx.Args.FlagOrDefault("name", "world")

	punctuation := "."
	if ctx.Args.BoolFlag("yell") {
		punctuation = "!"
	}

	return ctx.Outputln("%s, %s%s", c.verb, name, punctuation)
}
