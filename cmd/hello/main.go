// main.go - Example single-command application.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command hello is the smallest useful application: one root command,
// no subcommands. It demonstrates how the stream and error abstractions
// keep even a trivial command fully testable.
package main

import (
	"os"

	"github.com/jeranaias/carli/clierr"
	"github.com/jeranaias/carli/command"
)

// helloCommand greets the world, or fails on request via --error.
type helloCommand struct{}

func (c *helloCommand) Name() string    { return "hello" }
func (c *helloCommand) Summary() string { return "Print a greeting." }

func (c *helloCommand) Run(ctx *command.Context) error {
	if ctx.Args.BoolFlag("error") {
		if err := ctx.Errorln("The command is about to fail!"); err != nil {
			return err
		}
		return clierr.Newf(1, "The command failed.")
	}

	return ctx.Outputln("Hello, world!")
}

func newApp(opts ...command.Option) *command.App {
	opts = append([]command.Option{
		command.WithSummary("An example application that is a single command."),
		command.WithRoot(&helloCommand{}),
	}, opts...)
	return command.New("hello", opts...)
}

func main() {
	os.Exit(newApp().Main(os.Args[1:]))
}
