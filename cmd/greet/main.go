// main.go - Example multi-command application.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command greet demonstrates an application with multiple subcommands
// sharing a flag: `greet hello --name Alice` and `greet goodbye --yell`.
package main

import (
	"os"

	"github.com/jeranaias/carli/command"
)

func newApp(opts ...command.Option) *command.App {
	opts = append([]command.Option{
		command.WithVersion("1.0.0"),
		command.WithSummary("An example application that offers multiple subcommands."),
	}, opts...)

	app := command.New("greet", opts...)
	app.Register(&greetCommand{verb: "Hello"}, &greetCommand{verb: "Goodbye"})
	app.Alias("hi", "hello")
	return app
}

func main() {
	os.Exit(newApp().Main(os.Args[1:]))
}
