// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jeranaias/carli/clierr"
	"github.com/jeranaias/carli/streams"
)

// newTestApp builds an app wired to in-memory streams.
func newTestApp(t *testing.T, opts ...Option) (*App, *streams.Memory) {
	t.Helper()
	streams.ForceColorsEnabled(false)
	mem := streams.NewMemory()
	opts = append([]Option{WithStreams(mem.Streams), WithVersion("1.2.3")}, opts...)
	return New("testapp", opts...), mem
}

func TestApp_Dispatch(t *testing.T) {
	app, mem := newTestApp(t)
	app.Register(&Func{
		CommandName:    "echo",
		CommandSummary: "Echo arguments back.",
		RunFunc: func(ctx *Context) error {
			return ctx.Outputln("%s", strings.Join(ctx.Args.PositionalFrom(0), " "))
		},
	})

	if err := app.Run(context.Background(), []string{"echo", "one", "two"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := mem.OutputString(); got != "one two\n" {
		t.Errorf("output = %q, want %q", got, "one two\n")
	}
	if got := mem.ErrorString(); got != "" {
		t.Errorf("error stream = %q, want empty", got)
	}
}

func TestApp_DispatchIsDeterministic(t *testing.T) {
	run := func(input string) string {
		app, mem := newTestApp(t)
		app.Register(&Func{
			CommandName:    "shout",
			CommandSummary: "Uppercase a line of input.",
			RunFunc: func(ctx *Context) error {
				line, err := ctx.Streams.ReadLine()
				if err != nil && err != io.EOF {
					return err
				}
				return ctx.Outputln("%s", strings.ToUpper(line))
			},
		})
		mem.SetInput([]byte(input))
		if err := app.Run(context.Background(), []string{"shout"}); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return mem.OutputString()
	}

	first := run("hello\n")
	second := run("hello\n")
	if first != second {
		t.Errorf("same command and input produced different output: %q vs %q", first, second)
	}
	if first != "HELLO\n" {
		t.Errorf("output = %q, want %q", first, "HELLO\n")
	}
}

func TestApp_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(t)
	app.Register(&Func{CommandName: "hello", CommandSummary: "Say hello.",
		RunFunc: func(*Context) error { return nil }})

	err := app.Run(context.Background(), []string{"hlelo"})
	if err == nil {
		t.Fatal("Run() accepted an unknown command")
	}
	if got := clierr.ExitCode(err); got != clierr.ExitUsage {
		t.Errorf("ExitCode() = %d, want %d", got, clierr.ExitUsage)
	}
	if !strings.Contains(err.Error(), "did you mean 'hello'?") {
		t.Errorf("error = %q, want a suggestion", err.Error())
	}
}

func TestApp_BuiltinVersion(t *testing.T) {
	app, mem := newTestApp(t)

	if err := app.Run(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := mem.OutputString(); got != "testapp 1.2.3\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestApp_BuiltinHelp(t *testing.T) {
	app, mem := newTestApp(t)
	app.Register(
		&Func{CommandName: "hello", CommandSummary: "Say hello.",
			RunFunc: func(*Context) error { return nil }},
		&Func{CommandName: "goodbye", CommandSummary: "Say goodbye.",
			RunFunc: func(*Context) error { return nil }},
	)

	tests := []struct {
		name string
		argv []string
	}{
		{"help command", []string{"help"}},
		{"long flag", []string{"--help"}},
		{"no arguments", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem.ResetOutput()
			if err := app.Run(context.Background(), tt.argv); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			got := mem.OutputString()
			for _, want := range []string{"testapp", "hello", "Say hello.", "goodbye"} {
				if !strings.Contains(got, want) {
					t.Errorf("help output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

type helpfulCommand struct{ Func }

func (h *helpfulCommand) LongHelp() string {
	return "Greets the given name.\n\n## Flags\n\n`--name` selects who to greet."
}

func TestApp_CommandHelp(t *testing.T) {
	app, mem := newTestApp(t)
	cmd := &helpfulCommand{Func{CommandName: "hello", CommandSummary: "Say hello.",
		RunFunc: func(*Context) error { return nil }}}
	app.Register(cmd)

	if err := app.Run(context.Background(), []string{"help", "hello"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := mem.OutputString()
	if !strings.Contains(got, "Say hello.") {
		t.Errorf("command help missing summary:\n%s", got)
	}
	if !strings.Contains(got, "Greets the given name.") {
		t.Errorf("command help missing long help:\n%s", got)
	}

	if err := app.Run(context.Background(), []string{"help", "nope"}); err == nil {
		t.Error("help for unknown command should fail")
	}
}

func TestApp_RootCommand(t *testing.T) {
	var seen []string
	root := &Func{CommandName: "hello", CommandSummary: "Say hello.",
		RunFunc: func(ctx *Context) error {
			seen = ctx.Args.Raw()
			return ctx.Outputln("Hello, world!")
		}}
	app, mem := newTestApp(t, WithRoot(root))

	// Root mode passes every argument through, including would-be
	// subcommand tokens.
	if err := app.Run(context.Background(), []string{"--error", "extra"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(seen) != 2 || seen[0] != "--error" {
		t.Errorf("root command saw args %v", seen)
	}
	if got := mem.OutputString(); got != "Hello, world!\n" {
		t.Errorf("output = %q", got)
	}
}

func TestApp_Alias(t *testing.T) {
	app, mem := newTestApp(t)
	app.Register(&Func{CommandName: "status", CommandSummary: "Show status.",
		RunFunc: func(ctx *Context) error { return ctx.Outputln("ok") }})
	app.Alias("s", "status")

	if err := app.Run(context.Background(), []string{"s"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := mem.OutputString(); got != "ok\n" {
		t.Errorf("output = %q", got)
	}
}

func TestApp_Main_ErrorRendering(t *testing.T) {
	app, mem := newTestApp(t)
	app.Register(&Func{CommandName: "fail", CommandSummary: "Always fails.",
		RunFunc: func(*Context) error {
			return clierr.Newf(7, "it broke").WithContext("while failing on purpose")
		}})

	status := app.Main([]string{"fail"})

	if status != 7 {
		t.Errorf("Main() = %d, want 7", status)
	}
	got := mem.ErrorString()
	if !strings.Contains(got, "[ERROR] while failing on purpose") {
		t.Errorf("error stream = %q", got)
	}
	if mem.OutputString() != "" {
		t.Errorf("output stream = %q, want empty", mem.OutputString())
	}
}

func TestApp_Main_PlainErrorIsGeneral(t *testing.T) {
	app, _ := newTestApp(t)
	app.Register(&Func{CommandName: "fail", CommandSummary: "Always fails.",
		RunFunc: func(*Context) error { return errors.New("boom") }})

	if status := app.Main([]string{"fail"}); status != clierr.ExitGeneral {
		t.Errorf("Main() = %d, want %d", status, clierr.ExitGeneral)
	}
}

func TestApp_RegisterReplacesByName(t *testing.T) {
	app, mem := newTestApp(t)
	app.Register(&Func{CommandName: "go", CommandSummary: "First.",
		RunFunc: func(ctx *Context) error { return ctx.Outputln("first") }})
	app.Register(&Func{CommandName: "go", CommandSummary: "Second.",
		RunFunc: func(ctx *Context) error { return ctx.Outputln("second") }})

	if got := len(app.Names()); got != 1 {
		t.Fatalf("Names() has %d entries, want 1", got)
	}
	if err := app.Run(context.Background(), []string{"go"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := mem.OutputString(); got != "second\n" {
		t.Errorf("output = %q, want replacement to win", got)
	}
}

func TestContext_CarriesInvocationState(t *testing.T) {
	app, _ := newTestApp(t)
	var captured *Context
	app.Register(&Func{CommandName: "probe", CommandSummary: "Capture the context.",
		RunFunc: func(ctx *Context) error {
			captured = ctx
			return nil
		}})

	if err := app.Run(context.Background(), []string{"probe", "--flag"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if captured.App != app {
		t.Error("Context.App not set")
	}
	if captured.Logger == nil {
		t.Error("Context.Logger not set")
	}
	if captured.InvocationID == "" {
		t.Error("Context.InvocationID not set")
	}
	if !captured.Args.BoolFlag("flag") {
		t.Error("Context.Args missing parsed flag")
	}
	if captured.Context == nil {
		t.Error("Context has no embedded context.Context")
	}
}
