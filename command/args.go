// args.go - Unified argument parsing for commands.
//
// Every command parses its arguments through the same parser so that
// flag handling stays consistent across an application: no command gets
// its own ad-hoc parsing logic with subtly different rules.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARGS - UNIFIED ARGUMENT PARSING FOR ALL COMMANDS
// =============================================================================

// Args holds the parsed arguments for a single command invocation.
// It handles multiple flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
type Args struct {
	flags      map[string]string // String flags (--key=value)
	boolFlags  map[string]bool   // Boolean flags (--yell)
	positional []string          // Arguments without a leading dash
	raw        []string          // Original raw arguments
}

// ParseArgs parses raw arguments into an Args value.
//
// Supported flag formats:
//
//	--flag value     Long flag with space-separated value
//	--flag=value     Long flag with equals sign
//	-f value         Short flag with space-separated value
//	--flag           Boolean flag (no value)
//
// Example:
//
//	args := ParseArgs([]string{"--name", "world", "--since=2024-01-01", "--yell"})
//	args.Flag("name")      // "world"
//	args.Flag("since")     // "2024-01-01"
//	args.BoolFlag("yell")  // true
func ParseArgs(raw []string) *Args {
	args := &Args{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
		raw:        raw,
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") && arg != "-" {
			// Handle --flag=value format
			if strings.Contains(arg, "=") {
				parts := strings.SplitN(arg, "=", 2)
				flagName := strings.TrimLeft(parts[0], "-")
				flagValue := parts[1]

				// Boolean flags can be explicit: --yell=true, --yell=false
				if flagValue == "true" || flagValue == "false" {
					args.boolFlags[flagName] = flagValue == "true"
				} else {
					args.flags[flagName] = flagValue
				}
				i++
				continue
			}

			flagName := strings.TrimLeft(arg, "-")

			// A following non-flag token is this flag's value
			if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				args.flags[flagName] = raw[i+1]
				i += 2
			} else {
				args.boolFlags[flagName] = true
				i++
			}
		} else {
			args.positional = append(args.positional, arg)
			i++
		}
	}

	return args
}

// Flag returns the value of a string flag, or empty string if not set.
// The name may be given with or without leading dashes.
func (a *Args) Flag(name string) string {
	if val, ok := a.flags[name]; ok {
		return val
	}
	name = strings.TrimLeft(name, "-")
	if val, ok := a.flags[name]; ok {
		return val
	}
	return ""
}

// FlagOrDefault returns the flag value or a default if not set.
func (a *Args) FlagOrDefault(name, defaultValue string) string {
	if val := a.Flag(name); val != "" {
		return val
	}
	return defaultValue
}

// FlagInt returns the flag value as an integer.
func (a *Args) FlagInt(name string) (int, error) {
	val := a.Flag(name)
	if val == "" {
		return 0, fmt.Errorf("flag %s not found", name)
	}
	return strconv.Atoi(val)
}

// FlagIntOrDefault returns the flag value as an integer, or a default
// when the flag is missing or not a valid integer.
func (a *Args) FlagIntOrDefault(name string, defaultValue int) int {
	val, err := a.FlagInt(name)
	if err != nil {
		return defaultValue
	}
	return val
}

// BoolFlag reports whether a boolean flag was set. The name may be given
// with or without leading dashes.
func (a *Args) BoolFlag(name string) bool {
	if val, ok := a.boolFlags[name]; ok {
		return val
	}
	name = strings.TrimLeft(name, "-")
	if val, ok := a.boolFlags[name]; ok {
		return val
	}
	return false
}

// HasFlag reports whether a flag was provided at all, as either a string
// or boolean flag.
func (a *Args) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	_, hasString := a.flags[name]
	_, hasBool := a.boolFlags[name]
	return hasString || hasBool
}

// Positional returns the positional argument at the given index, or empty
// string when the index is out of bounds.
func (a *Args) Positional(index int) string {
	if index < 0 || index >= len(a.positional) {
		return ""
	}
	return a.positional[index]
}

// PositionalFrom returns all positional arguments starting at index.
// Useful for joining trailing args into a message.
func (a *Args) PositionalFrom(index int) []string {
	if index < 0 || index >= len(a.positional) {
		return []string{}
	}
	return a.positional[index:]
}

// PositionalCount returns the number of positional arguments.
func (a *Args) PositionalCount() int {
	return len(a.positional)
}

// Raw returns the original raw arguments.
func (a *Args) Raw() []string {
	return a.raw
}

// =============================================================================
// HELPER FUNCTIONS FOR COMMON ARG PATTERNS
// =============================================================================

// ParseBoolString parses a boolean from common string representations.
// Accepts: true/false, yes/no, y/n, 1/0, on/off (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}
