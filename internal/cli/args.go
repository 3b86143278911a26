// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// args.go - Unified argument parsing for all croissantctl commands.
//
// Every command shares one parser so flags behave the same everywhere:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Repeated flags: --record_sets a --record_sets b collects both values
//   - Positional arguments: arguments without flags

package cli

import (
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser provides unified argument parsing for CLI commands.
//
// String flags may repeat; Flag returns the last value and FlagValues returns
// all of them in order, which is how zero-or-more flags like --record_sets
// are expressed.
type ArgParser struct {
	flags      map[string][]string // String flags, in order of appearance
	boolFlags  map[string]bool     // Boolean flags (--confirm)
	positional []string            // Positional arguments
}

// NewArgParser creates a new argument parser from raw arguments.
//
// Example:
//
//	args := NewArgParser([]string{"--jsonld", "/tmp/d.json", "--record_sets=a", "--record_sets=b", "--json"})
//	args.Flag("jsonld")             // "/tmp/d.json"
//	args.FlagValues("record_sets")  // ["a", "b"]
//	args.BoolFlag("json")           // true
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:     make(map[string][]string),
		boolFlags: make(map[string]bool),
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") {
			// Handle --flag=value format
			if strings.Contains(arg, "=") {
				parts := strings.SplitN(arg, "=", 2)
				name := strings.TrimLeft(parts[0], "-")
				parser.flags[name] = append(parser.flags[name], parts[1])
				i++
				continue
			}

			name := strings.TrimLeft(arg, "-")

			// Next arg is this flag's value unless it is another flag.
			if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				parser.flags[name] = append(parser.flags[name], raw[i+1])
				i += 2
			} else {
				parser.boolFlags[name] = true
				i++
			}
		} else {
			parser.positional = append(parser.positional, arg)
			i++
		}
	}

	return parser
}

// Flag returns the value of a string flag, or the last value if the flag was
// repeated. Returns empty string if the flag is not present.
func (p *ArgParser) Flag(name string) string {
	name = strings.TrimLeft(name, "-")
	if vals, ok := p.flags[name]; ok && len(vals) > 0 {
		return vals[len(vals)-1]
	}
	return ""
}

// FlagValues returns every value given for a repeatable string flag, in
// order. Returns nil if the flag is not present.
func (p *ArgParser) FlagValues(name string) []string {
	name = strings.TrimLeft(name, "-")
	return p.flags[name]
}

// FlagOrDefault returns the flag value or a default if not found.
func (p *ArgParser) FlagOrDefault(name, defaultValue string) string {
	if val := p.Flag(name); val != "" {
		return val
	}
	return defaultValue
}

// BoolFlag returns the value of a boolean flag. Returns false if not present.
func (p *ArgParser) BoolFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	return p.boolFlags[name]
}

// Positional returns the positional argument at the given index, or empty
// string if the index is out of bounds.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// HasFlag returns true if the flag exists (either as string or bool flag).
func (p *ArgParser) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	_, hasString := p.flags[name]
	_, hasBool := p.boolFlags[name]
	return hasString || hasBool
}
