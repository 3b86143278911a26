// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
)

func TestArgParserFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		flag     string
		expected string
	}{
		{
			name:     "long flag with space",
			args:     []string{"--jsonld", "/tmp/d.json"},
			flag:     "jsonld",
			expected: "/tmp/d.json",
		},
		{
			name:     "long flag with equals",
			args:     []string{"--out_dir=/tmp/out"},
			flag:     "out_dir",
			expected: "/tmp/out",
		},
		{
			name:     "short flag",
			args:     []string{"-f", "jsonl"},
			flag:     "f",
			expected: "jsonl",
		},
		{
			name:     "missing flag",
			args:     []string{"--jsonld", "/tmp/d.json"},
			flag:     "mapping",
			expected: "",
		},
		{
			name:     "repeated flag returns last",
			args:     []string{"--file_format=csv", "--file_format=jsonl"},
			flag:     "file_format",
			expected: "jsonl",
		},
		{
			name:     "value containing equals",
			args:     []string{`--mapping={"a.csv": "/tmp/a.csv"}`},
			flag:     "mapping",
			expected: `{"a.csv": "/tmp/a.csv"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewArgParser(tt.args)
			if got := parser.Flag(tt.flag); got != tt.expected {
				t.Errorf("Flag(%q) = %q, expected %q", tt.flag, got, tt.expected)
			}
		})
	}
}

func TestArgParserFlagValues(t *testing.T) {
	parser := NewArgParser([]string{
		"--record_sets=ratings",
		"--record_sets", "movies",
		"--record_sets=users",
	})

	got := parser.FlagValues("record_sets")
	want := []string{"ratings", "movies", "users"}
	if len(got) != len(want) {
		t.Fatalf("FlagValues = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FlagValues[%d] = %q, expected %q", i, got[i], want[i])
		}
	}

	if vals := parser.FlagValues("mapping"); vals != nil {
		t.Errorf("FlagValues for absent flag = %v, expected nil", vals)
	}
}

func TestArgParserBoolFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		flag     string
		expected bool
	}{
		{"trailing bool flag", []string{"--json"}, "json", true},
		{"bool before another flag", []string{"--json", "--quiet"}, "json", true},
		{"absent", []string{"--quiet"}, "json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewArgParser(tt.args)
			if got := parser.BoolFlag(tt.flag); got != tt.expected {
				t.Errorf("BoolFlag(%q) = %v, expected %v", tt.flag, got, tt.expected)
			}
		})
	}
}

func TestArgParserBooleanLookingValuesStayStrings(t *testing.T) {
	// A string flag whose value happens to be "true" or "false" is still a
	// string flag; the value must not be swallowed into the boolean table.
	parser := NewArgParser([]string{"--record_sets=true", "--record_sets=false"})

	got := parser.FlagValues("record_sets")
	want := []string{"true", "false"}
	if len(got) != len(want) {
		t.Fatalf("FlagValues = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FlagValues[%d] = %q, expected %q", i, got[i], want[i])
		}
	}
	if parser.BoolFlag("record_sets") {
		t.Error("string flag leaked into the boolean table")
	}
}

func TestArgParserPositional(t *testing.T) {
	parser := NewArgParser([]string{"show", "--json", "extra"})

	if got := parser.Positional(0); got != "show" {
		t.Errorf("Positional(0) = %q, expected %q", got, "show")
	}
	if got := parser.Positional(1); got != "extra" {
		t.Errorf("Positional(1) = %q, expected %q", got, "extra")
	}
	if got := parser.Positional(5); got != "" {
		t.Errorf("Positional(5) = %q, expected empty", got)
	}
	if got := parser.PositionalCount(); got != 2 {
		t.Errorf("PositionalCount = %d, expected 2", got)
	}
}

func TestArgParserFlagOrDefault(t *testing.T) {
	parser := NewArgParser([]string{"--file_format=csv"})

	if got := parser.FlagOrDefault("file_format", "jsonl"); got != "csv" {
		t.Errorf("FlagOrDefault = %q, expected %q", got, "csv")
	}
	if got := parser.FlagOrDefault("out_dir", "/tmp/out"); got != "/tmp/out" {
		t.Errorf("FlagOrDefault for absent flag = %q, expected default", got)
	}
}

func TestArgParserHasFlag(t *testing.T) {
	parser := NewArgParser([]string{"--jsonld=/tmp/d.json", "--json"})

	if !parser.HasFlag("jsonld") {
		t.Error("HasFlag(jsonld) should be true for string flag")
	}
	if !parser.HasFlag("json") {
		t.Error("HasFlag(json) should be true for bool flag")
	}
	if parser.HasFlag("mapping") {
		t.Error("HasFlag(mapping) should be false for absent flag")
	}
}
