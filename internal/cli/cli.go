// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// cli.go - Global flag handling and command dispatch for croissantctl.

package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Run parses global flags, resolves the requested command in the registry
// and executes its handler. Errors are returned to the caller, which owns
// display and exit codes.
func Run(reg *Registry, ctx *Context, args []string) error {
	var remaining []string
	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			ctx.Quiet = true
		case "-v", "--verbose":
			ctx.Verbose = true
		case "--json":
			ctx.JSON = true
		default:
			remaining = append(remaining, arg)
		}
	}

	if len(remaining) == 0 {
		PrintUsage(ctx, reg)
		return nil
	}

	name := strings.ToLower(remaining[0])
	switch name {
	case "help", "-h", "--help":
		PrintUsage(ctx, reg)
		return nil
	case "version", "--version":
		return handleVersion(ctx)
	}

	cmd := reg.Get(name)
	if cmd == nil {
		return &ValidationError{
			Field:   "command",
			Value:   name,
			Reason:  "unknown command",
			Example: "croissantctl help",
		}
	}

	err := cmd.Handler(ctx, NewArgParser(remaining[1:]))
	if err != nil && ctx.JSON {
		// Machine consumers get the failure as an envelope on stdout; the
		// human-readable line still goes to stderr via the caller.
		NewJSONErrorResponse(cmd.Name, err).Write(ctx.Out)
	}
	return err
}

// PrintUsage prints the usage/help text generated from the registry.
func PrintUsage(ctx *Context, reg *Registry) {
	fmt.Fprintln(ctx.Out, TitleStyle.Render("croissantctl - prepare datasets from Croissant JSON-LD descriptions"))
	fmt.Fprintln(ctx.Out, "Usage:")
	fmt.Fprintln(ctx.Out, "  croissantctl <command> [flags]")

	categories, grouped := reg.ByCategory()
	for _, category := range categories {
		fmt.Fprintf(ctx.Out, "\n%s\n", SectionStyle.Render(category))
		for _, cmd := range grouped[category] {
			name := cmd.Name
			if len(cmd.Aliases) > 0 {
				name += ", " + strings.Join(cmd.Aliases, ", ")
			}
			fmt.Fprintf(ctx.Out, "  %s %s\n", RenderLabel(name), ValueStyle.Render(cmd.Description))
			if cmd.Usage != "" {
				fmt.Fprintf(ctx.Out, "  %s %s\n", RenderLabel(""), DimStyle.Render("croissantctl "+cmd.Usage))
			}
		}
	}

	fmt.Fprint(ctx.Out, `
Global Flags:
  --json          Output in JSON format where supported
  -q, --quiet     Minimal output
  -v, --verbose   Debug output

Examples:
  croissantctl build --jsonld=/tmp/croissant.json --file_format=jsonl --out_dir=/tmp/out
  croissantctl build --jsonld=/tmp/croissant.json --file_format=csv --out_dir=/tmp/out \
    --record_sets=ratings --record_sets=movies \
    --mapping='{"document.csv": "~/Downloads/document.csv"}'
  croissantctl inspect --jsonld=https://example.org/dataset.json

`)
	fmt.Fprintf(ctx.Out, "Version: %s\n", Version)
}

// versionData is the --json payload for the version command.
type versionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

func handleVersion(ctx *Context) error {
	if ctx.JSON {
		resp := NewJSONResponse("version", versionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		})
		return resp.Write(ctx.Out)
	}
	fmt.Fprintf(ctx.Out, "croissantctl version %s\n", Version)
	fmt.Fprintf(ctx.Out, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(ctx.Out, "  Build date: %s\n", BuildDate)
	return nil
}
