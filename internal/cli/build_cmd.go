// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// build_cmd.go - The build command for croissantctl.
//
// Command: build [flags]
// Aliases: prepare
//
// Flags:
//   --jsonld PATH|URL   The Croissant config file for the dataset (required)
//   --file_format FMT   Output file format: jsonl, csv (required)
//   --record_sets ID    Record set to generate; repeatable. All when omitted.
//   --out_dir DIR       Path where the prepared dataset is stored (required)
//   --mapping JSON      Mapping filename->filepath as a flat JSON object of
//                       strings, for manually downloaded files
//
// Examples:
//   croissantctl build --jsonld=/tmp/croissant.json --file_format=jsonl --out_dir=/tmp/out
//   croissantctl build --jsonld=/tmp/croissant.json --file_format=csv --out_dir=/tmp/out \
//     --record_sets=ratings --record_sets=movies
//   croissantctl build --jsonld=/tmp/croissant.json --file_format=jsonl --out_dir=/tmp/out \
//     --mapping='{"document.csv": "~/Downloads/document.csv"}'
//
// The command validates flag surface syntax only; everything else (document
// fetch, record-set resolution, file mapping, conversion, sharded output)
// happens inside the builder, whose errors pass through unchanged.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/croissant-tools/croissantctl/internal/croissant"
)

// RegisterBuild attaches the build command to the given registry.
func RegisterBuild(r *Registry) {
	r.Register(&Command{
		Name:        "build",
		Aliases:     []string{"prepare"},
		Description: "Prepare a Croissant dataset",
		Usage:       "build --jsonld <path|url> --file_format <jsonl|csv> --out_dir <dir> [--record_sets <id>]... [--mapping <json>]",
		Category:    "Dataset",
		Handler:     handleBuild,
	})
}

// buildOptions is the raw flag surface of the build command, prior to
// normalization.
type buildOptions struct {
	JSONLD      string
	RecordSets  []string
	FileFormat  croissant.FileFormat
	OutDir      string
	MappingText string
}

// handleBuild enforces the argument-parsing boundary: required flags must be
// present and --file_format must name a supported format before any build
// logic runs.
func handleBuild(ctx *Context, args *ArgParser) error {
	jsonld := args.Flag("jsonld")
	if jsonld == "" {
		return ErrMissingArgument("jsonld", "--jsonld=/tmp/croissant.json")
	}

	outDir := args.Flag("out_dir")
	if outDir == "" {
		return ErrMissingArgument("out_dir", "--out_dir=/tmp/out")
	}

	formatStr := args.Flag("file_format")
	if formatStr == "" {
		return ErrMissingArgument("file_format", "--file_format=jsonl")
	}
	format, err := croissant.ParseFileFormat(formatStr)
	if err != nil {
		return &ValidationError{
			Field:   "file_format",
			Value:   formatStr,
			Reason:  "unsupported file format",
			Example: "--file_format=" + strings.Join(croissant.FileFormatStrings(), "|"),
			Err:     err,
		}
	}

	return runBuild(ctx, buildOptions{
		JSONLD:      jsonld,
		RecordSets:  args.FlagValues("record_sets"),
		FileFormat:  format,
		OutDir:      outDir,
		MappingText: args.Flag("mapping"),
	})
}

// runBuild is the validate-then-delegate sequence: normalize the record-set
// selection, parse the mapping text, construct the builder and run its
// single blocking prepare operation. Builder errors propagate unchanged.
func runBuild(ctx *Context, opts buildOptions) error {
	// An empty selection means "all record sets"; the builder receives nil,
	// never an empty slice.
	recordSets := opts.RecordSets
	if len(recordSets) == 0 {
		recordSets = nil
	}

	mapping, err := parseMapping(opts.MappingText)
	if err != nil {
		return err
	}

	builder, err := ctx.NewBuilder(croissant.Params{
		JSONLD:       opts.JSONLD,
		RecordSetIDs: recordSets,
		FileFormat:   opts.FileFormat,
		DataDir:      opts.OutDir,
		Mapping:      mapping,
	})
	if err != nil {
		return err
	}

	if err := builder.DownloadAndPrepare(context.Background()); err != nil {
		return err
	}

	if !ctx.Quiet {
		fmt.Fprintf(ctx.Out, "%s %s\n", SuccessStyle.Render("Dataset prepared:"), opts.OutDir)
	}
	return nil
}

// parseMapping parses the --mapping text into a flat filename->filepath
// table. Anything that is not a JSON object of strings is rejected with the
// offending text echoed back. Empty text yields a nil mapping.
func parseMapping(text string) (map[string]string, error) {
	if text == "" {
		return nil, nil
	}

	var mapping map[string]string
	if err := json.Unmarshal([]byte(text), &mapping); err != nil {
		return nil, &ValidationError{
			Field:  "mapping",
			Value:  text,
			Reason: fmt.Sprintf("not a flat JSON object of strings: %v", err),
			Err:    err,
		}
	}
	return mapping, nil
}
