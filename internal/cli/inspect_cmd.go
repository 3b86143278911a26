// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// inspect_cmd.go - The inspect command for croissantctl.
//
// Command: inspect [flags]
//
// Flags:
//   --jsonld PATH|URL   The Croissant config file to inspect (required)
//   --json              Output in JSON format
//
// Examples:
//   croissantctl inspect --jsonld=/tmp/croissant.json
//   croissantctl inspect --jsonld=https://example.org/dataset.json --json
//
// Inspect does a trivial parse of the description and lists its record sets
// and file objects; it does not validate content, resolve files or touch
// the network beyond fetching the document itself.

package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/croissant-tools/croissantctl/internal/croissant"
)

// RegisterInspect attaches the inspect command to the given registry.
func RegisterInspect(r *Registry) {
	r.Register(&Command{
		Name:        "inspect",
		Aliases:     []string{"show"},
		Description: "List a dataset description's record sets and files",
		Usage:       "inspect --jsonld <path|url> [--json]",
		Category:    "Dataset",
		Handler:     handleInspect,
	})
}

// inspectData is the --json payload for the inspect command.
type inspectData struct {
	Name        string             `json:"name"`
	URL         string             `json:"url,omitempty"`
	RecordSets  []inspectRecordSet `json:"record_sets"`
	FileObjects []inspectFile      `json:"file_objects"`
}

type inspectRecordSet struct {
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	Fields []string `json:"fields"`
}

type inspectFile struct {
	Name           string `json:"name"`
	ContentURL     string `json:"content_url,omitempty"`
	EncodingFormat string `json:"encoding_format,omitempty"`
}

func handleInspect(ctx *Context, args *ArgParser) error {
	jsonld := args.Flag("jsonld")
	if jsonld == "" {
		return ErrMissingArgument("jsonld", "--jsonld=/tmp/croissant.json")
	}
	if args.BoolFlag("json") {
		ctx.JSON = true
	}

	timeout := 60 * time.Second
	if ctx.Config != nil {
		timeout = time.Duration(ctx.Config.HTTPTimeoutSecs) * time.Second
	}
	client := &http.Client{Timeout: timeout}

	ds, err := croissant.LoadDataset(context.Background(), jsonld, client)
	if err != nil {
		return NewCommandError("inspect", "load", "could not load dataset description", err)
	}

	if ctx.JSON {
		return NewJSONResponse("inspect", buildInspectData(ds)).Write(ctx.Out)
	}

	renderInspect(ctx, ds)
	return nil
}

func buildInspectData(ds *croissant.Dataset) inspectData {
	data := inspectData{Name: ds.Name, URL: ds.URL}
	for _, rs := range ds.RecordSets {
		names := make([]string, len(rs.Fields))
		for i, f := range rs.Fields {
			names[i] = f.Name
		}
		data.RecordSets = append(data.RecordSets, inspectRecordSet{
			ID:     rs.ID,
			Name:   rs.Name,
			Fields: names,
		})
	}
	for _, obj := range ds.Distribution {
		data.FileObjects = append(data.FileObjects, inspectFile{
			Name:           obj.Name,
			ContentURL:     obj.ContentURL,
			EncodingFormat: obj.EncodingFormat,
		})
	}
	return data
}

func renderInspect(ctx *Context, ds *croissant.Dataset) {
	fmt.Fprintln(ctx.Out, TitleStyle.Render(ds.Name))
	if ds.Description != "" && !ctx.Quiet {
		fmt.Fprintln(ctx.Out, DimStyle.Render(ds.Description))
	}
	fmt.Fprintln(ctx.Out, RenderSeparator(GetTerminalWidth()))

	fmt.Fprintln(ctx.Out, SectionStyle.Render("Record sets"))
	if len(ds.RecordSets) == 0 {
		fmt.Fprintln(ctx.Out, WarningStyle.Render("  (none declared)"))
	}
	for _, rs := range ds.RecordSets {
		label := rs.Label()
		fmt.Fprintf(ctx.Out, "  %s %s\n",
			ValueStyle.Render(padCell(label, 28)),
			DimStyle.Render(fmt.Sprintf("%d fields", len(rs.Fields))))
		for _, f := range rs.Fields {
			fmt.Fprintf(ctx.Out, "    %s %s\n",
				padCell(f.Name, 26),
				DimStyle.Render(f.ColumnName()))
		}
	}

	fmt.Fprintln(ctx.Out, SectionStyle.Render("File objects"))
	if len(ds.Distribution) == 0 {
		fmt.Fprintln(ctx.Out, WarningStyle.Render("  (none declared)"))
	}
	for _, obj := range ds.Distribution {
		fmt.Fprintf(ctx.Out, "  %s %s\n",
			ValueStyle.Render(padCell(obj.Name, 28)),
			DimStyle.Render(obj.ContentURL))
	}
}

// padCell pads or truncates a table cell by display width, so wide runes do
// not break column alignment.
func padCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
