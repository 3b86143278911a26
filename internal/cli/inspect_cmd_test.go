// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const inspectDoc = `{
	"@id": "movies",
	"name": "movies",
	"description": "A small movie ratings dataset",
	"distribution": [
		{
			"@id": "ratings-file",
			"name": "ratings.csv",
			"contentUrl": "https://example.org/ratings.csv",
			"encodingFormat": "text/csv"
		}
	],
	"recordSet": [
		{
			"@id": "ratings",
			"name": "ratings",
			"field": [
				{"@id": "ratings/movie", "name": "movie",
				 "source": {"fileObject": {"@id": "ratings-file"}, "extract": {"column": "movie_id"}}}
			]
		}
	]
}`

func writeInspectDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "croissant.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInspectRendersDataset(t *testing.T) {
	path := writeInspectDoc(t, inspectDoc)

	var out bytes.Buffer
	ctx := &Context{Out: &out}
	err := handleInspect(ctx, NewArgParser([]string{"--jsonld", path}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, want := range []string{"movies", "Record sets", "ratings", "movie_id", "File objects", "ratings.csv"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestInspectWarnsOnEmptyDataset(t *testing.T) {
	path := writeInspectDoc(t, `{"name": "empty"}`)

	var out bytes.Buffer
	ctx := &Context{Out: &out}
	err := handleInspect(ctx, NewArgParser([]string{"--jsonld", path}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "(none declared)") {
		t.Errorf("empty dataset should be called out:\n%s", out.String())
	}
}

func TestInspectJSONOutput(t *testing.T) {
	path := writeInspectDoc(t, inspectDoc)

	var out bytes.Buffer
	ctx := &Context{Out: &out}
	err := handleInspect(ctx, NewArgParser([]string{"--jsonld", path, "--json"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var envelope JSONResponse
	if jsonErr := json.Unmarshal(out.Bytes(), &envelope); jsonErr != nil {
		t.Fatalf("output is not a JSON envelope: %v\n%s", jsonErr, out.String())
	}
	if !envelope.Success {
		t.Error("envelope should report success")
	}
	if envelope.Command != "inspect" {
		t.Errorf("envelope command = %q, expected inspect", envelope.Command)
	}
}

func TestInspectMissingJSONLDFlag(t *testing.T) {
	ctx := &Context{Out: &bytes.Buffer{}}
	err := handleInspect(ctx, NewArgParser(nil))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := GetExitCode(err); got != ExitUsageError {
		t.Errorf("expected exit code %d, got %d", ExitUsageError, got)
	}
}

func TestInspectLoadFailure(t *testing.T) {
	ctx := &Context{Out: &bytes.Buffer{}}
	err := handleInspect(ctx, NewArgParser([]string{"--jsonld", "/nonexistent/croissant.json"}))
	if err == nil {
		t.Fatal("expected load error")
	}
	if !strings.Contains(err.Error(), "could not load dataset description") {
		t.Errorf("unexpected error: %v", err)
	}
}
