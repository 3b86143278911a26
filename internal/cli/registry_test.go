// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func noopHandler(ctx *Context, args *ArgParser) error { return nil }

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Command{
		Name:        "build",
		Aliases:     []string{"prepare"},
		Description: "Prepare a dataset",
		Handler:     noopHandler,
	})

	if cmd := reg.Get("build"); cmd == nil || cmd.Name != "build" {
		t.Fatal("Get by name failed")
	}
	if cmd := reg.Get("prepare"); cmd == nil || cmd.Name != "build" {
		t.Fatal("Get by alias failed")
	}
	if cmd := reg.Get("unknown"); cmd != nil {
		t.Fatal("Get for unregistered name should return nil")
	}
}

func TestRegistryStartsEmpty(t *testing.T) {
	reg := NewRegistry()
	if got := len(reg.All()); got != 0 {
		t.Fatalf("new registry should have no commands, got %d", got)
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	a.Register(&Command{Name: "build", Handler: noopHandler})

	if b.Get("build") != nil {
		t.Fatal("registration leaked between registry instances")
	}
}

func TestRegistryAllPreservesOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Command{Name: "build", Handler: noopHandler})
	reg.Register(&Command{Name: "inspect", Handler: noopHandler})
	reg.Register(&Command{Name: "config", Handler: noopHandler})

	names := make([]string, 0, 3)
	for _, cmd := range reg.All() {
		names = append(names, cmd.Name)
	}
	want := []string{"build", "inspect", "config"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("All() order = %v, expected %v", names, want)
		}
	}
}

func TestRegistryByCategoryHidesHidden(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Command{Name: "build", Category: "Dataset", Handler: noopHandler})
	reg.Register(&Command{Name: "secret", Hidden: true, Handler: noopHandler})

	categories, grouped := reg.ByCategory()
	for _, category := range categories {
		for _, cmd := range grouped[category] {
			if cmd.Hidden {
				t.Errorf("hidden command %q appears in category %q", cmd.Name, category)
			}
		}
	}
}

func TestRunDispatchesToHandler(t *testing.T) {
	reg := NewRegistry()
	var gotJSONLD string
	reg.Register(&Command{
		Name: "build",
		Handler: func(ctx *Context, args *ArgParser) error {
			gotJSONLD = args.Flag("jsonld")
			return nil
		},
	})

	ctx := &Context{Out: &bytes.Buffer{}}
	err := Run(reg, ctx, []string{"build", "--jsonld=/tmp/d.json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotJSONLD != "/tmp/d.json" {
		t.Errorf("handler did not receive command arguments, got %q", gotJSONLD)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	reg := NewRegistry()
	ctx := &Context{Out: &bytes.Buffer{}}

	err := Run(reg, ctx, []string{"bogus"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the unknown command: %v", err)
	}
	if got := GetExitCode(err); got != ExitUsageError {
		t.Errorf("expected exit code %d, got %d", ExitUsageError, got)
	}
}

func TestRunGlobalFlags(t *testing.T) {
	reg := NewRegistry()
	var seen *Context
	reg.Register(&Command{
		Name: "build",
		Handler: func(ctx *Context, args *ArgParser) error {
			seen = ctx
			return nil
		},
	})

	ctx := &Context{Out: &bytes.Buffer{}}
	if err := Run(reg, ctx, []string{"--json", "-q", "build"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == nil {
		t.Fatal("handler not invoked")
	}
	if !seen.JSON || !seen.Quiet {
		t.Errorf("global flags not applied: JSON=%v Quiet=%v", seen.JSON, seen.Quiet)
	}
}

func TestRunJSONErrorEnvelope(t *testing.T) {
	reg := NewRegistry()
	handlerErr := errors.New("boom")
	reg.Register(&Command{
		Name: "build",
		Handler: func(ctx *Context, args *ArgParser) error {
			return handlerErr
		},
	})

	var out bytes.Buffer
	ctx := &Context{Out: &out}
	err := Run(reg, ctx, []string{"--json", "build"})
	if !errors.Is(err, handlerErr) {
		t.Fatalf("handler error should still propagate, got %v", err)
	}

	var envelope JSONResponse
	if jsonErr := json.Unmarshal(out.Bytes(), &envelope); jsonErr != nil {
		t.Fatalf("stdout is not a JSON envelope: %v\n%s", jsonErr, out.String())
	}
	if envelope.Success {
		t.Error("error envelope should have success=false")
	}
	if !strings.Contains(envelope.Error, "boom") {
		t.Errorf("envelope missing error message: %q", envelope.Error)
	}
	if envelope.Command != "build" {
		t.Errorf("envelope command = %q, expected build", envelope.Command)
	}
}

func TestRunNoJSONEnvelopeWithoutFlag(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Command{
		Name: "build",
		Handler: func(ctx *Context, args *ArgParser) error {
			return errors.New("boom")
		},
	})

	var out bytes.Buffer
	ctx := &Context{Out: &out}
	if err := Run(reg, ctx, []string{"build"}); err == nil {
		t.Fatal("expected handler error")
	}
	if out.Len() != 0 {
		t.Errorf("stdout should stay empty on plain-text failures, got %q", out.String())
	}
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Command{Name: "build", Description: "Prepare a dataset", Handler: noopHandler})

	var out bytes.Buffer
	ctx := &Context{Out: &out}
	if err := Run(reg, ctx, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "croissantctl") {
		t.Error("usage output missing tool name")
	}
	if !strings.Contains(out.String(), "build") {
		t.Error("usage output missing registered command")
	}
}
