// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/croissant-tools/croissantctl/internal/config"
	"github.com/croissant-tools/croissantctl/internal/croissant"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{
		Field:   "file_format",
		Value:   "tfrecord",
		Reason:  "unsupported file format",
		Example: "--file_format=jsonl|csv",
	}

	msg := err.Error()
	if !strings.Contains(msg, "file_format") {
		t.Errorf("message missing field: %q", msg)
	}
	if !strings.Contains(msg, "(got: tfrecord)") {
		t.Errorf("message should echo the rejected value: %q", msg)
	}
	if !strings.Contains(msg, "Example:") {
		t.Errorf("message missing example: %q", msg)
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewCommandError("inspect", "load", "could not load dataset description", cause)

	if !errors.Is(err, cause) {
		t.Error("CommandError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("message missing cause: %q", err.Error())
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation error", NewValidationError("mapping", "{bad}", "not json"), ExitUsageError},
		{"wrapped validation error", fmt.Errorf("build: %w", NewValidationError("f", "", "r")), ExitUsageError},
		{"not found type", &NotFoundError{Resource: "record set", ID: "x"}, ExitNotFoundError},
		{"dataset not found type", &croissant.NotFoundError{Resource: "record set", ID: "x"}, ExitNotFoundError},
		{"wrapped dataset not found", fmt.Errorf("record set %q: %w", "r", &croissant.NotFoundError{Resource: "file object", ID: "f"}), ExitNotFoundError},
		{"config error type", &config.Error{Reason: "log_level must be debug, info, warn or error"}, ExitConfigError},
		{"message text alone does not categorize", errors.New(`record set not found: "x"`), ExitGeneralError},
		{"path mentioning config stays general", errors.New("open /data/config/d.json: no such file"), ExitGeneralError},
		{"general", errors.New("something broke"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode = %d, expected %d", got, tt.want)
			}
		})
	}
}
