// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// json_output.go - Machine-readable output for croissantctl commands.
//
// Commands that support --json emit a single JSON envelope on stdout so the
// tool can be scripted without scraping styled text.

package cli

import (
	"encoding/json"
	"io"
	"time"
)

// JSONResponse is the envelope for all --json command output.
type JSONResponse struct {
	Command   string `json:"command"`
	Timestamp string `json:"timestamp"`
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewJSONResponse creates a success envelope for a command.
func NewJSONResponse(command string, data any) *JSONResponse {
	return &JSONResponse{
		Command:   command,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Success:   true,
		Data:      data,
	}
}

// NewJSONErrorResponse creates an error envelope for a command.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	return &JSONResponse{
		Command:   command,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Success:   false,
		Error:     err.Error(),
	}
}

// Write encodes the envelope with indentation to the given writer.
func (r *JSONResponse) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
