// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// format.go - The closed set of output file formats the builder can write.

package croissant

import (
	"fmt"
	"strings"
)

// FileFormat names an output encoding for prepared record sets.
type FileFormat string

const (
	// FormatJSONL writes one JSON object per line.
	FormatJSONL FileFormat = "jsonl"
	// FormatCSV writes a header row followed by one row per record.
	FormatCSV FileFormat = "csv"
)

// FileFormats returns the supported formats in display order.
func FileFormats() []FileFormat {
	return []FileFormat{FormatJSONL, FormatCSV}
}

// FileFormatStrings returns the supported format names.
func FileFormatStrings() []string {
	formats := FileFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFileFormat validates a format name against the closed set.
// Matching is case-insensitive; no other value is accepted.
func ParseFileFormat(s string) (FileFormat, error) {
	f := FileFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unsupported file format %q (supported: %s)",
			s, strings.Join(FileFormatStrings(), ", "))
	}
	return f, nil
}

// Valid reports whether the format is a member of the closed set.
func (f FileFormat) Valid() bool {
	switch f {
	case FormatJSONL, FormatCSV:
		return true
	}
	return false
}

// Extension returns the shard filename extension for the format.
func (f FileFormat) Extension() string {
	return "." + string(f)
}
