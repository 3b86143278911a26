// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// records.go - Streaming readers for record-set source files.
//
// A source file is read as CSV (header row required) or JSON-Lines,
// selected by the file object's encodingFormat with the file extension as
// fallback. Records are projected onto the record set's declared fields
// before they reach the writers.

package croissant

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// record holds one source row keyed by column name.
type record map[string]any

// recordReader yields records from a source file until io.EOF.
type recordReader interface {
	Next() (record, error)
	Close() error
}

// openSource picks a reader for the resolved file.
func openSource(path string, obj *FileObject) (recordReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch sourceKind(path, obj) {
	case "csv":
		r := csv.NewReader(file)
		header, err := r.Read()
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("read csv header of %q: %w", path, err)
		}
		return &csvReader{file: file, reader: r, header: header}, nil
	case "jsonl":
		sc := bufio.NewScanner(file)
		sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		return &jsonlReader{file: file, scanner: sc, path: path}, nil
	default:
		file.Close()
		return nil, fmt.Errorf("file %q: unsupported source encoding %q", path, obj.EncodingFormat)
	}
}

func sourceKind(path string, obj *FileObject) string {
	switch strings.ToLower(obj.EncodingFormat) {
	case "text/csv":
		return "csv"
	case "application/jsonlines", "application/jsonl+json", "application/x-ndjson":
		return "jsonl"
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".jsonl", ".ndjson":
		return "jsonl"
	}
	return ""
}

// =============================================================================
// CSV SOURCE
// =============================================================================

type csvReader struct {
	file   *os.File
	reader *csv.Reader
	header []string
}

func (c *csvReader) Next() (record, error) {
	row, err := c.reader.Read()
	if err != nil {
		return nil, err // io.EOF included
	}
	rec := make(record, len(c.header))
	for i, col := range c.header {
		if i < len(row) {
			rec[col] = row[i]
		}
	}
	return rec, nil
}

func (c *csvReader) Close() error {
	return c.file.Close()
}

// Columns returns the header row.
func (c *csvReader) Columns() []string {
	return c.header
}

// =============================================================================
// JSONL SOURCE
// =============================================================================

type jsonlReader struct {
	file    *os.File
	scanner *bufio.Scanner
	path    string
	line    int
}

func (j *jsonlReader) Next() (record, error) {
	for j.scanner.Scan() {
		j.line++
		text := strings.TrimSpace(j.scanner.Text())
		if text == "" {
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", j.path, j.line, err)
		}
		return rec, nil
	}
	if err := j.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (j *jsonlReader) Close() error {
	return j.file.Close()
}

// =============================================================================
// FIELD PROJECTION
// =============================================================================

// projectFields narrows a source record to the record set's declared fields,
// renaming source columns to field names. A column missing from the source
// is an error on the first record it is missing from.
func projectFields(rec record, fields []Field) (record, error) {
	out := make(record, len(fields))
	for i := range fields {
		f := &fields[i]
		value, ok := rec[f.ColumnName()]
		if !ok {
			return nil, fmt.Errorf("field %q: source column %q not present in record", f.Name, f.ColumnName())
		}
		out[f.Name] = value
	}
	return out, nil
}
