// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// dataset.go - In-memory model of a Croissant JSON-LD dataset description.
//
// The parse here is deliberately trivial: the document is decoded as plain
// JSON into the fields the builder consumes (@context and unknown keys are
// ignored) and nothing about its content is validated beyond parseability.

package croissant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Dataset is a Croissant dataset description.
type Dataset struct {
	ID          string       `json:"@id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	ConformsTo  string       `json:"conformsTo,omitempty"`
	URL         string       `json:"url,omitempty"`
	Distribution []FileObject `json:"distribution"`
	RecordSets  []RecordSet  `json:"recordSet"`
}

// FileObject is a file the dataset's records are stored in.
type FileObject struct {
	ID             string `json:"@id"`
	Name           string `json:"name"`
	ContentURL     string `json:"contentUrl"`
	EncodingFormat string `json:"encodingFormat,omitempty"`
	SHA256         string `json:"sha256,omitempty"`
}

// RecordSet is a named logical grouping of fields, mapped to one output
// configuration.
type RecordSet struct {
	ID          string  `json:"@id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"field"`
}

// Field is a single column/attribute of a record set.
type Field struct {
	ID          string          `json:"@id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	DataType    json.RawMessage `json:"dataType,omitempty"` // string or list; kept raw
	Source      *FieldSource    `json:"source,omitempty"`
}

// FieldSource says where a field's values come from.
type FieldSource struct {
	FileObject *Ref     `json:"fileObject,omitempty"`
	FileSet    *Ref     `json:"fileSet,omitempty"`
	Extract    *Extract `json:"extract,omitempty"`
}

// Ref is a JSON-LD reference to another node by @id.
type Ref struct {
	ID string `json:"@id"`
}

// Extract names the piece of the source file a field reads.
type Extract struct {
	Column string `json:"column,omitempty"`
}

// =============================================================================
// LOADING
// =============================================================================

// ParseDataset decodes a Croissant JSON-LD document.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset description: %w", err)
	}
	return &ds, nil
}

// LoadDataset reads a dataset description from a local path or an http(s)
// URL and parses it. A nil client falls back to http.DefaultClient.
func LoadDataset(ctx context.Context, ref string, client *http.Client) (*Dataset, error) {
	data, err := readRef(ctx, ref, client)
	if err != nil {
		return nil, fmt.Errorf("load dataset description %q: %w", ref, err)
	}
	return ParseDataset(data)
}

func readRef(ctx context.Context, ref string, client *http.Client) ([]byte, error) {
	if !isRemote(ref) {
		return os.ReadFile(ref)
	}

	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// =============================================================================
// LOOKUPS
// =============================================================================

// RecordSet finds a record set by @id or name.
func (d *Dataset) RecordSet(selector string) (*RecordSet, bool) {
	for i := range d.RecordSets {
		rs := &d.RecordSets[i]
		if rs.ID == selector || rs.Name == selector {
			return rs, true
		}
	}
	return nil, false
}

// FileObject finds a distribution entry by @id or name.
func (d *Dataset) FileObject(id string) (*FileObject, bool) {
	for i := range d.Distribution {
		obj := &d.Distribution[i]
		if obj.ID == id || obj.Name == id {
			return obj, true
		}
	}
	return nil, false
}

// SourceFileObjects returns the distinct file object ids the record set's
// fields read from, in first-reference order.
func (rs *RecordSet) SourceFileObjects() []string {
	var ids []string
	seen := make(map[string]bool)
	for _, f := range rs.Fields {
		if f.Source == nil || f.Source.FileObject == nil {
			continue
		}
		id := f.Source.FileObject.ID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// Label returns the record set's name, falling back to its @id.
func (rs *RecordSet) Label() string {
	if rs.Name != "" {
		return rs.Name
	}
	return rs.ID
}

// ColumnName returns the source column a field reads, falling back to the
// field name when no extract is declared.
func (f *Field) ColumnName() string {
	if f.Source != nil && f.Source.Extract != nil && f.Source.Extract.Column != "" {
		return f.Source.Extract.Column
	}
	return f.Name
}
