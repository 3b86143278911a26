// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// builder.go - The dataset builder collaborator.

package croissant

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"
)

const (
	defaultRecordsPerShard = 10000
	defaultHTTPTimeout     = 60 * time.Second
)

// Params are the normalized invocation parameters the builder is
// constructed from. They are built once per invocation and discarded after
// the prepare operation returns.
type Params struct {
	// JSONLD is a local path or http(s) URL of the dataset description.
	JSONLD string

	// RecordSetIDs selects the record sets to generate, by @id or name.
	// nil means all record sets.
	RecordSetIDs []string

	// FileFormat is the output encoding, a member of the closed format set.
	FileFormat FileFormat

	// DataDir is where downloads and prepared record sets are stored.
	DataDir string

	// Mapping substitutes manually downloaded files for remote ones,
	// keyed by file object name or @id. May be nil.
	Mapping map[string]string
}

// Options tune builder behavior; zero values select defaults.
type Options struct {
	// Logger receives progress and debug output. Defaults to slog.Default().
	Logger *slog.Logger

	// HTTPTimeout bounds individual remote fetches.
	HTTPTimeout time.Duration

	// RecordsPerShard caps output shard size.
	RecordsPerShard int

	// Client overrides the HTTP client, for tests.
	Client *http.Client
}

// Builder prepares one dataset. Construct with NewBuilder; run with
// DownloadAndPrepare.
type Builder struct {
	params Params
	opts   Options
	log    *slog.Logger
}

// NewBuilder validates the parameters and returns a ready builder.
func NewBuilder(params Params, opts Options) (*Builder, error) {
	if params.JSONLD == "" {
		return nil, fmt.Errorf("croissant: dataset description reference is required")
	}
	if params.DataDir == "" {
		return nil, fmt.Errorf("croissant: data directory is required")
	}
	if !params.FileFormat.Valid() {
		return nil, fmt.Errorf("croissant: unsupported file format %q", params.FileFormat)
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.HTTPTimeout <= 0 {
		opts.HTTPTimeout = defaultHTTPTimeout
	}
	if opts.RecordsPerShard <= 0 {
		opts.RecordsPerShard = defaultRecordsPerShard
	}

	return &Builder{params: params, opts: opts, log: opts.Logger}, nil
}

// DownloadAndPrepare loads the dataset description, resolves the selected
// record sets and their source files, and writes each record set as sharded
// output under DataDir/<dataset>/<recordset>/. It blocks until done.
func (b *Builder) DownloadAndPrepare(ctx context.Context) error {
	b.log.Info("loading dataset description", "jsonld", b.params.JSONLD)
	ds, err := LoadDataset(ctx, b.params.JSONLD, b.opts.Client)
	if err != nil {
		return err
	}

	selected, err := b.selectRecordSets(ds)
	if err != nil {
		return err
	}
	b.log.Info("preparing dataset",
		"dataset", ds.Name,
		"record_sets", len(selected),
		"file_format", string(b.params.FileFormat))

	fetch := newFetcher(b.params.DataDir, b.opts.HTTPTimeout, b.opts.Client, b.log)

	for _, rs := range selected {
		if err := b.prepareRecordSet(ctx, ds, rs, fetch); err != nil {
			return err
		}
	}

	b.log.Info("dataset prepared", "dataset", ds.Name, "data_dir", b.params.DataDir)
	return nil
}

// selectRecordSets maps the selectors onto the dataset's record sets.
// nil selectors select everything.
func (b *Builder) selectRecordSets(ds *Dataset) ([]*RecordSet, error) {
	if b.params.RecordSetIDs == nil {
		all := make([]*RecordSet, len(ds.RecordSets))
		for i := range ds.RecordSets {
			all[i] = &ds.RecordSets[i]
		}
		return all, nil
	}

	selected := make([]*RecordSet, 0, len(b.params.RecordSetIDs))
	for _, selector := range b.params.RecordSetIDs {
		rs, ok := ds.RecordSet(selector)
		if !ok {
			return nil, &NotFoundError{Resource: "record set", ID: selector}
		}
		selected = append(selected, rs)
	}
	return selected, nil
}

func (b *Builder) prepareRecordSet(ctx context.Context, ds *Dataset, rs *RecordSet, fetch *fetcher) error {
	label := rs.Label()

	sources := rs.SourceFileObjects()
	if len(sources) == 0 {
		return fmt.Errorf("record set %q declares no file object source", label)
	}
	// TODO: support record sets whose fields join several file objects.
	if len(sources) > 1 {
		return fmt.Errorf("record set %q reads from %d file objects; multi-file record sets are not supported", label, len(sources))
	}

	obj, ok := ds.FileObject(sources[0])
	if !ok {
		return fmt.Errorf("record set %q: %w", label, &NotFoundError{Resource: "file object", ID: sources[0]})
	}

	path, err := fetch.Resolve(ctx, obj, b.params.Mapping)
	if err != nil {
		return err
	}

	src, err := openSource(path, obj)
	if err != nil {
		return err
	}
	defer src.Close()

	dir := filepath.Join(b.params.DataDir, sanitizeName(ds.Name), sanitizeName(label))
	res, err := writeRecordSet(dir, sanitizeName(label), b.params.FileFormat, rs.Fields, b.opts.RecordsPerShard, src)
	if err != nil {
		return err
	}

	b.log.Info("record set prepared",
		"record_set", label,
		"records", res.Records,
		"shards", res.Shards,
		"dir", dir)
	return nil
}
