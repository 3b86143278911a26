// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// writer.go - Sharded output writers for prepared record sets.
//
// Shards are written as <name>-%05d.tmp while the record count is unknown,
// then renamed to <name>-%05d-of-%05d.<ext> once the total shard count is.

package croissant

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// shardResult reports what a record-set write produced.
type shardResult struct {
	Records int
	Shards  int
}

// writeRecordSet drains the reader into sharded files under dir.
func writeRecordSet(dir, name string, format FileFormat, fields []Field, recordsPerShard int, src recordReader) (shardResult, error) {
	if recordsPerShard <= 0 {
		recordsPerShard = defaultRecordsPerShard
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return shardResult{}, err
	}

	var (
		res     shardResult
		sw      shardWriter
		inShard int
	)

	closeShard := func() error {
		if sw == nil {
			return nil
		}
		err := sw.Close()
		sw = nil
		return err
	}

	for {
		rec, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			closeShard()
			return res, err
		}

		projected, perr := projectFields(rec, fields)
		if perr != nil {
			closeShard()
			return res, fmt.Errorf("record set %q: %w", name, perr)
		}

		if sw == nil {
			sw, err = newShardWriter(dir, name, res.Shards, format, fields)
			if err != nil {
				return res, err
			}
			res.Shards++
			inShard = 0
		}

		if err := sw.Write(projected); err != nil {
			closeShard()
			return res, err
		}
		res.Records++
		inShard++

		if inShard >= recordsPerShard {
			if err := closeShard(); err != nil {
				return res, err
			}
		}
	}

	if err := closeShard(); err != nil {
		return res, err
	}

	// No records still produces one empty shard so the record set has a
	// well-formed on-disk presence.
	if res.Shards == 0 {
		sw, err := newShardWriter(dir, name, 0, format, fields)
		if err != nil {
			return res, err
		}
		if err := sw.Close(); err != nil {
			return res, err
		}
		res.Shards = 1
	}

	if err := finalizeShards(dir, name, format, res.Shards); err != nil {
		return res, err
	}
	return res, nil
}

// finalizeShards renames the temporary shards now that the total is known.
func finalizeShards(dir, name string, format FileFormat, total int) error {
	for i := 0; i < total; i++ {
		tmp := filepath.Join(dir, fmt.Sprintf("%s-%05d.tmp", name, i))
		final := filepath.Join(dir, fmt.Sprintf("%s-%05d-of-%05d%s", name, i, total, format.Extension()))
		if err := os.Rename(tmp, final); err != nil {
			return fmt.Errorf("finalize shard %d of record set %q: %w", i, name, err)
		}
	}
	return nil
}

// =============================================================================
// PER-FORMAT SHARD WRITERS
// =============================================================================

// shardWriter writes projected records into a single shard file.
type shardWriter interface {
	Write(rec record) error
	Close() error
}

func newShardWriter(dir, name string, index int, format FileFormat, fields []Field) (shardWriter, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s-%05d.tmp", name, index))
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		w := csv.NewWriter(file)
		header := make([]string, len(fields))
		for i := range fields {
			header[i] = fields[i].Name
		}
		if err := w.Write(header); err != nil {
			file.Close()
			return nil, err
		}
		return &csvShardWriter{file: file, writer: w, header: header}, nil
	case FormatJSONL:
		return &jsonlShardWriter{file: file, enc: json.NewEncoder(file)}, nil
	default:
		file.Close()
		return nil, fmt.Errorf("unsupported file format %q", format)
	}
}

type jsonlShardWriter struct {
	file *os.File
	enc  *json.Encoder
}

func (w *jsonlShardWriter) Write(rec record) error {
	return w.enc.Encode(rec)
}

func (w *jsonlShardWriter) Close() error {
	return w.file.Close()
}

type csvShardWriter struct {
	file   *os.File
	writer *csv.Writer
	header []string
}

func (w *csvShardWriter) Write(rec record) error {
	row := make([]string, len(w.header))
	for i, col := range w.header {
		if v, ok := rec[col]; ok && v != nil {
			row[i] = fmt.Sprint(v)
		}
	}
	return w.writer.Write(row)
}

func (w *csvShardWriter) Close() error {
	w.writer.Flush()
	err := w.writer.Error()
	if closeErr := w.file.Close(); err == nil {
		err = closeErr
	}
	return err
}
