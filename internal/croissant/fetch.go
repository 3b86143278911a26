// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// fetch.go - Resolution of a file object to a local path.
//
// Resolution order: the user-supplied mapping table first (manual downloads
// stand in for remote files), then a local contentUrl, then a rate-limited
// HTTP download into the data directory. Downloads are staged through an
// incomplete-<uuid> directory and renamed into place so an interrupted run
// never leaves a truncated file behind.

package croissant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// fetcher resolves file objects to local paths.
type fetcher struct {
	client      *http.Client
	limiter     *rate.Limiter
	downloadDir string
	log         *slog.Logger
}

func newFetcher(dataDir string, timeout time.Duration, client *http.Client, log *slog.Logger) *fetcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &fetcher{
		client: client,
		// One request per second with a small burst keeps repeated runs
		// polite toward dataset hosts.
		limiter:     rate.NewLimiter(rate.Limit(1), 4),
		downloadDir: filepath.Join(dataDir, "downloads"),
		log:         log,
	}
}

// Resolve returns a local path holding the file object's content.
func (f *fetcher) Resolve(ctx context.Context, obj *FileObject, mapping map[string]string) (string, error) {
	if path, ok := mappingLookup(mapping, obj); ok {
		expanded := expandHome(path)
		if _, err := os.Stat(expanded); err != nil {
			return "", fmt.Errorf("file mapping for %q points to %q: %w", obj.Name, path, err)
		}
		f.log.Debug("file object resolved from mapping", "file", obj.Name, "path", expanded)
		return expanded, nil
	}

	if obj.ContentURL == "" {
		return "", fmt.Errorf("file object %q has no contentUrl and no mapping entry", obj.Name)
	}

	if isRemote(obj.ContentURL) {
		return f.download(ctx, obj)
	}

	path := expandHome(obj.ContentURL)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file object %q: %w", obj.Name, err)
	}
	f.log.Debug("file object resolved locally", "file", obj.Name, "path", path)
	return path, nil
}

// download fetches a remote file object into the download directory,
// reusing a previous download when present. The cache path is keyed on the
// contentUrl, not just the file name, so two file objects sharing a name but
// pointing at different URLs never collide.
func (f *fetcher) download(ctx context.Context, obj *FileObject) (string, error) {
	name := obj.Name
	if name == "" {
		name = filepath.Base(obj.ContentURL)
	}
	dest := filepath.Join(f.downloadDir, downloadKey(obj.ContentURL), sanitizeName(name))

	if _, err := os.Stat(dest); err == nil {
		f.log.Debug("reusing previous download", "file", name, "path", dest)
		return dest, nil
	}

	staging := filepath.Join(f.downloadDir, "incomplete-"+uuid.NewString())
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return "", fmt.Errorf("download %q: %w", name, err)
	}
	defer os.RemoveAll(staging)

	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	f.log.Info("downloading file object", "file", name, "url", obj.ContentURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, obj.ContentURL, nil)
	if err != nil {
		return "", fmt.Errorf("download %q: %w", name, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %q: unexpected status %s", name, resp.Status)
	}

	part := filepath.Join(staging, sanitizeName(name))
	out, err := os.Create(part)
	if err != nil {
		return "", fmt.Errorf("download %q: %w", name, err)
	}
	written, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("download %q: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("download %q: %w", name, err)
	}
	if err := os.Rename(part, dest); err != nil {
		return "", fmt.Errorf("download %q: %w", name, err)
	}
	f.log.Info("download complete", "file", name, "bytes", written)
	return dest, nil
}

// mappingLookup checks the manual-download table by file name, then by @id.
func mappingLookup(mapping map[string]string, obj *FileObject) (string, bool) {
	if mapping == nil {
		return "", false
	}
	if path, ok := mapping[obj.Name]; ok {
		return path, true
	}
	if path, ok := mapping[obj.ID]; ok {
		return path, true
	}
	return "", false
}

// downloadKey derives the cache subdirectory for a contentUrl.
func downloadKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:16]
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// sanitizeName keeps file and directory names portable.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
