// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// ERRORS
// =============================================================================

// Error reports a configuration load or validation failure. Callers detect
// configuration problems with errors.As instead of inspecting messages.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Reason, e.Err)
	}
	return "configuration: " + e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the complete croissantctl configuration.
type Config struct {
	// DataDir is the default location for downloads when a command does not
	// specify one.
	DataDir string `toml:"data_dir"`

	// HTTPTimeoutSecs bounds individual remote fetches.
	HTTPTimeoutSecs int `toml:"http_timeout_secs"`

	// RecordsPerShard caps output shard size.
	RecordsPerShard int `toml:"records_per_shard"`

	// LogLevel is the builder's log level: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in defaults.
func Default() *Config {
	dataDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".croissantctl", "datasets")
	}
	return &Config{
		DataDir:         dataDir,
		HTTPTimeoutSecs: 60,
		RecordsPerShard: 10000,
		LogLevel:        "info",
	}
}

// Path returns the config file location (~/.croissantctl/config.toml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &Error{Reason: "resolve home directory", Err: err}
	}
	return filepath.Join(home, ".croissantctl", "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration: defaults, then the TOML file if present,
// then environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if loadErr := loadFile(cfg, path); loadErr != nil {
			return nil, loadErr
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads the configuration from an explicit file path, still
// applying defaults and environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if err := loadFile(cfg, path); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &Error{Reason: fmt.Sprintf("read %q", path), Err: err}
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return &Error{Reason: fmt.Sprintf("parse %q", path), Err: err}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CROISSANTCTL_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CROISSANTCTL_HTTP_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTPTimeoutSecs = n
		}
	}
	if v := os.Getenv("CROISSANTCTL_RECORDS_PER_SHARD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RecordsPerShard = n
		}
	}
	if v := os.Getenv("CROISSANTCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func (c *Config) validate() error {
	if c.HTTPTimeoutSecs <= 0 {
		return &Error{Reason: fmt.Sprintf("http_timeout_secs must be positive, got %d", c.HTTPTimeoutSecs)}
	}
	if c.RecordsPerShard <= 0 {
		return &Error{Reason: fmt.Sprintf("records_per_shard must be positive, got %d", c.RecordsPerShard)}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &Error{Reason: fmt.Sprintf("log_level must be debug, info, warn or error, got %q", c.LogLevel)}
	}
	return nil
}
