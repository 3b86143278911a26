// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for croissantctl.
//
// Configuration sources, in order of precedence:
//   - CROISSANTCTL_* environment variables
//   - ~/.croissantctl/config.toml
//   - Built-in defaults
package config
