// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides command-line parsing and execution for croissantctl.
//
// Commands are plain handlers attached to an explicit Registry that the
// entrypoint constructs and passes into each Register* function; there is no
// package-level registry state. Handlers receive a Context carrying the
// loaded configuration and the builder factory, and return errors instead of
// printing and exiting themselves.
package cli
