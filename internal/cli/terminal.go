// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// terminal.go - Terminal detection and handling for croissantctl.
//
// Utilities for detecting terminal capabilities:
// - TTY detection for stdout
// - Terminal width detection for column layout
// - Color output control based on TTY, NO_COLOR and FORCE_COLOR
//
// These ensure proper behavior in different environments: interactive
// terminals get colors, piped output and CI runs do not.

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsStdoutTTY returns true if stdout is a terminal.
// Use this to determine if colored output should be used.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width used for column layout
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth (80) if width cannot be determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR CONTROL
// =============================================================================

var (
	colorsOnce    sync.Once
	colorsEnabled bool
)

// ColorsEnabled returns true if colored output should be used.
//
// Colors are disabled when NO_COLOR is set (https://no-color.org/) or when
// stdout is not a terminal; FORCE_COLOR overrides both.
func ColorsEnabled() bool {
	colorsOnce.Do(func() {
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}
		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// GetColorProfile returns the termenv color profile to use for rendering.
// Ascii (no colors) when colors are disabled, otherwise whatever the
// terminal supports.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
