// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// registry.go - Explicit command registry for croissantctl.
//
// The registry is constructed by the entrypoint and passed into each
// command's Register* function; no package-level registry state exists.

package cli

import (
	"context"
	"io"
	"sort"

	"github.com/croissant-tools/croissantctl/internal/config"
	"github.com/croissant-tools/croissantctl/internal/croissant"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command represents a subcommand that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "build")
	Name string

	// Aliases are alternative names (e.g., "prepare")
	Aliases []string

	// Description is shown in help
	Description string

	// Usage shows argument syntax (e.g., "build --jsonld <path> ...")
	Usage string

	// Handler executes the command
	Handler func(ctx *Context, args *ArgParser) error

	// Hidden commands don't appear in help
	Hidden bool

	// Category for grouping in help display
	Category string
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
	order    []string // registration order, for stable help output
}

// NewRegistry creates an empty command registry. Commands are attached by
// the entrypoint through explicit Register* calls.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) {
	if _, exists := r.commands[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd
	}
}

// Get retrieves a command by name or alias. Returns nil if not found.
func (r *Registry) Get(name string) *Command {
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns all registered commands in registration order.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// ByCategory returns visible commands grouped by category, categories sorted
// alphabetically.
func (r *Registry) ByCategory() (categories []string, grouped map[string][]*Command) {
	grouped = make(map[string][]*Command)
	for _, name := range r.order {
		cmd := r.commands[name]
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		if _, seen := grouped[category]; !seen {
			categories = append(categories, category)
		}
		grouped[category] = append(grouped[category], cmd)
	}
	sort.Strings(categories)
	return categories, grouped
}

// =============================================================================
// COLLABORATOR BOUNDARY
// =============================================================================

// Builder is the narrow interface the build command drives. The concrete
// implementation lives in internal/croissant; tests substitute a mock.
type Builder interface {
	// DownloadAndPrepare fetches the dataset's files and materializes the
	// selected record sets. Blocking; returns on completion or first error.
	DownloadAndPrepare(ctx context.Context) error
}

// BuilderFactory constructs a Builder from normalized invocation parameters.
type BuilderFactory func(params croissant.Params) (Builder, error)

// =============================================================================
// CONTEXT TYPE
// =============================================================================

// Context provides command handlers with their dependencies. It follows the
// dependency injection pattern so handlers stay decoupled from the
// entrypoint and can be exercised directly in tests.
type Context struct {
	// Config is the loaded tool configuration
	Config *config.Config

	// NewBuilder constructs the dataset builder collaborator
	NewBuilder BuilderFactory

	// Out is where command output is written
	Out io.Writer

	// JSON selects machine-readable output where supported
	JSON bool

	// Quiet suppresses non-essential output
	Quiet bool

	// Verbose enables debug logging
	Verbose bool
}
