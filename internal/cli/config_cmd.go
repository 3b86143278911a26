// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// config_cmd.go - The config command for croissantctl.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Show the effective configuration
//   path                Print the config file location

package cli

import (
	"fmt"

	"github.com/croissant-tools/croissantctl/internal/config"
)

// RegisterConfig attaches the config command to the given registry.
func RegisterConfig(r *Registry) {
	r.Register(&Command{
		Name:        "config",
		Description: "Show croissantctl configuration",
		Usage:       "config [show|path]",
		Category:    "Settings",
		Handler:     handleConfig,
	})
}

func handleConfig(ctx *Context, args *ArgParser) error {
	switch args.Positional(0) {
	case "", "show":
		return showConfig(ctx)
	case "path":
		return showConfigPath(ctx)
	default:
		return NewValidationError("subcommand", args.Positional(0), "unknown config subcommand")
	}
}

func showConfig(ctx *Context) error {
	cfg := ctx.Config

	if ctx.JSON {
		return NewJSONResponse("config", cfg).Write(ctx.Out)
	}

	fmt.Fprintln(ctx.Out, TitleStyle.Render("Configuration"))
	fmt.Fprintf(ctx.Out, "%s %s\n", RenderLabel("Data directory"), ValueStyle.Render(cfg.DataDir))
	fmt.Fprintf(ctx.Out, "%s %s\n", RenderLabel("HTTP timeout"), ValueStyle.Render(fmt.Sprintf("%ds", cfg.HTTPTimeoutSecs)))
	fmt.Fprintf(ctx.Out, "%s %s\n", RenderLabel("Records per shard"), ValueStyle.Render(fmt.Sprintf("%d", cfg.RecordsPerShard)))
	fmt.Fprintf(ctx.Out, "%s %s\n", RenderLabel("Log level"), ValueStyle.Render(cfg.LogLevel))
	return nil
}

func showConfigPath(ctx *Context) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	if ctx.JSON {
		return NewJSONResponse("config", map[string]string{"path": path}).Write(ctx.Out)
	}
	fmt.Fprintln(ctx.Out, path)
	return nil
}
