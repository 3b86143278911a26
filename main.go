// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// main.go - croissantctl entrypoint.
//
// Builds the command registry, loads configuration, wires the dataset
// builder factory and dispatches to the requested command.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/croissant-tools/croissantctl/internal/cli"
	"github.com/croissant-tools/croissantctl/internal/config"
	"github.com/croissant-tools/croissantctl/internal/croissant"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", cli.ErrorStyle.Render("Error:"), err)
		os.Exit(cli.GetExitCode(err))
	}
}

func run(out, errW io.Writer, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := &cli.Context{
		Config: cfg,
		Out:    out,
	}
	ctx.NewBuilder = func(params croissant.Params) (cli.Builder, error) {
		return croissant.NewBuilder(params, croissant.Options{
			Logger:          newLogger(errW, cfg.LogLevel, ctx.Verbose, ctx.Quiet),
			HTTPTimeout:     time.Duration(cfg.HTTPTimeoutSecs) * time.Second,
			RecordsPerShard: cfg.RecordsPerShard,
		})
	}

	reg := cli.NewRegistry()
	cli.RegisterBuild(reg)
	cli.RegisterInspect(reg)
	cli.RegisterConfig(reg)

	return cli.Run(reg, ctx, args)
}

// newLogger builds the builder's logger. --verbose forces debug, --quiet
// forces errors only, otherwise the configured level applies.
func newLogger(w io.Writer, configured string, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch configured {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
