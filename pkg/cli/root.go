/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/cp4i-tools/chief/pkg/logging"
)

const (
	name           = "chief"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New assembles the root command with all subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "CP4I cluster inspection and change tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `chief captures point-in-time snapshots of an OpenShift / CP4I cluster,
compares them to surface what changed between runs, and renders reports
for operations and license reviews.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			snapshotCmd(),
			diffCmd(),
			reportCmd(),
			watchCmd(),
		},
	}
}

// Execute runs the CLI with signal-aware cancellation. Called by
// main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
