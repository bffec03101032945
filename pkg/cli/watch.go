/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cp4i-tools/chief/pkg/defaults"
	"github.com/cp4i-tools/chief/pkg/diffengine"
	"github.com/cp4i-tools/chief/pkg/monitor"
	"github.com/cp4i-tools/chief/pkg/render"
)

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "watch",
		EnableShellCompletion: true,
		Usage:                 "Continuously snapshot the cluster and report changes",
		Description: `Run the capture and compare cycle on an interval, printing detected
changes after each run. A minimum gap between runs is enforced
regardless of the configured interval.

Stops on interrupt, or after --max-runs runs when given.

# Examples

Watch every five minutes:
  chief watch --interval 5m

Three runs for a maintenance window check:
  chief watch --interval 1m --max-runs 3`,
		Flags: []cli.Flag{
			storeFlag,
			clusterFlag,
			namespacesFlag,
			useOCFlag,
			kubeconfigFlag,
			thresholdFlag,
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "gap between collection run starts",
				Value: defaults.WatchInterval,
			},
			&cli.DurationFlag{
				Name:  "min-gap",
				Usage: "enforced floor between collection run starts",
				Value: defaults.WatchMinGap,
			},
			&cli.IntFlag{
				Name:  "max-runs",
				Usage: "stop after this many runs (0 = run until interrupted)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			s, err := buildSnapshotter(cmd, store)
			if err != nil {
				return err
			}

			cfg := diffengine.DefaultConfig()
			cfg.RestartCriticalThreshold = int(cmd.Int("restart-threshold"))

			m := &monitor.Monitor{
				Interval: cmd.Duration("interval"),
				MinGap:   cmd.Duration("min-gap"),
				MaxRuns:  int(cmd.Int("max-runs")),
				Run: func(ctx context.Context) error {
					snap, err := s.Capture(ctx)
					if err != nil {
						return err
					}

					snaps, err := store.Load(ctx, snap.ClusterID, defaults.StoreHistoryDepth)
					if err != nil {
						return err
					}
					cs := diffengine.CompareHistory(snaps, cfg)
					if cs.Empty() {
						slog.Info("no changes detected", "cluster", snap.ClusterID)
						return nil
					}
					return render.WriteChanges(os.Stdout, cs)
				},
			}
			return m.Start(ctx)
		},
	}
}
