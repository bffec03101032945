/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cp4i-tools/chief/pkg/defaults"
	"github.com/cp4i-tools/chief/pkg/diffengine"
	"github.com/cp4i-tools/chief/pkg/render"
	"github.com/cp4i-tools/chief/pkg/serializer"
	"github.com/cp4i-tools/chief/pkg/snapshot"
)

func diffCmd() *cli.Command {
	return &cli.Command{
		Name:                  "diff",
		EnableShellCompletion: true,
		Usage:                 "Compare the two most recent snapshots",
		Description: `Compare the two most recent snapshots in the store and classify every
difference by change type (Added, Deleted, Modified, Restarted) and
severity (Critical, Important, Informational).

With fewer than two snapshots in the store the result is an empty
change-set, not an error.

# Examples

Human-readable report:
  chief diff --format table

Machine-readable change-set:
  chief diff --format json --output changes.json`,
		Flags: []cli.Flag{
			storeFlag,
			clusterFlag,
			thresholdFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			cs, err := computeChangeSet(ctx, cmd, store)
			if err != nil {
				return err
			}

			// The table format gets the purpose-built text report rather
			// than the generic flattener.
			if serializer.Format(cmd.String("format")) == serializer.FormatTable {
				w, err := outWriter(cmd.String("output"))
				if err != nil {
					return err
				}
				defer w.Close()
				return render.WriteChanges(w, cs)
			}
			return writeArtifact(ctx, cmd, cs)
		},
	}
}

// computeChangeSet loads the snapshot history for the cluster and runs the
// diff engine over it with the command's severity policy.
func computeChangeSet(ctx context.Context, cmd *cli.Command, store snapshot.Store) (*diffengine.ChangeSet, error) {
	clusterID, err := resolveClusterID(ctx, cmd, store)
	if err != nil {
		return nil, err
	}

	snaps, err := store.Load(ctx, clusterID, defaults.StoreHistoryDepth)
	if err != nil {
		return nil, err
	}

	cfg := diffengine.DefaultConfig()
	cfg.RestartCriticalThreshold = int(cmd.Int("restart-threshold"))
	return diffengine.CompareHistory(snaps, cfg), nil
}
