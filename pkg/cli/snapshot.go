/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a cluster snapshot",
		Description: `Capture a point-in-time snapshot of cluster resource state:
  - Pods (phase, readiness, restarts, resource requests)
  - Nodes and namespaces
  - Installed operators (ClusterServiceVersions)
  - OpenShift routes
  - Kafka topics and EventStreams instances

The snapshot is saved to the store for later comparison and written to
the output in JSON, YAML, or table format.

# Examples

Capture using the current kubeconfig context:
  chief snapshot

Capture only the CP4I namespaces into a SQLite store:
  chief snapshot -n cp4i -n ibm-common-services --store sqlite:///var/lib/chief/chief.db

Capture through an authenticated oc session:
  chief snapshot --use-oc`,
		Flags: []cli.Flag{
			storeFlag,
			clusterFlag,
			namespacesFlag,
			useOCFlag,
			kubeconfigFlag,
			outputFlag,
			formatFlag,
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

			snap, err := s.Capture(ctx)
			if err != nil {
				return err
			}
			return writeArtifact(ctx, cmd, snap)
		},
	}
}
