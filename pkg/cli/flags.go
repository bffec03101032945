/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"github.com/urfave/cli/v3"

	"github.com/cp4i-tools/chief/pkg/defaults"
	"github.com/cp4i-tools/chief/pkg/serializer"
)

// Flags shared across subcommands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format (json, yaml, table)",
		Value:   string(serializer.FormatJSON),
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "path to kubeconfig file (default: auto-discover)",
		Sources: cli.EnvVars("KUBECONFIG"),
	}

	storeFlag = &cli.StringFlag{
		Name:    "store",
		Usage:   "snapshot store location: a directory or sqlite://PATH",
		Sources: cli.EnvVars("CHIEF_STORE"),
		Value:   ".chief",
	}

	clusterFlag = &cli.StringFlag{
		Name:    "cluster-id",
		Usage:   "cluster identity override (default: discovered from the cluster or store)",
		Sources: cli.EnvVars("CHIEF_CLUSTER_ID"),
	}

	namespacesFlag = &cli.StringSliceFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Usage:   "restrict namespaced collectors (can be repeated; default: all)",
	}

	useOCFlag = &cli.BoolFlag{
		Name:  "use-oc",
		Usage: "collect via the oc CLI instead of the Kubernetes API",
	}

	rulesFlag = &cli.StringFlag{
		Name:  "rules",
		Usage: "categorization ruleset file (default: built-in CP4I rules)",
	}

	thresholdFlag = &cli.IntFlag{
		Name:  "restart-threshold",
		Usage: "pod restart delta at or above which a restart is critical",
		Value: defaults.RestartCriticalThreshold,
	}
)
