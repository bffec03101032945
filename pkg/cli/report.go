/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cp4i-tools/chief/pkg/defaults"
	"github.com/cp4i-tools/chief/pkg/errors"
	"github.com/cp4i-tools/chief/pkg/render"
	"github.com/cp4i-tools/chief/pkg/serializer"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Generate a cluster report from the latest snapshot",
		Description: `Generate a report combining the latest snapshot, the change-set
against its predecessor, and the licensing / criticality / workload
categorization summary.

Formats: json, yaml, table (text summary), html (dashboard), excel
(workbook for license review).

# Examples

Text summary to the terminal:
  chief report --format table

Excel workbook for a license review:
  chief report --format excel --output cluster-report.xlsx

HTML dashboard with custom categorization rules:
  chief report --format html --rules rules.yaml --output report.html`,
		Flags: []cli.Flag{
			storeFlag,
			clusterFlag,
			thresholdFlag,
			rulesFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			clusterID, err := resolveClusterID(ctx, cmd, store)
			if err != nil {
				return err
			}
			snaps, err := store.Load(ctx, clusterID, defaults.StoreHistoryDepth)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				return errors.New(errors.ErrCodeNotFound,
					fmt.Sprintf("no snapshots for cluster %q, run \"chief snapshot\" first", clusterID))
			}
			latest := snaps[len(snaps)-1]

			cs, err := computeChangeSet(ctx, cmd, store)
			if err != nil {
				return err
			}
			cat, err := loadRules(cmd)
			if err != nil {
				return err
			}

			report := render.NewReport(latest, cs, cat, version)

			switch format := cmd.String("format"); format {
			case "html", "excel", "xlsx":
				w, err := outWriter(cmd.String("output"))
				if err != nil {
					return err
				}
				defer w.Close()
				if format == "html" {
					return render.WriteHTML(w, report)
				}
				return render.WriteExcel(w, report, latest, cat)
			case string(serializer.FormatTable):
				w, err := outWriter(cmd.String("output"))
				if err != nil {
					return err
				}
				defer w.Close()
				return render.WriteReportSummary(w, report)
			default:
				return writeArtifact(ctx, cmd, report)
			}
		},
	}
}
