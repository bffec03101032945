/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cp4i-tools/chief/pkg/diffengine"
)

var titleCaser = cases.Title(language.English)

// WriteChanges renders the change-set as a plain-text report, one section
// per severity tier ordered most severe first.
func WriteChanges(w io.Writer, cs *diffengine.ChangeSet) error {
	if cs.Empty() {
		_, err := fmt.Fprintln(w, "No changes detected.")
		return err
	}

	fmt.Fprintf(w, "Changes for cluster %s (%s -> %s)\n",
		cs.ClusterID,
		cs.PreviousAt.Format("2006-01-02 15:04:05 MST"),
		cs.CurrentAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Total: %d  critical: %d  important: %d  informational: %d\n",
		len(cs.Changes), cs.Counts.Critical, cs.Counts.Important, cs.Counts.Informational)

	groups := diffengine.BySeverity(cs)
	for _, severity := range diffengine.SeverityOrder {
		changes := groups[severity]
		if len(changes) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s (%d)\n", titleCaser.String(string(severity)), len(changes))

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tKIND\tNAMESPACE\tNAME\tDETAIL")
		for _, c := range changes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Type, c.Kind, c.Namespace, c.Name, c.Detail)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// WriteReportSummary renders the report's headline numbers as plain text.
func WriteReportSummary(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "Cluster %s, generated %s\n", r.ClusterID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tCOUNT")
	for _, kind := range sortedKinds(r.ResourceCounts) {
		fmt.Fprintf(tw, "%s\t%d\n", kind, r.ResourceCounts[kind])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nLicensed VPCs: %.2f  workloads: %d\n",
		r.Categorization.LicensedVPCs, r.Categorization.Workloads)
	if r.Changes != nil && !r.Changes.Empty() {
		fmt.Fprintf(w, "Changes since previous snapshot: %d (critical: %d)\n",
			len(r.Changes.Changes), r.Changes.Counts.Critical)
	}
	return nil
}
