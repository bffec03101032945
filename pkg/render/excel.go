/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cp4i-tools/chief/pkg/categorize"
	"github.com/cp4i-tools/chief/pkg/resource"
	"github.com/cp4i-tools/chief/pkg/snapshot"
)

// Excel sheet names.
const (
	sheetSummary        = "Executive Summary"
	sheetLicensing      = "Licensing"
	sheetInfrastructure = "Infrastructure"
	sheetWorkloads      = "Workloads"
	sheetChanges        = "Changes"
)

// WriteExcel renders the report as an Excel workbook. The snapshot and
// categorizer provide the per-resource rows the summarized report does not
// carry.
func WriteExcel(w io.Writer, r *Report, snap *snapshot.Snapshot, cat *categorize.Categorizer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, r); err != nil {
		return err
	}
	if err := writeLicensingSheet(f, snap, cat); err != nil {
		return err
	}
	if err := writeInfrastructureSheet(f, snap); err != nil {
		return err
	}
	if err := writeWorkloadsSheet(f, snap, cat); err != nil {
		return err
	}
	if err := writeChangesSheet(f, r); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r *Report) error {
	rows := [][]any{
		{"Cluster", r.ClusterID},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Licensed VPCs", r.Categorization.LicensedVPCs},
		{"Workloads", r.Categorization.Workloads},
		{},
		{"Kind", "Count"},
	}
	for _, kind := range sortedKinds(r.ResourceCounts) {
		rows = append(rows, []any{kind.String(), r.ResourceCounts[kind]})
	}
	if r.Changes != nil {
		rows = append(rows, []any{}, []any{"Changes", len(r.Changes.Changes)},
			[]any{"Critical", r.Changes.Counts.Critical},
			[]any{"Important", r.Changes.Counts.Important})
	}

	for i, row := range rows {
		if err := setRow(f, sheetSummary, i+1, row...); err != nil {
			return err
		}
	}
	return nil
}

func writeLicensingSheet(f *excelize.File, snap *snapshot.Snapshot, cat *categorize.Categorizer) error {
	if _, err := f.NewSheet(sheetLicensing); err != nil {
		return err
	}
	if err := setRow(f, sheetLicensing, 1, "Namespace", "Name", "Licensing", "CPU Request (cores)"); err != nil {
		return err
	}

	row := 2
	var vpcs float64
	for i := range snap.Resources {
		r := &snap.Resources[i]
		if r.Kind != resource.KindPod {
			continue
		}
		a := cat.Categorize(r)
		if err := setRow(f, sheetLicensing, row,
			r.Namespace, r.Name, string(a.Licensing), r.Requests.CPUCores); err != nil {
			return err
		}
		if a.Licensing == categorize.LicensingCP4I {
			vpcs += r.Requests.CPUCores
		}
		row++
	}
	return setRow(f, sheetLicensing, row+1, "Total licensed VPCs", "", "", vpcs)
}

func writeInfrastructureSheet(f *excelize.File, snap *snapshot.Snapshot) error {
	if _, err := f.NewSheet(sheetInfrastructure); err != nil {
		return err
	}
	if err := setRow(f, sheetInfrastructure, 1, "Kind", "Name", "Ready", "Phase", "Version"); err != nil {
		return err
	}

	row := 2
	for i := range snap.Resources {
		r := &snap.Resources[i]
		if r.Kind != resource.KindNode && r.Kind != resource.KindNamespace {
			continue
		}
		if err := setRow(f, sheetInfrastructure, row,
			r.Kind.String(), r.Name, r.Status.Ready, r.Status.Phase, r.Status.Version); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeWorkloadsSheet(f *excelize.File, snap *snapshot.Snapshot, cat *categorize.Categorizer) error {
	if _, err := f.NewSheet(sheetWorkloads); err != nil {
		return err
	}
	if err := setRow(f, sheetWorkloads, 1, "Namespace", "Name", "Phase", "Ready", "Restarts", "Criticality"); err != nil {
		return err
	}

	row := 2
	for i := range snap.Resources {
		r := &snap.Resources[i]
		a := cat.Categorize(r)
		if !a.IsWorkload {
			continue
		}
		restarts := ""
		if r.Status.Restarts != nil {
			restarts = fmt.Sprintf("%d", *r.Status.Restarts)
		}
		if err := setRow(f, sheetWorkloads, row,
			r.Namespace, r.Name, r.Status.Phase, r.Status.Ready, restarts, string(a.Criticality)); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeChangesSheet(f *excelize.File, r *Report) error {
	if _, err := f.NewSheet(sheetChanges); err != nil {
		return err
	}
	if err := setRow(f, sheetChanges, 1, "Severity", "Type", "Kind", "Namespace", "Name", "Detail"); err != nil {
		return err
	}
	if r.Changes == nil {
		return nil
	}

	for i, c := range r.Changes.Changes {
		if err := setRow(f, sheetChanges, i+2,
			string(c.Severity), string(c.Type), c.Kind.String(), c.Namespace, c.Name, c.Detail); err != nil {
			return err
		}
	}
	return nil
}
