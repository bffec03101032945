/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"sort"
	"time"

	"github.com/cp4i-tools/chief/pkg/categorize"
	"github.com/cp4i-tools/chief/pkg/diffengine"
	"github.com/cp4i-tools/chief/pkg/header"
	"github.com/cp4i-tools/chief/pkg/resource"
	"github.com/cp4i-tools/chief/pkg/snapshot"
)

// APIVersion is the schema version for rendered reports.
const APIVersion = "chief/v1"

// Report combines the latest snapshot, the change-set against its
// predecessor, and the categorization summary into one renderable
// artifact.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	ClusterID   string    `json:"clusterId" yaml:"clusterId"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`

	// ResourceCounts tallies the latest snapshot per kind.
	ResourceCounts map[resource.Kind]int `json:"resourceCounts" yaml:"resourceCounts"`

	// Changes is the change-set against the previous snapshot; empty when
	// no history exists yet.
	Changes *diffengine.ChangeSet `json:"changes,omitempty" yaml:"changes,omitempty"`

	// Categorization summarizes licensing, criticality, and workload
	// assignments over the latest snapshot.
	Categorization categorize.Summary `json:"categorization" yaml:"categorization"`
}

// NewReport assembles a report from the latest snapshot, its change-set,
// and the categorizer.
func NewReport(snap *snapshot.Snapshot, cs *diffengine.ChangeSet, cat *categorize.Categorizer, version string) *Report {
	r := &Report{
		ClusterID:      snap.ClusterID,
		GeneratedAt:    time.Now().UTC(),
		ResourceCounts: snap.CountByKind(),
		Changes:        cs,
		Categorization: cat.Summarize(snap),
	}
	r.Init(header.KindReport, APIVersion, version)
	return r
}

// sortedKinds orders the count map's keys for deterministic rendering.
func sortedKinds(counts map[resource.Kind]int) []resource.Kind {
	kinds := make([]resource.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
