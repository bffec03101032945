/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package diffengine

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cp4i-tools/chief/pkg/header"
	"github.com/cp4i-tools/chief/pkg/resource"
	"github.com/cp4i-tools/chief/pkg/snapshot"
	"github.com/cp4i-tools/chief/pkg/version"
)

// Compare computes the change-set between two snapshots of the same
// cluster. Resources are matched by identity key only; a record present on
// one side and absent on the other is Added or Deleted, never paired by
// similarity. Output ordering is deterministic for identical inputs.
func Compare(prev, curr *snapshot.Snapshot, cfg Config) *ChangeSet {
	cs := newChangeSet(curr)
	if prev == nil || curr == nil {
		return cs
	}
	cs.ClusterID = curr.ClusterID
	cs.PreviousAt = prev.CollectedAt
	cs.CurrentAt = curr.CollectedAt

	prevIdx, prevDup := prev.Index()
	currIdx, currDup := curr.Index()
	for _, k := range prevDup {
		slog.Warn("duplicate resource key in older snapshot, keeping last record", "key", k.String())
	}
	for _, k := range currDup {
		slog.Warn("duplicate resource key in newer snapshot, keeping last record", "key", k.String())
	}

	changes := make([]Change, 0)

	for k, after := range currIdx {
		before, ok := prevIdx[k]
		if !ok {
			c := Change{
				Kind:      k.Kind,
				Namespace: k.Namespace,
				Name:      k.Name,
				Type:      Added,
				After:     summarizeStatus(after),
			}
			c.Severity = classify(&c, after, cfg)
			changes = append(changes, c)
			continue
		}
		if c, changed := compareRecord(before, after); changed {
			c.Severity = classify(&c, after, cfg)
			changes = append(changes, c)
		}
	}

	for k, before := range prevIdx {
		if _, ok := currIdx[k]; ok {
			continue
		}
		c := Change{
			Kind:      k.Kind,
			Namespace: k.Namespace,
			Name:      k.Name,
			Type:      Deleted,
			Before:    summarizeStatus(before),
		}
		c.Severity = classify(&c, nil, cfg)
		changes = append(changes, c)
	}

	sortChanges(changes)
	cs.Changes = changes
	cs.Counts = tally(changes)
	return cs
}

// CompareHistory compares the two most recent snapshots in a history
// ordered oldest to newest. Fewer than two snapshots yields an empty
// change-set, not an error.
func CompareHistory(snaps []*snapshot.Snapshot, cfg Config) *ChangeSet {
	if len(snaps) < 2 {
		var curr *snapshot.Snapshot
		if len(snaps) == 1 {
			curr = snaps[0]
		}
		cs := newChangeSet(curr)
		if curr != nil {
			cs.ClusterID = curr.ClusterID
			cs.CurrentAt = curr.CollectedAt
		}
		return cs
	}
	return Compare(snaps[len(snaps)-2], snaps[len(snaps)-1], cfg)
}

func newChangeSet(curr *snapshot.Snapshot) *ChangeSet {
	cs := &ChangeSet{Changes: make([]Change, 0)}
	version := ""
	if curr != nil {
		version = curr.Metadata["version"]
	}
	cs.Init(header.KindChangeSet, APIVersion, version)
	return cs
}

// compareRecord diffs the tracked status fields of one matched resource
// pair. A restart-count increase takes precedence over other field changes
// for the change type; the remaining field diffs still land in Detail.
// Optional fields absent on either side are skipped, never treated as a
// transition to or from zero.
func compareRecord(before, after *resource.Record) (Change, bool) {
	c := Change{
		Kind:      after.Kind,
		Namespace: after.Namespace,
		Name:      after.Name,
	}

	var restartDelta int
	if before.Status.Restarts != nil && after.Status.Restarts != nil {
		restartDelta = *after.Status.Restarts - *before.Status.Restarts
	}

	var details []string
	appendFieldDiff := func(field, b, a string) {
		if b == "" || a == "" || b == a {
			return
		}
		details = append(details, fmt.Sprintf("%s: %s -> %s", field, b, a))
	}
	appendIntDiff := func(field string, b, a *int) {
		if b == nil || a == nil || *b == *a {
			return
		}
		details = append(details, fmt.Sprintf("%s: %d -> %d", field, *b, *a))
	}

	appendFieldDiff("phase", before.Status.Phase, after.Status.Phase)
	appendFieldDiff("ready", before.Status.Ready, after.Status.Ready)
	if d := versionDiff(before.Status.Version, after.Status.Version); d != "" {
		details = append(details, d)
	}
	appendFieldDiff("url", before.Status.URL, after.Status.URL)
	appendIntDiff("partitions", before.Status.Partitions, after.Status.Partitions)
	appendIntDiff("replicas", before.Status.Replicas, after.Status.Replicas)

	if restartDelta > 0 {
		c.Type = Restarted
		c.RestartDelta = restartDelta
		detail := fmt.Sprintf("restarted %dx (total: %d)", restartDelta, *after.Status.Restarts)
		if len(details) > 0 {
			detail += "; " + strings.Join(details, "; ")
		}
		c.Detail = detail
	} else if len(details) > 0 {
		c.Type = Modified
		c.Detail = strings.Join(details, "; ")
	} else {
		return c, false
	}

	c.Before = summarizeStatus(before)
	c.After = summarizeStatus(after)
	return c, true
}

// versionDiff renders a version change, annotating the direction when
// both sides parse as semantic versions.
func versionDiff(b, a string) string {
	if b == "" || a == "" || b == a {
		return ""
	}
	detail := fmt.Sprintf("version: %s -> %s", b, a)
	bv, errB := version.Parse(b)
	av, errA := version.Parse(a)
	if errB == nil && errA == nil {
		switch {
		case av.IsNewer(bv):
			detail += " (upgraded)"
		case bv.IsNewer(av):
			detail += " (downgraded)"
		}
	}
	return detail
}

// summarizeStatus renders the populated status fields as a compact
// one-liner for the Before/After columns.
func summarizeStatus(r *resource.Record) string {
	var parts []string
	if r.Status.Phase != "" {
		parts = append(parts, "phase="+r.Status.Phase)
	}
	if r.Status.Ready != "" {
		parts = append(parts, "ready="+r.Status.Ready)
	}
	if r.Status.Restarts != nil {
		parts = append(parts, fmt.Sprintf("restarts=%d", *r.Status.Restarts))
	}
	if r.Status.Version != "" {
		parts = append(parts, "version="+r.Status.Version)
	}
	if r.Status.Partitions != nil {
		parts = append(parts, fmt.Sprintf("partitions=%d", *r.Status.Partitions))
	}
	if r.Status.Replicas != nil {
		parts = append(parts, fmt.Sprintf("replicas=%d", *r.Status.Replicas))
	}
	if r.Status.URL != "" {
		parts = append(parts, "url="+r.Status.URL)
	}
	return strings.Join(parts, " ")
}

// sortChanges orders by severity, then change type, then identity key so
// the same snapshot pair always renders identically.
func sortChanges(changes []Change) {
	sort.Slice(changes, func(i, j int) bool {
		a, b := &changes[i], &changes[j]
		if severityRank(a.Severity) != severityRank(b.Severity) {
			return severityRank(a.Severity) < severityRank(b.Severity)
		}
		if changeTypeRank(a.Type) != changeTypeRank(b.Type) {
			return changeTypeRank(a.Type) < changeTypeRank(b.Type)
		}
		return a.Key().String() < b.Key().String()
	})
}

func tally(changes []Change) Counts {
	var counts Counts
	for i := range changes {
		switch changes[i].Type {
		case Added:
			counts.Added++
		case Deleted:
			counts.Deleted++
		case Modified:
			counts.Modified++
		case Restarted:
			counts.Restarted++
		}
		switch changes[i].Severity {
		case SeverityCritical:
			counts.Critical++
		case SeverityImportant:
			counts.Important++
		default:
			counts.Informational++
		}
	}
	return counts
}
