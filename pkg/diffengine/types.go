/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package diffengine

import (
	"time"

	"github.com/cp4i-tools/chief/pkg/header"
	"github.com/cp4i-tools/chief/pkg/resource"
)

// APIVersion is the schema version for rendered change-sets.
const APIVersion = "chief/v1"

// ChangeType classifies what happened to a resource between two snapshots.
type ChangeType string

const (
	// Added means the resource exists only in the newer snapshot.
	Added ChangeType = "Added"
	// Deleted means the resource exists only in the older snapshot.
	Deleted ChangeType = "Deleted"
	// Modified means a tracked status field differs between snapshots.
	Modified ChangeType = "Modified"
	// Restarted means a pod's cumulative restart count increased.
	Restarted ChangeType = "Restarted"
)

// Severity is the business-relevance tier assigned to a change.
type Severity string

const (
	// SeverityCritical marks changes needing immediate attention: nodes
	// going NotReady, pods crossing the restart threshold, pods entering a
	// failure phase.
	SeverityCritical Severity = "Critical"
	// SeverityImportant marks changes to CP4I-relevant resources and pod
	// lifecycle events below the critical bar.
	SeverityImportant Severity = "Important"
	// SeverityInformational marks everything else.
	SeverityInformational Severity = "Informational"
)

// severityRank orders tiers for sorting; lower is more severe.
func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityImportant:
		return 1
	default:
		return 2
	}
}

// changeTypeRank orders change types within a severity tier.
func changeTypeRank(t ChangeType) int {
	switch t {
	case Restarted:
		return 0
	case Modified:
		return 1
	case Added:
		return 2
	default:
		return 3
	}
}

// Change describes one detected difference between two snapshots.
// Derived, never persisted independently: it is recomputed from the two
// snapshots on demand.
type Change struct {
	Kind      resource.Kind `json:"kind" yaml:"kind"`
	Namespace string        `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Name      string        `json:"name" yaml:"name"`
	Type      ChangeType    `json:"changeType" yaml:"changeType"`
	Severity  Severity      `json:"severity" yaml:"severity"`

	// Before and After summarize the tracked state on each side; empty for
	// the absent side of Added/Deleted.
	Before string `json:"before,omitempty" yaml:"before,omitempty"`
	After  string `json:"after,omitempty" yaml:"after,omitempty"`

	// Detail is a human-readable one-liner, e.g. "restarted 6x (total: 8)".
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// RestartDelta is the restart-count increase for Restarted changes.
	RestartDelta int `json:"restartDelta,omitempty" yaml:"restartDelta,omitempty"`
}

// Key returns the identity key of the changed resource.
func (c *Change) Key() resource.Key {
	return resource.Key{Kind: c.Kind, Namespace: c.Namespace, Name: c.Name}
}

// Counts aggregates change types and severities across a change-set.
// Type counts are tallied independently of severity.
type Counts struct {
	Added    int `json:"added" yaml:"added"`
	Deleted  int `json:"deleted" yaml:"deleted"`
	Modified int `json:"modified" yaml:"modified"`

	// Restarted is counted separately from Modified.
	Restarted int `json:"restarted" yaml:"restarted"`

	Critical      int `json:"critical" yaml:"critical"`
	Important     int `json:"important" yaml:"important"`
	Informational int `json:"informational" yaml:"informational"`
}

// ChangeSet is the ordered collection of changes between one snapshot
// pair. Computed fresh per request; never cached.
type ChangeSet struct {
	header.Header `json:",inline" yaml:",inline"`

	ClusterID string `json:"clusterId,omitempty" yaml:"clusterId,omitempty"`

	// PreviousAt and CurrentAt are the two compared snapshot timestamps.
	PreviousAt time.Time `json:"previousAt,omitempty" yaml:"previousAt,omitempty"`
	CurrentAt  time.Time `json:"currentAt,omitempty" yaml:"currentAt,omitempty"`

	Changes []Change `json:"changes" yaml:"changes"`
	Counts  Counts   `json:"counts" yaml:"counts"`
}

// Empty reports whether the change-set contains no changes. A change-set
// computed from fewer than two snapshots is always empty.
func (cs *ChangeSet) Empty() bool {
	return len(cs.Changes) == 0
}

// Elapsed returns the duration between the two compared snapshots, or zero
// when either timestamp is missing.
func (cs *ChangeSet) Elapsed() time.Duration {
	if cs.PreviousAt.IsZero() || cs.CurrentAt.IsZero() {
		return 0
	}
	return cs.CurrentAt.Sub(cs.PreviousAt)
}
