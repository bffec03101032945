/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package snapshot

import (
	"time"

	"github.com/google/uuid"

	"github.com/cp4i-tools/chief/pkg/header"
	"github.com/cp4i-tools/chief/pkg/resource"
)

// APIVersion is the schema version for persisted snapshots.
const APIVersion = "chief/v1"

// Snapshot is an immutable point-in-time capture of cluster resource
// state. It is created once per collection run and never mutated after
// creation; the store persists it keyed by cluster identity and timestamp.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// ID uniquely identifies this collection run.
	ID string `json:"id" yaml:"id"`

	// ClusterID identifies the cluster the snapshot was taken from.
	ClusterID string `json:"clusterId" yaml:"clusterId"`

	// CollectedAt is the collection timestamp (UTC).
	CollectedAt time.Time `json:"collectedAt" yaml:"collectedAt"`

	// Resources contains the captured resource records.
	Resources []resource.Record `json:"resources" yaml:"resources"`
}

// New creates a Snapshot for the given cluster with an initialized header,
// a fresh ID, and the current UTC time as the collection timestamp.
func New(clusterID, version string) *Snapshot {
	s := &Snapshot{
		ID:          uuid.NewString(),
		ClusterID:   clusterID,
		CollectedAt: time.Now().UTC(),
		Resources:   make([]resource.Record, 0),
	}
	s.Init(header.KindSnapshot, APIVersion, version)
	return s
}

// Index builds an identity-keyed map over the snapshot's records. When two
// records collide on the same (kind, namespace, name) key the last-seen
// record wins; the returned collision list names the duplicated keys so the
// caller can log a data-collection warning.
func (s *Snapshot) Index() (map[resource.Key]*resource.Record, []resource.Key) {
	idx := make(map[resource.Key]*resource.Record, len(s.Resources))
	var collisions []resource.Key
	for i := range s.Resources {
		k := s.Resources[i].Key()
		if _, exists := idx[k]; exists {
			collisions = append(collisions, k)
		}
		idx[k] = &s.Resources[i]
	}
	return idx, collisions
}

// CountByKind tallies records per kind.
func (s *Snapshot) CountByKind() map[resource.Kind]int {
	counts := make(map[resource.Kind]int)
	for i := range s.Resources {
		counts[s.Resources[i].Kind]++
	}
	return counts
}
