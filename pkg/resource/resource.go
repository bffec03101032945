/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package resource

import (
	"fmt"
	"time"
)

// Kind represents the type of a captured cluster object.
type Kind string

// Supported resource kinds.
const (
	KindPod          Kind = "Pod"
	KindOperator     Kind = "Operator"
	KindNamespace    Kind = "Namespace"
	KindRoute        Kind = "Route"
	KindKafkaTopic   Kind = "KafkaTopic"
	KindEventStreams Kind = "EventStreamsInstance"
	KindNode         Kind = "Node"
)

// Kinds is the list of all supported resource kinds.
var Kinds = []Kind{
	KindPod,
	KindOperator,
	KindNamespace,
	KindRoute,
	KindKafkaTopic,
	KindEventStreams,
	KindNode,
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a string into a Kind. Returns the Kind and true if
// parsing succeeds, or empty Kind and false if the string is invalid.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// ClusterScoped reports whether the kind has no namespace.
func (k Kind) ClusterScoped() bool {
	switch k {
	case KindNode, KindNamespace:
		return true
	default:
		return false
	}
}

// Key is the identity of a resource across snapshots. Two records in
// different snapshots describe the same live object if and only if their
// keys are equal; records are never matched by content similarity.
type Key struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Name      string `json:"name" yaml:"name"`
}

// String renders the key as kind/namespace/name. Cluster-scoped kinds have
// an empty namespace segment.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Kind, k.Namespace, k.Name)
}

// Record is one typed cluster object captured in a snapshot.
// Only the fields tracked for its kind are populated in Status; absent
// optional fields are represented as nil pointers so the diff engine can
// distinguish "not collected" from zero.
type Record struct {
	Kind              Kind              `json:"kind" yaml:"kind"`
	Namespace         string            `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Name              string            `json:"name" yaml:"name"`
	Labels            map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	CreationTimestamp time.Time         `json:"creationTimestamp,omitempty" yaml:"creationTimestamp,omitempty"`
	Status            Status            `json:"status" yaml:"status"`
	Requests          Requests          `json:"requests,omitempty" yaml:"requests,omitempty"`
}

// Status holds the kind-specific state fields tracked for diffing.
type Status struct {
	// Phase is the lifecycle phase (pod phase, operator CSV phase,
	// namespace phase, EventStreams status).
	Phase string `json:"phase,omitempty" yaml:"phase,omitempty"`

	// Ready is the readiness summary: "2/2" for pods, "True"/"False" for
	// nodes.
	Ready string `json:"ready,omitempty" yaml:"ready,omitempty"`

	// Restarts is the cumulative container restart count (pods only).
	Restarts *int `json:"restarts,omitempty" yaml:"restarts,omitempty"`

	// Version is the installed version (operators, nodes kubelet).
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Partitions and Replicas track Kafka topic configuration.
	Partitions *int `json:"partitions,omitempty" yaml:"partitions,omitempty"`
	Replicas   *int `json:"replicas,omitempty" yaml:"replicas,omitempty"`

	// URL is the external endpoint (routes, EventStreams bootstrap server).
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Requests holds resource requests aggregated over the object's containers.
// Used by the categorizer for VPC accounting; zero values mean unknown.
type Requests struct {
	CPUCores    float64 `json:"cpuCores,omitempty" yaml:"cpuCores,omitempty"`
	MemoryBytes int64   `json:"memoryBytes,omitempty" yaml:"memoryBytes,omitempty"`
}

// Key returns the identity key of the record.
func (r *Record) Key() Key {
	return Key{Kind: r.Kind, Namespace: r.Namespace, Name: r.Name}
}

// IntPtr returns a pointer to v. Convenience for building Status fields.
func IntPtr(v int) *int {
	return &v
}
