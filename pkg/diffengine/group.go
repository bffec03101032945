/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package diffengine

import (
	"sort"

	"github.com/cp4i-tools/chief/pkg/resource"
)

// SeverityOrder lists tiers from most to least severe, for rendering.
var SeverityOrder = []Severity{SeverityCritical, SeverityImportant, SeverityInformational}

// BySeverity groups the change-set's changes per severity tier. The
// projection copies change values and preserves the change-set's ordering
// within each group; the change-set itself is never mutated.
func BySeverity(cs *ChangeSet) map[Severity][]Change {
	groups := make(map[Severity][]Change)
	for _, c := range cs.Changes {
		groups[c.Severity] = append(groups[c.Severity], c)
	}
	return groups
}

// ByNamespace groups changes per namespace. Cluster-scoped resources land
// under the empty key.
func ByNamespace(cs *ChangeSet) map[string][]Change {
	groups := make(map[string][]Change)
	for _, c := range cs.Changes {
		groups[c.Namespace] = append(groups[c.Namespace], c)
	}
	return groups
}

// ByKind groups changes per resource kind.
func ByKind(cs *ChangeSet) map[resource.Kind][]Change {
	groups := make(map[resource.Kind][]Change)
	for _, c := range cs.Changes {
		groups[c.Kind] = append(groups[c.Kind], c)
	}
	return groups
}

// Namespaces returns the sorted list of namespaces present in the
// change-set, for deterministic section ordering in reports.
func Namespaces(cs *ChangeSet) []string {
	seen := make(map[string]bool)
	for _, c := range cs.Changes {
		seen[c.Namespace] = true
	}
	names := make([]string, 0, len(seen))
	for ns := range seen {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// KindsPresent returns the sorted list of kinds present in the change-set.
func KindsPresent(cs *ChangeSet) []resource.Kind {
	seen := make(map[resource.Kind]bool)
	for _, c := range cs.Changes {
		seen[c.Kind] = true
	}
	kinds := make([]resource.Kind, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
