/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package categorize

import (
	"github.com/cp4i-tools/chief/pkg/resource"
)

// Licensing is the license-accounting bucket assigned to a resource.
type Licensing string

const (
	// LicensingCP4I marks resources whose CPU requests count toward CP4I
	// VPC entitlement.
	LicensingCP4I Licensing = "cp4i_licensed"
	// LicensingSupporting marks infrastructure that supports CP4I without
	// consuming entitlement.
	LicensingSupporting Licensing = "supporting"
	// LicensingUnlicensed is the default bucket.
	LicensingUnlicensed Licensing = "unlicensed"
)

// Criticality is the operational-importance tier assigned to a resource.
type Criticality string

const (
	CriticalityCritical  Criticality = "Critical"
	CriticalityImportant Criticality = "Important"
	// CriticalityOptional is the default tier.
	CriticalityOptional Criticality = "Optional"
)

// Assignment is the categorization outcome for one resource. Each axis is
// decided independently; axes a ruleset never matches keep their defaults.
type Assignment struct {
	// IsWorkload reports whether the resource runs customer workload
	// rather than platform plumbing. Defaults to false.
	IsWorkload bool `json:"isWorkload" yaml:"isWorkload"`

	// Criticality defaults to Optional.
	Criticality Criticality `json:"criticality" yaml:"criticality"`

	// Licensing defaults to unlicensed.
	Licensing Licensing `json:"licensing" yaml:"licensing"`
}

// DefaultAssignment is what a resource gets when no rule on any axis
// matches it.
func DefaultAssignment() Assignment {
	return Assignment{
		IsWorkload:  false,
		Criticality: CriticalityOptional,
		Licensing:   LicensingUnlicensed,
	}
}

// Categorizer assigns resources to licensing, criticality, and workload
// buckets by pattern rules. It is pure: Categorize reads the record and
// the compiled ruleset and has no other inputs or side effects, so the
// same record always yields the same assignment.
type Categorizer struct {
	licensing   []compiledRule
	criticality []compiledRule
	workload    []compiledRule
}

// Categorize resolves each axis independently. Within an axis rules are
// evaluated in declaration order and the first match wins; later rules for
// the same resource are not consulted.
func (c *Categorizer) Categorize(r *resource.Record) Assignment {
	a := DefaultAssignment()

	if rule, ok := firstMatch(c.licensing, r); ok {
		a.Licensing = Licensing(rule.value)
	}
	if rule, ok := firstMatch(c.criticality, r); ok {
		a.Criticality = Criticality(rule.value)
	}
	if rule, ok := firstMatch(c.workload, r); ok {
		a.IsWorkload = rule.value == "true"
	}
	return a
}

func firstMatch(rules []compiledRule, r *resource.Record) (*compiledRule, bool) {
	for i := range rules {
		if rules[i].matches(r) {
			return &rules[i], true
		}
	}
	return nil, false
}
