/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cp4i-tools/chief/pkg/resource"
	"github.com/cp4i-tools/chief/pkg/snapshot"
)

func TestDefaultRulesetCompiles(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.NotEmpty(t, c.licensing)
	assert.NotEmpty(t, c.criticality)
	assert.NotEmpty(t, c.workload)
}

func TestCategorizeDefaults(t *testing.T) {
	c := Compile(&Ruleset{})
	a := c.Categorize(&resource.Record{Kind: resource.KindPod, Namespace: "sandbox", Name: "scratch"})

	assert.False(t, a.IsWorkload)
	assert.Equal(t, CriticalityOptional, a.Criticality)
	assert.Equal(t, LicensingUnlicensed, a.Licensing)
	assert.Equal(t, DefaultAssignment(), a)
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	rules := &Ruleset{
		Licensing: []Rule{
			{Name: "first", Value: "cp4i_licensed", Match: Matcher{Name: "mq-"}},
			{Name: "second", Value: "supporting", Match: Matcher{Name: "mq-server"}},
		},
	}
	c := Compile(rules)

	a := c.Categorize(&resource.Record{Kind: resource.KindPod, Name: "mq-server-0"})
	assert.Equal(t, LicensingCP4I, a.Licensing)
}

func TestCategorizeCaseInsensitiveAnchored(t *testing.T) {
	rules := &Ruleset{
		Criticality: []Rule{
			{Name: "mq", Value: "Critical", Match: Matcher{Name: "MQ-"}},
		},
	}
	c := Compile(rules)

	assert.Equal(t, CriticalityCritical,
		c.Categorize(&resource.Record{Name: "mq-server-0"}).Criticality)

	// Anchored at the start: a mid-string match does not count.
	assert.Equal(t, CriticalityOptional,
		c.Categorize(&resource.Record{Name: "ibm-mq-server-0"}).Criticality)
}

func TestCategorizeLabelPresenceAndValue(t *testing.T) {
	rules := &Ruleset{
		Licensing: []Rule{
			{Name: "product", Value: "cp4i_licensed", Match: Matcher{Labels: map[string]string{"icp4i.ibm.com/product": ""}}},
		},
		Workload: []Rule{
			{Name: "runtime", Value: "true", Match: Matcher{Labels: map[string]string{"app.kubernetes.io/component": "runtime"}}},
		},
	}
	c := Compile(rules)

	labelled := &resource.Record{
		Kind:   resource.KindPod,
		Name:   "ace-is-0",
		Labels: map[string]string{"icp4i.ibm.com/product": "appconnect", "app.kubernetes.io/component": "runtime"},
	}
	a := c.Categorize(labelled)
	assert.Equal(t, LicensingCP4I, a.Licensing)
	assert.True(t, a.IsWorkload)

	bare := &resource.Record{Kind: resource.KindPod, Name: "ace-is-0"}
	a = c.Categorize(bare)
	assert.Equal(t, LicensingUnlicensed, a.Licensing)
	assert.False(t, a.IsWorkload)
}

func TestCompileSkipsMalformedRules(t *testing.T) {
	rules := &Ruleset{
		Licensing: []Rule{
			{Name: "broken", Value: "supporting", Match: Matcher{Name: "(unclosed"}},
			{Name: "valueless", Match: Matcher{Name: "x"}},
			{Name: "good", Value: "cp4i_licensed", Match: Matcher{Namespace: "cp4i"}},
		},
	}
	c := Compile(rules)

	require.Len(t, c.licensing, 1)
	a := c.Categorize(&resource.Record{Kind: resource.KindPod, Namespace: "cp4i", Name: "p"})
	assert.Equal(t, LicensingCP4I, a.Licensing)
}

func TestCategorizeIsPure(t *testing.T) {
	c := Default()
	r := &resource.Record{
		Kind:      resource.KindPod,
		Namespace: "cp4i",
		Name:      "mq-server-0",
		Labels:    map[string]string{"icp4i.ibm.com/product": "mq"},
	}

	first := c.Categorize(r)
	second := c.Categorize(r)
	assert.Equal(t, first, second)
}

func TestDefaultRulesetCP4IAssignments(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		record   resource.Record
		expected Assignment
	}{
		{
			name: "mq pod in cp4i namespace",
			record: resource.Record{
				Kind: resource.KindPod, Namespace: "cp4i", Name: "mq-server-0",
				Labels: map[string]string{"icp4i.ibm.com/product": "mq"},
			},
			expected: Assignment{IsWorkload: true, Criticality: CriticalityCritical, Licensing: LicensingCP4I},
		},
		{
			name: "common services pod",
			record: resource.Record{
				Kind: resource.KindPod, Namespace: "ibm-common-services", Name: "auth-idp-1",
			},
			expected: Assignment{IsWorkload: false, Criticality: CriticalityImportant, Licensing: LicensingSupporting},
		},
		{
			name:     "kafka topic",
			record:   resource.Record{Kind: resource.KindKafkaTopic, Namespace: "cp4i", Name: "orders.raw"},
			expected: Assignment{IsWorkload: false, Criticality: CriticalityCritical, Licensing: LicensingUnlicensed},
		},
		{
			name:     "unrelated pod",
			record:   resource.Record{Kind: resource.KindPod, Namespace: "sandbox", Name: "scratch-1"},
			expected: Assignment{IsWorkload: false, Criticality: CriticalityOptional, Licensing: LicensingUnlicensed},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Categorize(&tc.record))
		})
	}
}

func TestSummarizeCountsAndVPCs(t *testing.T) {
	c := Default()

	snap := snapshot.New("prod-east", "test")
	snap.Resources = []resource.Record{
		{
			Kind: resource.KindPod, Namespace: "cp4i", Name: "mq-server-0",
			Requests: resource.Requests{CPUCores: 2},
		},
		{
			Kind: resource.KindPod, Namespace: "cp4i", Name: "ace-is-0",
			Requests: resource.Requests{CPUCores: 1.5},
		},
		{
			Kind: resource.KindPod, Namespace: "sandbox", Name: "scratch-1",
			Requests: resource.Requests{CPUCores: 4},
		},
		{Kind: resource.KindNamespace, Name: "cp4i"},
	}

	s := c.Summarize(snap)
	assert.Equal(t, 2, s.ByLicensing[LicensingCP4I])
	assert.Equal(t, 2, s.ByLicensing[LicensingUnlicensed])
	assert.Equal(t, 2, s.Workloads)
	// Only licensed pods contribute; the sandbox pod's 4 cores do not.
	assert.InDelta(t, 3.5, s.LicensedVPCs, 0.0001)

	assert.InDelta(t, 3.5, c.LicensedVPCs(snap.Resources), 0.0001)
}
