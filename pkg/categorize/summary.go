/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package categorize

import (
	"github.com/cp4i-tools/chief/pkg/resource"
	"github.com/cp4i-tools/chief/pkg/snapshot"
)

// Summary aggregates categorization outcomes over one snapshot.
type Summary struct {
	ByLicensing   map[Licensing]int   `json:"byLicensing" yaml:"byLicensing"`
	ByCriticality map[Criticality]int `json:"byCriticality" yaml:"byCriticality"`

	// Workloads is the number of resources categorized as workload.
	Workloads int `json:"workloads" yaml:"workloads"`

	// LicensedVPCs is the sum of CPU-core requests over cp4i_licensed
	// pods, the input to VPC entitlement accounting. Pods with unknown
	// requests contribute zero.
	LicensedVPCs float64 `json:"licensedVpcs" yaml:"licensedVpcs"`
}

// Summarize categorizes every record in the snapshot and aggregates the
// outcomes.
func (c *Categorizer) Summarize(snap *snapshot.Snapshot) Summary {
	s := Summary{
		ByLicensing:   make(map[Licensing]int),
		ByCriticality: make(map[Criticality]int),
	}
	for i := range snap.Resources {
		r := &snap.Resources[i]
		a := c.Categorize(r)
		s.ByLicensing[a.Licensing]++
		s.ByCriticality[a.Criticality]++
		if a.IsWorkload {
			s.Workloads++
		}
		if r.Kind == resource.KindPod && a.Licensing == LicensingCP4I {
			s.LicensedVPCs += r.Requests.CPUCores
		}
	}
	return s
}

// LicensedVPCs computes the VPC figure alone, without the full summary.
func (c *Categorizer) LicensedVPCs(records []resource.Record) float64 {
	var total float64
	for i := range records {
		r := &records[i]
		if r.Kind != resource.KindPod {
			continue
		}
		if c.Categorize(r).Licensing == LicensingCP4I {
			total += r.Requests.CPUCores
		}
	}
	return total
}
