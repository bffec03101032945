/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package diffengine

import (
	"strings"

	"github.com/cp4i-tools/chief/pkg/defaults"
	"github.com/cp4i-tools/chief/pkg/resource"
)

// Config tunes the severity policy. The zero value is not usable; start
// from DefaultConfig and override.
type Config struct {
	// RestartCriticalThreshold is the restart-count delta at or above which
	// a pod restart is escalated to critical.
	RestartCriticalThreshold int `json:"restartCriticalThreshold" yaml:"restartCriticalThreshold"`

	// ImportantKinds lists resource kinds whose every change is at least
	// important.
	ImportantKinds []resource.Kind `json:"importantKinds" yaml:"importantKinds"`

	// Namespaces lists namespaces (matched case-insensitively) whose pod
	// changes are at least important.
	Namespaces []string `json:"namespaces" yaml:"namespaces"`
}

// DefaultConfig returns the severity policy used when no overrides are
// given.
func DefaultConfig() Config {
	return Config{
		RestartCriticalThreshold: defaults.RestartCriticalThreshold,
		ImportantKinds: []resource.Kind{
			resource.KindOperator,
			resource.KindEventStreams,
			resource.KindKafkaTopic,
			resource.KindRoute,
		},
		Namespaces: []string{"cp4i", "ibm-common-services", "openshift-operators"},
	}
}

func (c Config) importantKind(k resource.Kind) bool {
	for _, ik := range c.ImportantKinds {
		if ik == k {
			return true
		}
	}
	return false
}

func (c Config) watchedNamespace(ns string) bool {
	for _, n := range c.Namespaces {
		if strings.EqualFold(n, ns) {
			return true
		}
	}
	return false
}
