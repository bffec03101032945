/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package diffengine

import (
	"strings"

	"github.com/cp4i-tools/chief/pkg/resource"
)

// podFailurePhases are pod phases and waiting reasons that indicate the
// workload is broken rather than transitioning.
var podFailurePhases = map[string]bool{
	"Failed":           true,
	"Unknown":          true,
	"CrashLoopBackOff": true,
	"ImagePullBackOff": true,
	"ErrImagePull":     true,
	"Error":            true,
}

// classify assigns the severity tier for a change in a single pass,
// highest matching tier wins. The after record is nil for deletions.
func classify(c *Change, after *resource.Record, cfg Config) Severity {
	if isCritical(c, after, cfg) {
		return SeverityCritical
	}
	if isImportant(c, cfg) {
		return SeverityImportant
	}
	return SeverityInformational
}

func isCritical(c *Change, after *resource.Record, cfg Config) bool {
	// Node leaving Ready is a cluster-capacity event.
	if c.Kind == resource.KindNode && c.Type == Modified && after != nil {
		if strings.EqualFold(after.Status.Ready, "False") || strings.EqualFold(after.Status.Ready, "NotReady") {
			return true
		}
	}

	if c.Kind != resource.KindPod {
		return false
	}
	if c.Type == Restarted && c.RestartDelta >= cfg.RestartCriticalThreshold {
		return true
	}
	// Pod entering a failure phase.
	if (c.Type == Modified || c.Type == Restarted) && after != nil && podFailurePhases[after.Status.Phase] {
		return true
	}
	return false
}

func isImportant(c *Change, cfg Config) bool {
	// CP4I-relevant kinds: every change is at least important.
	if cfg.importantKind(c.Kind) {
		return true
	}
	switch c.Kind {
	case resource.KindPod:
		// Lifecycle events, sub-threshold restarts, and anything in a
		// watched namespace.
		if c.Type == Added || c.Type == Deleted || c.Type == Restarted {
			return true
		}
		return cfg.watchedNamespace(c.Namespace)
	case resource.KindNode:
		// Node arrivals and departures change cluster capacity.
		return c.Type == Added || c.Type == Deleted
	case resource.KindNamespace:
		return cfg.watchedNamespace(c.Name)
	default:
		return false
	}
}
