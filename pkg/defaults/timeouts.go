/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package defaults

import "time"

// Collector timeouts for data collection operations.
const (
	// CollectorTimeout is the default timeout for one full collection run.
	CollectorTimeout = 120 * time.Second

	// CollectorK8sTimeout is the timeout for individual Kubernetes API
	// calls made by collectors.
	CollectorK8sTimeout = 30 * time.Second

	// OCCommandTimeout is the timeout for a single oc CLI invocation.
	OCCommandTimeout = 30 * time.Second
)

// Watch loop defaults for the monitor component.
const (
	// WatchInterval is the default gap between collection run starts.
	WatchInterval = 2 * time.Minute

	// WatchMinGap is the minimum enforced gap between collection starts,
	// even when a run finishes quickly or the interval is misconfigured.
	WatchMinGap = 10 * time.Second
)

// Snapshot store defaults.
const (
	// StoreHistoryDepth is how many snapshots Load retrieves by default.
	// The diff engine needs two; anything older is for audit browsing.
	StoreHistoryDepth = 2
)

// Severity policy defaults.
const (
	// RestartCriticalThreshold is the restart-count delta at or above
	// which a pod restart is classified Critical.
	RestartCriticalThreshold = 5
)
