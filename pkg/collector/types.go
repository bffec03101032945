/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"

	"github.com/cp4i-tools/chief/pkg/resource"
)

// Collector captures one kind of cluster resource. Implementations must be
// safe for concurrent use; the snapshotter runs collectors in parallel.
type Collector interface {
	// Name identifies the collector in logs and metrics.
	Name() string

	// Collect returns the captured records. A collector whose backing API
	// is not installed on the cluster returns an empty slice, not an
	// error, so one missing CRD never fails the whole snapshot.
	Collect(ctx context.Context) ([]resource.Record, error)
}
