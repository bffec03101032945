/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chief_snapshot_store_operations_total",
			Help: "Total number of snapshot store operations",
		},
		[]string{"backend", "operation", "status"},
	)

	storeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chief_snapshot_store_operation_duration_seconds",
			Help:    "Time taken by snapshot store operations",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"backend", "operation"},
	)
)
