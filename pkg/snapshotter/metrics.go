/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	captureDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chief_snapshot_capture_duration_seconds",
			Help:    "Time taken to capture a complete cluster snapshot",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	captureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chief_snapshot_capture_total",
			Help: "Total number of snapshot capture attempts",
		},
		[]string{"status"},
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chief_snapshot_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"collector"},
	)

	captureResourceCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chief_snapshot_resources",
			Help: "Number of resources in the last captured snapshot",
		},
	)
)
