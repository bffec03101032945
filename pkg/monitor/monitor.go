/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/cp4i-tools/chief/pkg/defaults"
	"github.com/cp4i-tools/chief/pkg/errors"
)

var watchRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chief_watch_runs_total",
		Help: "Total number of watch-loop collection runs",
	},
	[]string{"status"},
)

// Runner executes one collection and comparison cycle.
type Runner func(ctx context.Context) error

// Monitor repeatedly invokes a Runner on an interval. A rate limiter
// enforces a minimum gap between run starts even when the interval is
// misconfigured below it, so a tight loop can never hammer the cluster.
type Monitor struct {
	// Interval is the gap between run starts; zero means the default.
	Interval time.Duration

	// MinGap is the enforced floor between run starts; zero means the
	// default.
	MinGap time.Duration

	// MaxRuns stops the loop after this many runs; zero means run until
	// the context is canceled.
	MaxRuns int

	// Run is the cycle to execute. Required.
	Run Runner
}

// Start runs the loop until the context is canceled or MaxRuns is
// reached. A failing run is logged and the loop continues; transient
// cluster trouble is exactly what the watch exists to observe.
func (m *Monitor) Start(ctx context.Context) error {
	if m.Run == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "monitor requires a runner")
	}

	interval := m.Interval
	if interval <= 0 {
		interval = defaults.WatchInterval
	}
	minGap := m.MinGap
	if minGap <= 0 {
		minGap = defaults.WatchMinGap
	}

	limiter := rate.NewLimiter(rate.Every(minGap), 1)
	slog.Info("watch started", "interval", interval.String(), "minGap", minGap.String(), "maxRuns", m.MaxRuns)

	for runs := 0; ; {
		if err := limiter.Wait(ctx); err != nil {
			return ctx.Err()
		}

		started := time.Now()
		if err := m.Run(ctx); err != nil {
			watchRunsTotal.WithLabelValues("error").Inc()
			slog.Error("watch run failed", "run", runs+1, "error", err)
		} else {
			watchRunsTotal.WithLabelValues("success").Inc()
		}

		runs++
		if m.MaxRuns > 0 && runs >= m.MaxRuns {
			slog.Info("watch finished", "runs", runs)
			return nil
		}

		// Sleep out the remainder of the interval; the limiter already
		// guarantees the floor.
		wait := interval - time.Since(started)
		if wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
}
