/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/cp4i-tools/chief/pkg/collector"
	"github.com/cp4i-tools/chief/pkg/defaults"
	"github.com/cp4i-tools/chief/pkg/errors"
	"github.com/cp4i-tools/chief/pkg/resource"
	"github.com/cp4i-tools/chief/pkg/snapshot"
)

// Snapshotter coordinates the collectors to capture one point-in-time
// snapshot. Collectors run in parallel; one failing collector fails the
// whole capture so a partial snapshot is never mistaken for cluster state.
type Snapshotter struct {
	// Version is the tool version stamped into the snapshot header.
	Version string

	// Factory creates the collectors. Required.
	Factory collector.Factory

	// Store receives the captured snapshot. Optional; nil means the
	// caller handles persistence.
	Store snapshot.Store

	// ClusterID overrides cluster identity discovery.
	ClusterID string

	// Clientset is used to discover cluster identity when ClusterID is
	// empty. Optional.
	Clientset kubernetes.Interface

	// Timeout bounds one capture run; zero means the default.
	Timeout time.Duration
}

// Capture runs all collectors, assembles the snapshot, and saves it to the
// store when one is configured.
func (s *Snapshotter) Capture(ctx context.Context) (*snapshot.Snapshot, error) {
	if s.Factory == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "snapshotter requires a collector factory")
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaults.CollectorTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		captureDuration.Observe(time.Since(start).Seconds())
	}()

	clusterID := s.clusterID(ctx)
	snap := snapshot.New(clusterID, s.Version)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for _, c := range collector.All(s.Factory) {
		g.Go(func() error {
			collectorStart := time.Now()
			defer func() {
				collectorDuration.WithLabelValues(c.Name()).Observe(time.Since(collectorStart).Seconds())
			}()

			records, err := c.Collect(gctx)
			if err != nil {
				slog.Error("collector failed", "collector", c.Name(), "error", err)
				return fmt.Errorf("collector %s: %w", c.Name(), err)
			}

			mu.Lock()
			snap.Resources = append(snap.Resources, records...)
			mu.Unlock()

			slog.Debug("collector finished", "collector", c.Name(), "records", len(records))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		captureTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	captureTotal.WithLabelValues("success").Inc()
	captureResourceCount.Set(float64(len(snap.Resources)))
	slog.Info("snapshot captured",
		"cluster", snap.ClusterID,
		"resources", len(snap.Resources),
		"duration", time.Since(start).Round(time.Millisecond).String())

	if s.Store != nil {
		if err := s.Store.Save(ctx, snap); err != nil {
			return nil, fmt.Errorf("failed to save snapshot: %w", err)
		}
	}
	return snap, nil
}

// clusterID resolves cluster identity: the explicit override, then the
// kube-system namespace UID, then "default". The UID is stable for the
// cluster's lifetime and needs no extra permissions.
func (s *Snapshotter) clusterID(ctx context.Context) string {
	if s.ClusterID != "" {
		return s.ClusterID
	}
	if s.Clientset != nil {
		ns, err := s.Clientset.CoreV1().Namespaces().Get(ctx, metav1.NamespaceSystem, metav1.GetOptions{})
		if err == nil && ns.UID != "" {
			return string(ns.UID)
		}
		slog.Debug("cluster identity discovery failed, using default", "error", err)
	}
	return "default"
}

// CountByKind is a convenience view over a captured snapshot for log and
// report summaries.
func CountByKind(snap *snapshot.Snapshot) map[resource.Kind]int {
	return snap.CountByKind()
}
