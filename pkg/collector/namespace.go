/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"fmt"
	"log/slog"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/cp4i-tools/chief/pkg/resource"
)

// NamespaceCollector captures namespaces through the typed API.
type NamespaceCollector struct {
	Clientset kubernetes.Interface
}

// Name identifies the collector.
func (c *NamespaceCollector) Name() string { return "namespaces" }

// Collect lists namespaces and converts them to records.
func (c *NamespaceCollector) Collect(ctx context.Context) ([]resource.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	namespaces, err := c.Clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	records := make([]resource.Record, 0, len(namespaces.Items))
	for i := range namespaces.Items {
		ns := &namespaces.Items[i]
		records = append(records, resource.Record{
			Kind:              resource.KindNamespace,
			Name:              ns.Name,
			Labels:            ns.Labels,
			CreationTimestamp: ns.CreationTimestamp.Time,
			Status: resource.Status{
				Phase: string(ns.Status.Phase),
			},
		})
	}

	slog.Debug("collected namespaces", "count", len(records))
	return records, nil
}
