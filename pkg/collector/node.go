/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/cp4i-tools/chief/pkg/resource"
)

// NodeCollector captures cluster nodes through the typed API.
type NodeCollector struct {
	Clientset kubernetes.Interface
}

// Name identifies the collector.
func (c *NodeCollector) Name() string { return "nodes" }

// Collect lists nodes and converts them to records. Ready reflects the
// node's Ready condition; Unknown when the condition is absent.
func (c *NodeCollector) Collect(ctx context.Context) ([]resource.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes, err := c.Clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	records := make([]resource.Record, 0, len(nodes.Items))
	for i := range nodes.Items {
		records = append(records, nodeRecord(&nodes.Items[i]))
	}

	slog.Debug("collected nodes", "count", len(records))
	return records, nil
}

func nodeRecord(node *corev1.Node) resource.Record {
	ready := "Unknown"
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			ready = string(cond.Status)
			break
		}
	}

	return resource.Record{
		Kind:              resource.KindNode,
		Name:              node.Name,
		Labels:            node.Labels,
		CreationTimestamp: node.CreationTimestamp.Time,
		Status: resource.Status{
			Ready:   ready,
			Version: node.Status.NodeInfo.KubeletVersion,
		},
	}
}
