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

// PodCollector captures pods through the typed API.
type PodCollector struct {
	Clientset  kubernetes.Interface
	Namespaces []string
}

// Name identifies the collector.
func (c *PodCollector) Name() string { return "pods" }

// Collect lists pods in the configured namespaces (all when none given)
// and converts them to records.
func (c *PodCollector) Collect(ctx context.Context) ([]resource.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	namespaces := c.Namespaces
	if len(namespaces) == 0 {
		namespaces = []string{metav1.NamespaceAll}
	}

	var records []resource.Record
	for _, ns := range namespaces {
		pods, err := c.Clientset.CoreV1().Pods(ns).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to list pods in %q: %w", ns, err)
		}
		for i := range pods.Items {
			records = append(records, podRecord(&pods.Items[i]))
		}
	}

	slog.Debug("collected pods", "count", len(records))
	return records, nil
}

// podRecord converts a pod to a record, aggregating container status and
// requests.
func podRecord(pod *corev1.Pod) resource.Record {
	var (
		restarts int
		ready    int
	)
	for _, cs := range pod.Status.ContainerStatuses {
		restarts += int(cs.RestartCount)
		if cs.Ready {
			ready++
		}
	}

	var requests resource.Requests
	for _, container := range pod.Spec.Containers {
		if cpu, ok := container.Resources.Requests[corev1.ResourceCPU]; ok {
			requests.CPUCores += cpu.AsApproximateFloat64()
		}
		if mem, ok := container.Resources.Requests[corev1.ResourceMemory]; ok {
			requests.MemoryBytes += mem.Value()
		}
	}

	phase := string(pod.Status.Phase)
	// A waiting reason like CrashLoopBackOff is more telling than the
	// generic Running phase.
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.State.Waiting != nil && cs.State.Waiting.Reason != "" {
			phase = cs.State.Waiting.Reason
			break
		}
	}

	return resource.Record{
		Kind:              resource.KindPod,
		Namespace:         pod.Namespace,
		Name:              pod.Name,
		Labels:            pod.Labels,
		CreationTimestamp: pod.CreationTimestamp.Time,
		Status: resource.Status{
			Phase:    phase,
			Ready:    fmt.Sprintf("%d/%d", ready, len(pod.Spec.Containers)),
			Restarts: resource.IntPtr(restarts),
		},
		Requests: requests,
	}
}
