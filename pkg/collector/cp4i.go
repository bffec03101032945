/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"

	"github.com/cp4i-tools/chief/pkg/resource"
)

// GroupVersionResources for the CRD-backed kinds.
var (
	csvGVR = schema.GroupVersionResource{
		Group: "operators.coreos.com", Version: "v1alpha1", Resource: "clusterserviceversions",
	}
	routeGVR = schema.GroupVersionResource{
		Group: "route.openshift.io", Version: "v1", Resource: "routes",
	}
	kafkaTopicGVR = schema.GroupVersionResource{
		Group: "eventstreams.ibm.com", Version: "v1beta2", Resource: "kafkatopics",
	}
	eventStreamsGVR = schema.GroupVersionResource{
		Group: "eventstreams.ibm.com", Version: "v1beta2", Resource: "eventstreams",
	}
)

// dynamicCollector lists one CRD-backed kind through the dynamic client.
// When the CRD is not installed on the cluster it degrades to an empty
// result instead of failing the snapshot.
type dynamicCollector struct {
	name       string
	client     dynamic.Interface
	gvr        schema.GroupVersionResource
	namespaces []string
	convert    func(*unstructured.Unstructured) resource.Record
}

// Name identifies the collector.
func (c *dynamicCollector) Name() string { return c.name }

// Collect lists the resource in the configured namespaces (all when none
// given).
func (c *dynamicCollector) Collect(ctx context.Context) ([]resource.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	namespaces := c.namespaces
	if len(namespaces) == 0 {
		namespaces = []string{metav1.NamespaceAll}
	}

	var records []resource.Record
	for _, ns := range namespaces {
		list, err := c.client.Resource(c.gvr).Namespace(ns).List(ctx, metav1.ListOptions{})
		if err != nil {
			if crdAbsent(err) {
				slog.Debug("resource API not installed, skipping", "collector", c.name, "gvr", c.gvr.String())
				return nil, nil
			}
			return nil, fmt.Errorf("failed to list %s in %q: %w", c.gvr.Resource, ns, err)
		}
		for i := range list.Items {
			records = append(records, c.convert(&list.Items[i]))
		}
	}

	slog.Debug("collected resources", "collector", c.name, "count", len(records))
	return records, nil
}

// crdAbsent reports whether the error means the resource API does not
// exist on this cluster, as opposed to a transient failure.
func crdAbsent(err error) bool {
	return apierrors.IsNotFound(err) || meta.IsNoMatchError(err)
}

// operatorRecord converts a ClusterServiceVersion to an operator record.
func operatorRecord(obj *unstructured.Unstructured) resource.Record {
	phase, _, _ := unstructured.NestedString(obj.Object, "status", "phase")
	version, _, _ := unstructured.NestedString(obj.Object, "spec", "version")
	name, _, _ := unstructured.NestedString(obj.Object, "spec", "displayName")
	if name == "" {
		// CSV names embed the version; the display name is the stable
		// identity.
		name = strings.SplitN(obj.GetName(), ".", 2)[0]
	}
	return resource.Record{
		Kind:              resource.KindOperator,
		Namespace:         obj.GetNamespace(),
		Name:              name,
		Labels:            obj.GetLabels(),
		CreationTimestamp: obj.GetCreationTimestamp().Time,
		Status: resource.Status{
			Phase:   phase,
			Version: version,
		},
	}
}

// routeRecord converts an OpenShift route to a record with its external
// URL.
func routeRecord(obj *unstructured.Unstructured) resource.Record {
	host, _, _ := unstructured.NestedString(obj.Object, "spec", "host")
	url := host
	if url != "" {
		scheme := "http"
		if tls, _, _ := unstructured.NestedMap(obj.Object, "spec", "tls"); tls != nil {
			scheme = "https"
		}
		url = scheme + "://" + host
	}
	return resource.Record{
		Kind:              resource.KindRoute,
		Namespace:         obj.GetNamespace(),
		Name:              obj.GetName(),
		Labels:            obj.GetLabels(),
		CreationTimestamp: obj.GetCreationTimestamp().Time,
		Status: resource.Status{
			URL: url,
		},
	}
}

// kafkaTopicRecord converts a KafkaTopic to a record with its partition
// and replica configuration.
func kafkaTopicRecord(obj *unstructured.Unstructured) resource.Record {
	status := resource.Status{}
	if partitions, ok, _ := unstructured.NestedInt64(obj.Object, "spec", "partitions"); ok {
		status.Partitions = resource.IntPtr(int(partitions))
	}
	if replicas, ok, _ := unstructured.NestedInt64(obj.Object, "spec", "replicas"); ok {
		status.Replicas = resource.IntPtr(int(replicas))
	}
	return resource.Record{
		Kind:              resource.KindKafkaTopic,
		Namespace:         obj.GetNamespace(),
		Name:              obj.GetName(),
		Labels:            obj.GetLabels(),
		CreationTimestamp: obj.GetCreationTimestamp().Time,
		Status:            status,
	}
}

// eventStreamsRecord converts an EventStreams instance to a record,
// including the Kafka bootstrap address clients connect to.
func eventStreamsRecord(obj *unstructured.Unstructured) resource.Record {
	phase, _, _ := unstructured.NestedString(obj.Object, "status", "phase")
	version, _, _ := unstructured.NestedString(obj.Object, "spec", "version")
	return resource.Record{
		Kind:              resource.KindEventStreams,
		Namespace:         obj.GetNamespace(),
		Name:              obj.GetName(),
		Labels:            obj.GetLabels(),
		CreationTimestamp: obj.GetCreationTimestamp().Time,
		Status: resource.Status{
			Phase:   phase,
			Version: version,
			URL:     bootstrapAddress(obj),
		},
	}
}

// bootstrapAddress picks the Kafka bootstrap address from the instance's
// listener status, preferring the external listener over internal ones.
func bootstrapAddress(obj *unstructured.Unstructured) string {
	listeners, ok, _ := unstructured.NestedSlice(obj.Object, "status", "kafkaListeners")
	if !ok {
		return ""
	}

	first := ""
	for _, l := range listeners {
		listener, ok := l.(map[string]any)
		if !ok {
			continue
		}
		addr, _ := listener["bootstrapServers"].(string)
		if addr == "" {
			continue
		}
		if t, _ := listener["type"].(string); t == "external" {
			return addr
		}
		if first == "" {
			first = addr
		}
	}
	return first
}

// NewOperatorCollector captures installed operators from their
// ClusterServiceVersions.
func NewOperatorCollector(dyn dynamic.Interface, namespaces []string) Collector {
	return &dynamicCollector{
		name:       "operators",
		client:     dyn,
		gvr:        csvGVR,
		namespaces: namespaces,
		convert:    operatorRecord,
	}
}

// NewRouteCollector captures OpenShift routes and their external URLs.
func NewRouteCollector(dyn dynamic.Interface, namespaces []string) Collector {
	return &dynamicCollector{
		name:       "routes",
		client:     dyn,
		gvr:        routeGVR,
		namespaces: namespaces,
		convert:    routeRecord,
	}
}

// NewKafkaTopicCollector captures Kafka topics with their partition and
// replica configuration.
func NewKafkaTopicCollector(dyn dynamic.Interface, namespaces []string) Collector {
	return &dynamicCollector{
		name:       "kafkatopics",
		client:     dyn,
		gvr:        kafkaTopicGVR,
		namespaces: namespaces,
		convert:    kafkaTopicRecord,
	}
}

// NewEventStreamsCollector captures EventStreams instances.
func NewEventStreamsCollector(dyn dynamic.Interface, namespaces []string) Collector {
	return &dynamicCollector{
		name:       "eventstreams",
		client:     dyn,
		gvr:        eventStreamsGVR,
		namespaces: namespaces,
		convert:    eventStreamsRecord,
	}
}
