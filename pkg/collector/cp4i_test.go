/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynfake "k8s.io/client-go/dynamic/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/cp4i-tools/chief/pkg/resource"
)

func kafkaTopicObject(ns, name string, partitions, replicas int64) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "eventstreams.ibm.com/v1beta2",
		"kind":       "KafkaTopic",
		"metadata": map[string]any{
			"namespace": ns,
			"name":      name,
		},
		"spec": map[string]any{
			"partitions": partitions,
			"replicas":   replicas,
		},
	}}
}

func csvObject(ns, name, display, version, phase string) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "operators.coreos.com/v1alpha1",
		"kind":       "ClusterServiceVersion",
		"metadata": map[string]any{
			"namespace": ns,
			"name":      name,
		},
		"spec": map[string]any{
			"displayName": display,
			"version":     version,
		},
		"status": map[string]any{
			"phase": phase,
		},
	}}
}

func newDynamicFake(objs ...runtime.Object) *dynfake.FakeDynamicClient {
	scheme := runtime.NewScheme()
	listKinds := map[schema.GroupVersionResource]string{
		csvGVR:          "ClusterServiceVersionList",
		routeGVR:        "RouteList",
		kafkaTopicGVR:   "KafkaTopicList",
		eventStreamsGVR: "EventStreamsList",
	}
	// Seed objects through the tracker under the collector's GVR: the
	// constructor guesses the plural from the kind, which is wrong for
	// kinds already ending in "s" (EventStreams -> eventstreamses).
	gvrForKind := map[string]schema.GroupVersionResource{
		"ClusterServiceVersion": csvGVR,
		"Route":                 routeGVR,
		"KafkaTopic":            kafkaTopicGVR,
		"EventStreams":          eventStreamsGVR,
	}
	dyn := dynfake.NewSimpleDynamicClientWithCustomListKinds(scheme, listKinds)
	for _, obj := range objs {
		u := obj.(*unstructured.Unstructured)
		gvr, ok := gvrForKind[u.GetKind()]
		if !ok {
			panic("newDynamicFake: no GVR registered for kind " + u.GetKind())
		}
		if err := dyn.Tracker().Create(gvr, u, u.GetNamespace()); err != nil {
			panic(err)
		}
	}
	return dyn
}

func TestKafkaTopicCollector(t *testing.T) {
	dyn := newDynamicFake(kafkaTopicObject("cp4i", "orders.raw", 12, 3))
	c := NewKafkaTopicCollector(dyn, nil)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, resource.KindKafkaTopic, r.Kind)
	assert.Equal(t, "orders.raw", r.Name)
	require.NotNil(t, r.Status.Partitions)
	assert.Equal(t, 12, *r.Status.Partitions)
	require.NotNil(t, r.Status.Replicas)
	assert.Equal(t, 3, *r.Status.Replicas)
}

func TestOperatorCollectorUsesDisplayName(t *testing.T) {
	dyn := newDynamicFake(csvObject("openshift-operators", "ibm-mq.v2.4.0", "IBM MQ", "2.4.0", "Succeeded"))
	c := NewOperatorCollector(dyn, nil)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, resource.KindOperator, records[0].Kind)
	assert.Equal(t, "IBM MQ", records[0].Name)
	assert.Equal(t, "2.4.0", records[0].Status.Version)
	assert.Equal(t, "Succeeded", records[0].Status.Phase)
}

func TestOperatorCollectorFallsBackToCSVName(t *testing.T) {
	obj := csvObject("openshift-operators", "ibm-eventstreams.v3.3.1", "", "3.3.1", "Succeeded")
	c := NewOperatorCollector(newDynamicFake(obj), nil)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	// Version suffix stripped from the CSV name.
	assert.Equal(t, "ibm-eventstreams", records[0].Name)
}

func TestRouteCollectorBuildsURL(t *testing.T) {
	route := &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "route.openshift.io/v1",
		"kind":       "Route",
		"metadata":   map[string]any{"namespace": "cp4i", "name": "console"},
		"spec": map[string]any{
			"host": "console.apps.example.com",
			"tls":  map[string]any{"termination": "reencrypt"},
		},
	}}
	c := NewRouteCollector(newDynamicFake(route), nil)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://console.apps.example.com", records[0].Status.URL)
}

func eventStreamsObject(ns, name, phase, version string, listeners []any) *unstructured.Unstructured {
	status := map[string]any{"phase": phase}
	if listeners != nil {
		status["kafkaListeners"] = listeners
	}
	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "eventstreams.ibm.com/v1beta2",
		"kind":       "EventStreams",
		"metadata":   map[string]any{"namespace": ns, "name": name},
		"spec":       map[string]any{"version": version},
		"status":     status,
	}}
}

func TestEventStreamsCollectorPrefersExternalBootstrap(t *testing.T) {
	es := eventStreamsObject("cp4i", "es-prod", "Ready", "11.2.0", []any{
		map[string]any{"type": "plain", "bootstrapServers": "es-prod-kafka-bootstrap.cp4i.svc:9092"},
		map[string]any{"type": "external", "bootstrapServers": "es-prod-kafka-bootstrap-cp4i.apps.example.com:443"},
	})
	c := NewEventStreamsCollector(newDynamicFake(es), nil)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, resource.KindEventStreams, r.Kind)
	assert.Equal(t, "Ready", r.Status.Phase)
	assert.Equal(t, "11.2.0", r.Status.Version)
	assert.Equal(t, "es-prod-kafka-bootstrap-cp4i.apps.example.com:443", r.Status.URL)
}

func TestEventStreamsCollectorFallsBackToFirstListener(t *testing.T) {
	es := eventStreamsObject("cp4i", "es-dev", "Ready", "11.2.0", []any{
		map[string]any{"type": "plain", "bootstrapServers": "es-dev-kafka-bootstrap.cp4i.svc:9092"},
	})
	c := NewEventStreamsCollector(newDynamicFake(es), nil)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "es-dev-kafka-bootstrap.cp4i.svc:9092", records[0].Status.URL)
}

func TestEventStreamsCollectorWithoutListenerStatus(t *testing.T) {
	es := eventStreamsObject("cp4i", "es-new", "Pending", "11.2.0", nil)
	c := NewEventStreamsCollector(newDynamicFake(es), nil)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Status.URL)
}

func TestDynamicCollectorDegradesWhenCRDAbsent(t *testing.T) {
	dyn := newDynamicFake()
	dyn.PrependReactor("list", "eventstreams", func(action k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewNotFound(
			schema.GroupResource{Group: eventStreamsGVR.Group, Resource: eventStreamsGVR.Resource}, "")
	})
	c := NewEventStreamsCollector(dyn, nil)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
