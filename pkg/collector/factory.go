/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreatePodCollector() Collector
	CreateNodeCollector() Collector
	CreateNamespaceCollector() Collector
	CreateOperatorCollector() Collector
	CreateRouteCollector() Collector
	CreateKafkaTopicCollector() Collector
	CreateEventStreamsCollector() Collector
}

// All returns every collector the factory can create, in a fixed order.
func All(f Factory) []Collector {
	return []Collector{
		f.CreatePodCollector(),
		f.CreateNodeCollector(),
		f.CreateNamespaceCollector(),
		f.CreateOperatorCollector(),
		f.CreateRouteCollector(),
		f.CreateKafkaTopicCollector(),
		f.CreateEventStreamsCollector(),
	}
}

// DefaultFactory creates collectors backed by live cluster clients.
type DefaultFactory struct {
	// Clientset serves the core kinds (pods, nodes, namespaces).
	Clientset kubernetes.Interface

	// Dynamic serves the CRD-backed kinds (operators, routes, Kafka
	// topics, EventStreams instances).
	Dynamic dynamic.Interface

	// Namespaces restricts namespaced collectors; empty means all.
	Namespaces []string
}

// NewDefaultFactory creates a factory over the given clients.
func NewDefaultFactory(clientset kubernetes.Interface, dyn dynamic.Interface, namespaces []string) *DefaultFactory {
	return &DefaultFactory{
		Clientset:  clientset,
		Dynamic:    dyn,
		Namespaces: namespaces,
	}
}

// CreatePodCollector creates the pod collector.
func (f *DefaultFactory) CreatePodCollector() Collector {
	return &PodCollector{Clientset: f.Clientset, Namespaces: f.Namespaces}
}

// CreateNodeCollector creates the node collector.
func (f *DefaultFactory) CreateNodeCollector() Collector {
	return &NodeCollector{Clientset: f.Clientset}
}

// CreateNamespaceCollector creates the namespace collector.
func (f *DefaultFactory) CreateNamespaceCollector() Collector {
	return &NamespaceCollector{Clientset: f.Clientset}
}

// CreateOperatorCollector creates the operator (CSV) collector.
func (f *DefaultFactory) CreateOperatorCollector() Collector {
	return NewOperatorCollector(f.Dynamic, f.Namespaces)
}

// CreateRouteCollector creates the OpenShift route collector.
func (f *DefaultFactory) CreateRouteCollector() Collector {
	return NewRouteCollector(f.Dynamic, f.Namespaces)
}

// CreateKafkaTopicCollector creates the Kafka topic collector.
func (f *DefaultFactory) CreateKafkaTopicCollector() Collector {
	return NewKafkaTopicCollector(f.Dynamic, f.Namespaces)
}

// CreateEventStreamsCollector creates the EventStreams instance collector.
func (f *DefaultFactory) CreateEventStreamsCollector() Collector {
	return NewEventStreamsCollector(f.Dynamic, f.Namespaces)
}
