/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package collector captures cluster resources and converts them to
// snapshot records. Core kinds (pods, nodes, namespaces) come from the
// typed Kubernetes API; CP4I kinds (operators, routes, Kafka topics,
// EventStreams) come from the dynamic client and degrade gracefully when
// their CRDs are not installed. An oc CLI fallback factory covers
// environments with an authenticated session but no direct API config.
package collector
