/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package client builds Kubernetes clients from kubeconfig or in-cluster
// configuration, with a cached singleton for connection reuse.
package client
