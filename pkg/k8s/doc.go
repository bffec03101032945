/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package k8s groups Kubernetes cluster access for chief.
//
// The client sub-package builds clients with automatic authentication:
// kubeconfig discovery (KUBECONFIG, then ~/.kube/config) falling back to
// the in-cluster service account. A sync.Once singleton shares one client
// across the process so repeated commands never exhaust API server
// connections.
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return err
//	}
//
// CRD-backed kinds use the dynamic client built from the same config:
//
//	dyn, err := client.GetDynamicClient(config)
package k8s
