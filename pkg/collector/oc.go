/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/cp4i-tools/chief/pkg/defaults"
	"github.com/cp4i-tools/chief/pkg/errors"
	"github.com/cp4i-tools/chief/pkg/resource"
)

// DefaultOCBinary is the OpenShift CLI looked up on PATH.
const DefaultOCBinary = "oc"

// ocRunner executes the CLI and returns its stdout. Injectable for tests.
type ocRunner func(ctx context.Context, binary string, args ...string) ([]byte, error)

func runOC(ctx context.Context, binary string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.OCCommandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Wrap(errors.ErrCodeTimeout,
				fmt.Sprintf("%s %s timed out after %s", binary, strings.Join(args, " "), defaults.OCCommandTimeout), err)
		}
		return nil, errors.Wrap(errors.ErrCodeUnavailable,
			fmt.Sprintf("%s %s failed: %s", binary, strings.Join(args, " "), strings.TrimSpace(stderr.String())), err)
	}
	return stdout.Bytes(), nil
}

// ocGetArgs builds "get RESOURCE -o json" with namespace scoping.
func ocGetArgs(res string, namespaces []string) [][]string {
	if len(namespaces) == 0 {
		return [][]string{{"get", res, "-A", "-o", "json"}}
	}
	args := make([][]string, 0, len(namespaces))
	for _, ns := range namespaces {
		args = append(args, []string{"get", res, "-n", ns, "-o", "json"})
	}
	return args
}

// ocResourceAbsent matches the CLI's complaint for a kind whose CRD is not
// installed.
func ocResourceAbsent(err error) bool {
	return err != nil && strings.Contains(err.Error(), "doesn't have a resource type")
}

// OCPodCollector captures pods by shelling out to the OpenShift CLI.
// Fallback for environments where direct API access is not configured but
// an authenticated oc session exists.
type OCPodCollector struct {
	Binary     string
	Namespaces []string

	run ocRunner
}

// Name identifies the collector.
func (c *OCPodCollector) Name() string { return "pods" }

// Collect runs "oc get pods" and converts the JSON output.
func (c *OCPodCollector) Collect(ctx context.Context) ([]resource.Record, error) {
	var records []resource.Record
	for _, args := range ocGetArgs("pods", c.Namespaces) {
		out, err := c.runner()(ctx, c.binary(), args...)
		if err != nil {
			return nil, err
		}
		var list corev1.PodList
		if err := json.Unmarshal(out, &list); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to decode oc pod list", err)
		}
		for i := range list.Items {
			records = append(records, podRecord(&list.Items[i]))
		}
	}
	slog.Debug("collected pods via oc", "count", len(records))
	return records, nil
}

func (c *OCPodCollector) binary() string {
	if c.Binary == "" {
		return DefaultOCBinary
	}
	return c.Binary
}

func (c *OCPodCollector) runner() ocRunner {
	if c.run == nil {
		return runOC
	}
	return c.run
}

// OCNodeCollector captures nodes through the OpenShift CLI.
type OCNodeCollector struct {
	Binary string

	run ocRunner
}

// Name identifies the collector.
func (c *OCNodeCollector) Name() string { return "nodes" }

// Collect runs "oc get nodes" and converts the JSON output.
func (c *OCNodeCollector) Collect(ctx context.Context) ([]resource.Record, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultOCBinary
	}
	run := c.run
	if run == nil {
		run = runOC
	}

	out, err := run(ctx, binary, "get", "nodes", "-o", "json")
	if err != nil {
		return nil, err
	}
	var list corev1.NodeList
	if err := json.Unmarshal(out, &list); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to decode oc node list", err)
	}

	records := make([]resource.Record, 0, len(list.Items))
	for i := range list.Items {
		records = append(records, nodeRecord(&list.Items[i]))
	}
	return records, nil
}

// OCNamespaceCollector captures namespaces through the OpenShift CLI.
type OCNamespaceCollector struct {
	Binary string

	run ocRunner
}

// Name identifies the collector.
func (c *OCNamespaceCollector) Name() string { return "namespaces" }

// Collect runs "oc get namespaces" and converts the JSON output.
func (c *OCNamespaceCollector) Collect(ctx context.Context) ([]resource.Record, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultOCBinary
	}
	run := c.run
	if run == nil {
		run = runOC
	}

	out, err := run(ctx, binary, "get", "namespaces", "-o", "json")
	if err != nil {
		return nil, err
	}
	var list corev1.NamespaceList
	if err := json.Unmarshal(out, &list); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to decode oc namespace list", err)
	}

	records := make([]resource.Record, 0, len(list.Items))
	for i := range list.Items {
		ns := &list.Items[i]
		records = append(records, resource.Record{
			Kind:              resource.KindNamespace,
			Name:              ns.Name,
			Labels:            ns.Labels,
			CreationTimestamp: ns.CreationTimestamp.Time,
			Status:            resource.Status{Phase: string(ns.Status.Phase)},
		})
	}
	return records, nil
}

// ocUnstructuredCollector captures one CRD-backed kind through the CLI,
// reusing the dynamic converters. A missing resource type degrades to an
// empty result like its API-backed counterpart.
type ocUnstructuredCollector struct {
	name       string
	res        string
	binary     string
	namespaces []string
	convert    func(*unstructured.Unstructured) resource.Record

	run ocRunner
}

// Name identifies the collector.
func (c *ocUnstructuredCollector) Name() string { return c.name }

func (c *ocUnstructuredCollector) Collect(ctx context.Context) ([]resource.Record, error) {
	binary := c.binary
	if binary == "" {
		binary = DefaultOCBinary
	}
	run := c.run
	if run == nil {
		run = runOC
	}

	var records []resource.Record
	for _, args := range ocGetArgs(c.res, c.namespaces) {
		out, err := run(ctx, binary, args...)
		if err != nil {
			if ocResourceAbsent(err) {
				slog.Debug("resource type not installed, skipping", "collector", c.name, "resource", c.res)
				return nil, nil
			}
			return nil, err
		}
		var list struct {
			Items []map[string]any `json:"items"`
		}
		if err := json.Unmarshal(out, &list); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to decode oc %s list", c.res), err)
		}
		for _, item := range list.Items {
			records = append(records, c.convert(&unstructured.Unstructured{Object: item}))
		}
	}
	return records, nil
}

// OCFactory creates collectors that shell out to the OpenShift CLI instead
// of using the API clients.
type OCFactory struct {
	Binary     string
	Namespaces []string
}

// CreatePodCollector creates the CLI pod collector.
func (f *OCFactory) CreatePodCollector() Collector {
	return &OCPodCollector{Binary: f.Binary, Namespaces: f.Namespaces}
}

// CreateNodeCollector creates the CLI node collector.
func (f *OCFactory) CreateNodeCollector() Collector {
	return &OCNodeCollector{Binary: f.Binary}
}

// CreateNamespaceCollector creates the CLI namespace collector.
func (f *OCFactory) CreateNamespaceCollector() Collector {
	return &OCNamespaceCollector{Binary: f.Binary}
}

// CreateOperatorCollector creates the CLI operator collector.
func (f *OCFactory) CreateOperatorCollector() Collector {
	return &ocUnstructuredCollector{
		name: "operators", res: "clusterserviceversions",
		binary: f.Binary, namespaces: f.Namespaces, convert: operatorRecord,
	}
}

// CreateRouteCollector creates the CLI route collector.
func (f *OCFactory) CreateRouteCollector() Collector {
	return &ocUnstructuredCollector{
		name: "routes", res: "routes",
		binary: f.Binary, namespaces: f.Namespaces, convert: routeRecord,
	}
}

// CreateKafkaTopicCollector creates the CLI Kafka topic collector.
func (f *OCFactory) CreateKafkaTopicCollector() Collector {
	return &ocUnstructuredCollector{
		name: "kafkatopics", res: "kafkatopics",
		binary: f.Binary, namespaces: f.Namespaces, convert: kafkaTopicRecord,
	}
}

// CreateEventStreamsCollector creates the CLI EventStreams collector.
func (f *OCFactory) CreateEventStreamsCollector() Collector {
	return &ocUnstructuredCollector{
		name: "eventstreams", res: "eventstreams",
		binary: f.Binary, namespaces: f.Namespaces, convert: eventStreamsRecord,
	}
}
