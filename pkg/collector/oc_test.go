/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cp4i-tools/chief/pkg/errors"
	"github.com/cp4i-tools/chief/pkg/resource"
)

const ocPodListJSON = `{
  "apiVersion": "v1",
  "kind": "List",
  "items": [
    {
      "metadata": {"namespace": "cp4i", "name": "mq-server-0"},
      "spec": {"containers": [{"name": "server"}]},
      "status": {
        "phase": "Running",
        "containerStatuses": [{"name": "server", "ready": true, "restartCount": 4}]
      }
    }
  ]
}`

const ocTopicListJSON = `{
  "apiVersion": "eventstreams.ibm.com/v1beta2",
  "kind": "KafkaTopicList",
  "items": [
    {
      "metadata": {"namespace": "cp4i", "name": "orders.raw"},
      "spec": {"partitions": 12, "replicas": 3}
    }
  ]
}`

func fixtureRunner(t *testing.T, wantArg, payload string) ocRunner {
	return func(ctx context.Context, binary string, args ...string) ([]byte, error) {
		t.Helper()
		assert.Equal(t, DefaultOCBinary, binary)
		assert.Contains(t, strings.Join(args, " "), wantArg)
		return []byte(payload), nil
	}
}

func TestOCPodCollector(t *testing.T) {
	c := &OCPodCollector{run: fixtureRunner(t, "get pods -A -o json", ocPodListJSON)}

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, resource.KindPod, r.Kind)
	assert.Equal(t, "mq-server-0", r.Name)
	assert.Equal(t, "Running", r.Status.Phase)
	assert.Equal(t, "1/1", r.Status.Ready)
	require.NotNil(t, r.Status.Restarts)
	assert.Equal(t, 4, *r.Status.Restarts)
}

func TestOCPodCollectorNamespaceScoped(t *testing.T) {
	c := &OCPodCollector{
		Namespaces: []string{"cp4i"},
		run:        fixtureRunner(t, "get pods -n cp4i -o json", ocPodListJSON),
	}

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestOCUnstructuredCollector(t *testing.T) {
	f := &OCFactory{}
	c := f.CreateKafkaTopicCollector().(*ocUnstructuredCollector)
	c.run = fixtureRunner(t, "get kafkatopics -A -o json", ocTopicListJSON)

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Status.Partitions)
	assert.Equal(t, 12, *records[0].Status.Partitions)
}

func TestOCUnstructuredCollectorDegradesWhenTypeAbsent(t *testing.T) {
	f := &OCFactory{}
	c := f.CreateEventStreamsCollector().(*ocUnstructuredCollector)
	c.run = func(ctx context.Context, binary string, args ...string) ([]byte, error) {
		return nil, errors.New(errors.ErrCodeUnavailable,
			`error: the server doesn't have a resource type "eventstreams"`)
	}

	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOCCollectorPropagatesFailure(t *testing.T) {
	c := &OCNodeCollector{run: func(ctx context.Context, binary string, args ...string) ([]byte, error) {
		return nil, errors.New(errors.ErrCodeUnavailable, "oc get nodes failed: not logged in")
	}}

	_, err := c.Collect(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnavailable, errors.CodeOf(err))
}

func TestOCGetArgs(t *testing.T) {
	assert.Equal(t, [][]string{{"get", "pods", "-A", "-o", "json"}}, ocGetArgs("pods", nil))
	assert.Equal(t,
		[][]string{{"get", "pods", "-n", "a", "-o", "json"}, {"get", "pods", "-n", "b", "-o", "json"}},
		ocGetArgs("pods", []string{"a", "b"}))
}
