/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"Pod", KindPod, true},
		{"KafkaTopic", KindKafkaTopic, true},
		{"EventStreamsInstance", KindEventStreams, true},
		{"pod", "", false},
		{"", "", false},
		{"Deployment", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.wantOK, ok, "ParseKind(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseKind(%q)", tt.in)
	}
}

func TestClusterScoped(t *testing.T) {
	assert.True(t, KindNode.ClusterScoped())
	assert.True(t, KindNamespace.ClusterScoped())
	assert.False(t, KindPod.ClusterScoped())
	assert.False(t, KindKafkaTopic.ClusterScoped())
}

func TestKeyString(t *testing.T) {
	k := Key{Kind: KindPod, Namespace: "ns1", Name: "api-1"}
	assert.Equal(t, "Pod/ns1/api-1", k.String())

	n := Key{Kind: KindNode, Name: "worker-0"}
	assert.Equal(t, "Node//worker-0", n.String())
}

func TestRecordKeyStable(t *testing.T) {
	r := Record{Kind: KindKafkaTopic, Namespace: "es", Name: "orders.raw"}
	assert.Equal(t, r.Key(), r.Key())
	assert.Equal(t, Key{Kind: KindKafkaTopic, Namespace: "es", Name: "orders.raw"}, r.Key())
}

func TestRecordJSONRoundTrip(t *testing.T) {
	in := Record{
		Kind:      KindPod,
		Namespace: "cp4i",
		Name:      "es-kafka-0",
		Labels:    map[string]string{"app": "kafka"},
		Status: Status{
			Phase:    "Running",
			Ready:    "2/2",
			Restarts: IntPtr(3),
		},
		Requests: Requests{CPUCores: 1.5, MemoryBytes: 2 << 30},
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out Record
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	// Absent optional fields stay absent, not zero.
	var sparse Record
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"Node","name":"w0","status":{"ready":"True"}}`), &sparse))
	assert.Nil(t, sparse.Status.Restarts)
	assert.Nil(t, sparse.Status.Partitions)
}
