/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string            `json:"name" yaml:"name"`
	Count int               `json:"count" yaml:"count"`
	Tags  map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestWriterJSONRoundTrip(t *testing.T) {
	in := sample{Name: "es-kafka", Count: 3, Tags: map[string]string{"tier": "critical"}}

	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	require.NoError(t, w.Serialize(context.Background(), in))

	r, err := NewReader(FormatJSON, &buf)
	require.NoError(t, err)
	var out sample
	require.NoError(t, r.Deserialize(&out))
	assert.Equal(t, in, out)
}

func TestWriterYAMLRoundTrip(t *testing.T) {
	in := sample{Name: "orders.raw", Count: 12}

	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	require.NoError(t, w.Serialize(context.Background(), in))

	r, err := NewReader(FormatYAML, &buf)
	require.NoError(t, err)
	var out sample
	require.NoError(t, r.Deserialize(&out))
	assert.Equal(t, in, out)
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), sample{Name: "n", Count: 2}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Count")
}

func TestNewReaderRejectsTable(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"snap.json", FormatJSON},
		{"snap.YAML", FormatYAML},
		{"snap.yml", FormatYAML},
		{"report.txt", FormatTable},
		{"snap.bin", FormatJSON},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFromPath(tt.path), "path %q", tt.path)
	}
}

func TestFileWriterFallsBackToStdout(t *testing.T) {
	// Empty path means stdout; Close must be a no-op.
	w := NewFileWriterOrStdout(FormatJSON, "")
	assert.NoError(t, w.Close())
}

func TestFileWriterReaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.json")
	in := sample{Name: "mq-demo", Count: 1}

	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(context.Background(), in))
	require.NoError(t, w.Close())

	r, err := NewFileReader(path)
	require.NoError(t, err)
	defer r.Close()

	var out sample
	require.NoError(t, r.Deserialize(&out))
	assert.Equal(t, in, out)
}

func TestUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("bogus"), &buf)
	require.NoError(t, w.Serialize(context.Background(), sample{Name: "x"}))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}
