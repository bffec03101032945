/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindSnapshot, true},
		{KindChangeSet, true},
		{KindReport, true},
		{Kind("Bogus"), false},
		{Kind(""), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.IsValid(), "kind %q", tt.kind)
	}
}

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindSnapshot),
		WithAPIVersion("chief/v1"),
		WithMetadata("cluster", "prod-east"),
	)
	require.NotNil(t, h)
	assert.Equal(t, KindSnapshot, h.Kind)
	assert.Equal(t, "chief/v1", h.APIVersion)
	assert.Equal(t, "prod-east", h.Metadata["cluster"])
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindChangeSet, "chief/v1", "v1.2.3")

	assert.Equal(t, KindChangeSet, h.Kind)
	assert.Equal(t, "chief/v1", h.APIVersion)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])
	assert.NotEmpty(t, h.Metadata["timestamp"])
}
