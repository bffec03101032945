/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "2.4.1", want: Version{Major: 2, Minor: 4, Patch: 1, Precision: 3}},
		{in: "v1.29.4", want: Version{Major: 1, Minor: 29, Patch: 4, Precision: 3}},
		{in: "3.3", want: Version{Major: 3, Minor: 3, Precision: 2}},
		{in: "7", want: Version{Major: 7, Precision: 1}},
		{in: "1.29.4-eks-3025e55", want: Version{Major: 1, Minor: 29, Patch: 4, Precision: 3, Extras: "-eks-3025e55"}},
		{in: "1.28.0-gke.1337000", want: Version{Major: 1, Minor: 28, Precision: 3, Extras: "-gke.1337000"}},
		{in: "", wantErr: true},
		{in: "1.2.3.4", wantErr: true},
		{in: "1.x", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompare(t *testing.T) {
	newer, err := Parse("2.4.1")
	require.NoError(t, err)
	older, err := Parse("2.4.0")
	require.NoError(t, err)

	assert.Equal(t, 1, newer.Compare(older))
	assert.Equal(t, -1, older.Compare(newer))
	assert.Equal(t, 0, newer.Compare(newer))
	assert.True(t, newer.IsNewer(older))
	assert.False(t, older.IsNewer(newer))
}

func TestComparePrecision(t *testing.T) {
	short, err := Parse("2.4")
	require.NoError(t, err)
	long, err := Parse("2.4.9")
	require.NoError(t, err)

	// Only shared components count.
	assert.Equal(t, 0, short.Compare(long))
}

func TestCompareIgnoresExtras(t *testing.T) {
	a, err := Parse("1.29.4-eks-3025e55")
	require.NoError(t, err)
	b, err := Parse("1.29.4")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Compare(b))
}
