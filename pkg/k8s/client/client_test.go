/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kubeconfigFixture = `
apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://api.example.com:6443
  name: test
contexts:
- context:
    cluster: test
    user: test
  name: test
current-context: test
users:
- name: test
  user:
    token: fixture
`

func writeKubeconfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte(kubeconfigFixture), 0o600))
	return path
}

func TestBuildKubeClientFromPath(t *testing.T) {
	path := writeKubeconfig(t)

	client, config, err := BuildKubeClient(path)
	require.NoError(t, err)
	require.NotNil(t, client)
	require.NotNil(t, config)
	assert.Equal(t, "https://api.example.com:6443", config.Host)
}

func TestBuildKubeClientFromEnv(t *testing.T) {
	t.Setenv("KUBECONFIG", writeKubeconfig(t))

	client, config, err := BuildKubeClient("")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "https://api.example.com:6443", config.Host)
}

func TestBuildKubeClientMissingFile(t *testing.T) {
	_, _, err := BuildKubeClient(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestGetDynamicClient(t *testing.T) {
	path := writeKubeconfig(t)
	_, config, err := BuildKubeClient(path)
	require.NoError(t, err)

	dyn, err := GetDynamicClient(config)
	require.NoError(t, err)
	assert.NotNil(t, dyn)
}
