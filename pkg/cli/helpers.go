/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cp4i-tools/chief/pkg/categorize"
	"github.com/cp4i-tools/chief/pkg/collector"
	"github.com/cp4i-tools/chief/pkg/errors"
	"github.com/cp4i-tools/chief/pkg/k8s/client"
	"github.com/cp4i-tools/chief/pkg/serializer"
	"github.com/cp4i-tools/chief/pkg/snapshot"
	"github.com/cp4i-tools/chief/pkg/snapshotter"
)

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(format string) (serializer.Format, error) {
	f := serializer.Format(format)
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)", format, serializer.SupportedFormats())
	}
	return f, nil
}

// openStore opens the snapshot store named by the --store flag.
func openStore(cmd *cli.Command) (snapshot.Store, error) {
	store, err := snapshot.Open(cmd.String("store"))
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	return store, nil
}

// loadRules compiles the categorization ruleset from --rules, or the
// built-in default when the flag is unset.
func loadRules(cmd *cli.Command) (*categorize.Categorizer, error) {
	path := cmd.String("rules")
	if path == "" {
		return categorize.Default(), nil
	}
	return categorize.LoadFile(path)
}

// resolveClusterID resolves the cluster identity for store reads. The
// --cluster-id flag wins; otherwise the store's own content decides: one
// cluster is unambiguous, an empty store falls back to the default
// identity, and more than one cluster requires the flag. This mirrors the
// discovery the snapshot command performs against the live cluster, so a
// flagless capture-then-diff sequence reads the history it just wrote.
func resolveClusterID(ctx context.Context, cmd *cli.Command, store snapshot.Store) (string, error) {
	if id := cmd.String("cluster-id"); id != "" {
		return id, nil
	}

	clusters, err := store.Clusters(ctx)
	if err != nil {
		return "", err
	}
	switch len(clusters) {
	case 0:
		return "default", nil
	case 1:
		return clusters[0], nil
	default:
		return "", errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("store holds snapshots for multiple clusters (%s), pass --cluster-id",
				strings.Join(clusters, ", ")))
	}
}

// buildSnapshotter wires the collector factory and cluster clients from
// command flags.
func buildSnapshotter(cmd *cli.Command, store snapshot.Store) (*snapshotter.Snapshotter, error) {
	s := &snapshotter.Snapshotter{
		Version:   version,
		Store:     store,
		ClusterID: cmd.String("cluster-id"),
	}

	if cmd.Bool("use-oc") {
		s.Factory = &collector.OCFactory{Namespaces: cmd.StringSlice("namespace")}
		return s, nil
	}

	clientset, config, err := client.BuildKubeClient(cmd.String("kubeconfig"))
	if err != nil {
		return nil, fmt.Errorf("failed to build cluster client: %w", err)
	}
	dyn, err := client.GetDynamicClient(config)
	if err != nil {
		return nil, err
	}

	s.Clientset = clientset
	s.Factory = collector.NewDefaultFactory(clientset, dyn, cmd.StringSlice("namespace"))
	return s, nil
}

// writeArtifact serializes an artifact to the --output destination in the
// --format encoding.
func writeArtifact(ctx context.Context, cmd *cli.Command, artifact any) error {
	format, err := parseOutputFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer w.Close()
	return w.Serialize(ctx, artifact)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// outWriter opens the --output destination for the non-serializer
// renderers (text, html, excel). Empty means stdout.
func outWriter(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return f, nil
}
