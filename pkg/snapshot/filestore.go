/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cp4i-tools/chief/pkg/errors"
	"github.com/cp4i-tools/chief/pkg/serializer"
)

// fileTimeLayout is lexicographically sortable, so file names double as a
// collection-time ordering.
const fileTimeLayout = "20060102T150405Z"

// FileStore persists each snapshot as one JSON file under a per-cluster
// subdirectory of Dir. File names embed the collection timestamp and the
// snapshot ID.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to create store directory", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the snapshot to its cluster directory.
func (s *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	start := time.Now()
	defer func() {
		storeOperationDuration.WithLabelValues("file", "save").Observe(time.Since(start).Seconds())
	}()

	clusterDir := filepath.Join(s.dir, sanitizeClusterID(snap.ClusterID))
	if err := os.MkdirAll(clusterDir, 0o755); err != nil {
		storeOperationTotal.WithLabelValues("file", "save", "error").Inc()
		return errors.Wrap(errors.ErrCodeUnavailable, "failed to create cluster directory", err)
	}

	// The snapshot ID suffix keeps captures within the same second from
	// overwriting each other.
	name := fmt.Sprintf("snapshot-%s-%s.json", snap.CollectedAt.UTC().Format(fileTimeLayout), snap.ID)
	path := filepath.Join(clusterDir, name)

	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
	defer w.Close()
	if err := w.Serialize(ctx, snap); err != nil {
		storeOperationTotal.WithLabelValues("file", "save", "error").Inc()
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}

	storeOperationTotal.WithLabelValues("file", "save", "success").Inc()
	slog.Debug("snapshot saved", "path", path, "resources", len(snap.Resources))
	return nil
}

// Load returns up to n of the most recent snapshots for the cluster,
// ordered oldest to newest. A missing cluster directory yields an empty
// slice, not an error.
func (s *FileStore) Load(ctx context.Context, clusterID string, n int) ([]*Snapshot, error) {
	start := time.Now()
	defer func() {
		storeOperationDuration.WithLabelValues("file", "load").Observe(time.Since(start).Seconds())
	}()

	clusterDir := filepath.Join(s.dir, sanitizeClusterID(clusterID))
	entries, err := os.ReadDir(clusterDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		storeOperationTotal.WithLabelValues("file", "load", "error").Inc()
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read store directory", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), "snapshot-") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}

	// Timestamped names sort chronologically; keep the newest n.
	sort.Strings(names)
	if n > 0 && len(names) > n {
		names = names[len(names)-n:]
	}

	snaps := make([]*Snapshot, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap, err := s.read(filepath.Join(clusterDir, name))
		if err != nil {
			// A corrupt file should not hide the remaining history.
			slog.Warn("skipping unreadable snapshot", "file", name, "error", err)
			continue
		}
		snaps = append(snaps, snap)
	}

	storeOperationTotal.WithLabelValues("file", "load", "success").Inc()
	return snaps, nil
}

func (s *FileStore) read(path string) (*Snapshot, error) {
	r, err := serializer.NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var snap Snapshot
	if err := r.Deserialize(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Clusters returns the identities of all clusters with at least one
// snapshot, sorted. Identities round-trip through sanitizeClusterID, so
// the returned names are valid Load arguments.
func (s *FileStore) Clusters(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read store directory", err)
	}

	var clusters []string
	for _, e := range entries {
		if e.IsDir() {
			clusters = append(clusters, e.Name())
		}
	}
	sort.Strings(clusters)
	return clusters, nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

// sanitizeClusterID maps a cluster identity to a safe directory name.
func sanitizeClusterID(id string) string {
	if strings.TrimSpace(id) == "" {
		return "default"
	}
	replacer := strings.NewReplacer("/", "_", string(filepath.Separator), "_", ":", "_", " ", "_")
	return replacer.Replace(id)
}
