/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package snapshot

import (
	"context"
	"strings"
)

// SQLiteURIScheme is the store location prefix selecting the SQLite store.
const SQLiteURIScheme = "sqlite://"

// Store persists and retrieves snapshots. The diff engine requires at
// least two snapshots to produce a non-trivial change-set; Load with fewer
// available returns what exists without error, since a first run has
// nothing to compare against.
type Store interface {
	// Save persists the snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Load returns up to n of the most recent snapshots for the cluster,
	// ordered oldest to newest.
	Load(ctx context.Context, clusterID string, n int) ([]*Snapshot, error)

	// Clusters returns the identities of all clusters with at least one
	// snapshot, sorted.
	Clusters(ctx context.Context) ([]string, error)

	// Close releases store resources.
	Close() error
}

// Open creates a Store from a location string: "sqlite://PATH" opens a
// SQLite-backed store, anything else is treated as a directory for the
// file-based store.
func Open(location string) (Store, error) {
	if path, ok := strings.CutPrefix(location, SQLiteURIScheme); ok {
		return OpenSQLiteStore(path)
	}
	return NewFileStore(location)
}
