/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cp4i-tools/chief/pkg/errors"
	"github.com/cp4i-tools/chief/pkg/resource"
)

// SQLiteStore persists snapshots in a single SQLite database. Headers and
// identity columns are first-class for querying; resource records are
// stored as a JSON payload.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if necessary) a SQLite-backed store at
// dbPath.
func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to open snapshot database", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to initialize snapshot database", err)
	}
	return store, nil
}

// initialize creates the database schema.
func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		cluster_id TEXT NOT NULL,
		collected_at DATETIME NOT NULL,
		api_version TEXT NOT NULL,
		resources TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cluster_collected ON snapshots(cluster_id, collected_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save persists the snapshot.
func (s *SQLiteStore) Save(ctx context.Context, snap *Snapshot) error {
	start := time.Now()
	defer func() {
		storeOperationDuration.WithLabelValues("sqlite", "save").Observe(time.Since(start).Seconds())
	}()

	payload, err := json.Marshal(snap.Resources)
	if err != nil {
		storeOperationTotal.WithLabelValues("sqlite", "save", "error").Inc()
		return fmt.Errorf("failed to encode snapshot resources: %w", err)
	}

	query := `
		INSERT INTO snapshots (id, cluster_id, collected_at, api_version, resources)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query,
		snap.ID,
		snap.ClusterID,
		snap.CollectedAt.UTC(),
		snap.APIVersion,
		string(payload),
	); err != nil {
		storeOperationTotal.WithLabelValues("sqlite", "save", "error").Inc()
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	storeOperationTotal.WithLabelValues("sqlite", "save", "success").Inc()
	return nil
}

// Load returns up to n of the most recent snapshots for the cluster,
// ordered oldest to newest.
func (s *SQLiteStore) Load(ctx context.Context, clusterID string, n int) ([]*Snapshot, error) {
	start := time.Now()
	defer func() {
		storeOperationDuration.WithLabelValues("sqlite", "load").Observe(time.Since(start).Seconds())
	}()

	query := `
		SELECT id, cluster_id, collected_at, api_version, resources
		FROM snapshots
		WHERE cluster_id = ?
		ORDER BY collected_at DESC
	`
	args := []any{clusterID}
	if n > 0 {
		query += " LIMIT ?"
		args = append(args, n)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		storeOperationTotal.WithLabelValues("sqlite", "load", "error").Inc()
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*Snapshot
	for rows.Next() {
		var (
			snap    Snapshot
			payload string
		)
		if err := rows.Scan(&snap.ID, &snap.ClusterID, &snap.CollectedAt, &snap.APIVersion, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snap.Resources = make([]resource.Record, 0)
		if err := json.Unmarshal([]byte(payload), &snap.Resources); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot %s: %w", snap.ID, err)
		}
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query returns newest first; callers expect oldest to newest.
	for i, j := 0, len(snaps)-1; i < j; i, j = i+1, j-1 {
		snaps[i], snaps[j] = snaps[j], snaps[i]
	}

	storeOperationTotal.WithLabelValues("sqlite", "load", "success").Inc()
	return snaps, nil
}

// Clusters returns the identities of all clusters with at least one
// snapshot, sorted.
func (s *SQLiteStore) Clusters(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT cluster_id FROM snapshots ORDER BY cluster_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query clusters: %w", err)
	}
	defer rows.Close()

	var clusters []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan cluster row: %w", err)
		}
		clusters = append(clusters, id)
	}
	return clusters, rows.Err()
}

// Prune removes snapshots older than the retention window, returning the
// number deleted.
func (s *SQLiteStore) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE collected_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
