/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package snapshot defines the immutable point-in-time capture of cluster
// resource state and the Store boundary that persists it.
//
// Two store backends are provided: a directory of per-cluster JSON files
// and a SQLite database. Both honor the same contract: Load returns the
// newest n snapshots for a cluster ordered oldest to newest, and returns
// whatever exists (possibly nothing) without error when history is short.
package snapshot
