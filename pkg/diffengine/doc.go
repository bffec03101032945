/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package diffengine compares two cluster snapshots and classifies every
// detected difference by change type (Added, Deleted, Modified, Restarted)
// and severity (Critical, Important, Informational).
//
// Comparison is identity-based: records are matched across snapshots by
// (kind, namespace, name) and never by content similarity. The engine is
// pure; it reads the two snapshots and a Config and produces a ChangeSet
// without touching the cluster or the store.
package diffengine
