/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package snapshotter orchestrates parallel resource collection into a
// single cluster snapshot, resolving cluster identity and persisting the
// result to the configured store.
package snapshotter
