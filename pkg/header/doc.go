/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package header defines the common Kind/APIVersion/Metadata envelope
// embedded in every persisted chief artifact (snapshots, change-sets,
// reports).
package header
