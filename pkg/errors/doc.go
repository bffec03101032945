/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for chief components.
//
// StructuredError carries an ErrorCode for programmatic handling alongside
// a human-readable message and an optional wrapped cause, and integrates
// with the standard errors.Is/errors.As chain traversal.
package errors
