/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides utilities for serializing chief artifacts to
// various formats.
//
// The package supports three main output formats:
//   - JSON: machine-readable structured data with proper indentation
//   - YAML: human-readable configuration format
//   - Table: human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, changeSet); err != nil {
//		log.Fatal(err)
//	}
package serializer

import "context"

// Serializer is an interface for serializing artifacts. Implementations
// can serialize data to various formats such as JSON, YAML, or tables.
//
// The context parameter is used for cancellation and timeouts on
// implementations that perform slow I/O.
type Serializer interface {
	Serialize(ctx context.Context, artifact any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
