/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file
// extension. Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from JSON or YAML
// sources. Close must be called to release resources when using
// NewFileReader; it is idempotent and a no-op for non-closeable sources.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader
// source. Returns an error for unknown formats and for FormatTable, which
// is write-only.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader opens the file at path and creates a Reader with the format
// inferred from the file extension.
func NewFileReader(path string) (*Reader, error) {
	format := FormatFromPath(path)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return NewReader(format, file)
}

// Deserialize decodes the input into target, which must be a pointer.
func (r *Reader) Deserialize(target any) error {
	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(target); err != nil {
			return fmt.Errorf("failed to deserialize JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(target); err != nil {
			return fmt.Errorf("failed to deserialize YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
	return nil
}

// Close releases the underlying source if it is closeable. Safe to call
// multiple times.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
