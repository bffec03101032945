/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities for the chief
// console components.
//
// It wraps the standard library slog package with chief-specific defaults:
// JSON output to stderr, environment-based level configuration (LOG_LEVEL),
// module/version context on every record, and source location tracking for
// debug logs.
//
// Typical usage:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("chief", version)
//	    slog.Info("snapshot collected", "resources", n)
//	}
//
// The LOG_LEVEL environment variable controls verbosity (DEBUG, INFO,
// WARN, ERROR); unset defaults to INFO.
package logging
