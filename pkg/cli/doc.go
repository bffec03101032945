/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the chief command line interface: snapshot,
// diff, report, and watch.
package cli
