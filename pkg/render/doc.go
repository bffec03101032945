/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package render turns change-sets and reports into human-facing output:
// plain-text console tables, a standalone HTML dashboard, and an Excel
// workbook for license and operations reviews.
package render
