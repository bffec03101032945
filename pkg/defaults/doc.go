/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults centralizes timeout, interval, and policy constants
// shared across chief components.
package defaults
