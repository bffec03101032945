/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package monitor drives the continuous watch loop: capture a snapshot,
// compare it against the previous one, report, sleep, repeat.
package monitor
