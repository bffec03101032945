/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package categorize assigns captured cluster resources to licensing,
// criticality, and workload buckets using an ordered pattern ruleset.
//
// Rules are regular expressions over kind, namespace, name, and labels,
// matched case-insensitively and anchored at the start of the value. Axes
// are independent and first match wins within an axis. The package ships
// an embedded default ruleset tuned for CP4I clusters; callers may load
// their own from YAML.
package categorize
