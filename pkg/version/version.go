/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parsing failures.
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Version is a parsed semantic version as found on operators, EventStreams
// instances, and node kubelets. Build suffixes like "-eks-3025e55" are
// preserved in Extras but ignored for comparison.
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision is how many components the source string carried (1-3).
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras holds any suffix after the numeric components.
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String renders the significant components; Extras are not included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Parse parses "1", "1.2", "1.2.3", an optional "v" prefix, and trailing
// "-suffix" or "+metadata" which land in Extras.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	var v Version
	mainPart := s
	// A dash or plus directly after a digit starts the suffix; dots inside
	// the suffix (as in "-gke.1337000") must not confuse the split.
	for i, ch := range s {
		if (ch == '-' || ch == '+') && i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
			mainPart = s[:i]
			v.Extras = s[i:]
			break
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}
	for i, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}
	v.Precision = len(parts)
	return v, nil
}

// Compare returns -1, 0, or 1 as v is older than, equal to, or newer than
// other. Only components both versions carry are compared, so "2.4"
// equals "2.4.1" when the former has precision 2.
func (v Version) Compare(other Version) int {
	precision := min(v.Precision, other.Precision)
	if precision <= 0 {
		precision = 3
	}

	pairs := [3][2]int{{v.Major, other.Major}, {v.Minor, other.Minor}, {v.Patch, other.Patch}}
	for i := 0; i < precision; i++ {
		if pairs[i][0] < pairs[i][1] {
			return -1
		}
		if pairs[i][0] > pairs[i][1] {
			return 1
		}
	}
	return 0
}

// IsNewer reports whether v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}
