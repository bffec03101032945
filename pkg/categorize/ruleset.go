/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package categorize

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cp4i-tools/chief/pkg/errors"
	"github.com/cp4i-tools/chief/pkg/resource"
)

//go:embed rules.yaml
var defaultRules []byte

// Matcher holds the pattern fields of one rule. Every non-empty field is a
// regular expression matched case-insensitively and anchored at the start
// of the value; all populated fields must match for the rule to fire.
type Matcher struct {
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`

	// Labels maps label keys to value patterns. An empty pattern matches
	// on key presence alone.
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Rule binds a matcher to the value it assigns on its axis.
type Rule struct {
	Name  string  `json:"name,omitempty" yaml:"name,omitempty"`
	Value string  `json:"value" yaml:"value"`
	Match Matcher `json:"match" yaml:"match"`
}

// Ruleset is the on-disk rule document, one ordered rule list per axis.
type Ruleset struct {
	Licensing   []Rule `json:"licensing,omitempty" yaml:"licensing,omitempty"`
	Criticality []Rule `json:"criticality,omitempty" yaml:"criticality,omitempty"`
	Workload    []Rule `json:"workload,omitempty" yaml:"workload,omitempty"`
}

type compiledRule struct {
	name      string
	value     string
	kind      *regexp.Regexp
	namespace *regexp.Regexp
	rname     *regexp.Regexp
	labels    map[string]*regexp.Regexp
}

func (cr *compiledRule) matches(r *resource.Record) bool {
	if cr.kind != nil && !cr.kind.MatchString(r.Kind.String()) {
		return false
	}
	if cr.namespace != nil && !cr.namespace.MatchString(r.Namespace) {
		return false
	}
	if cr.rname != nil && !cr.rname.MatchString(r.Name) {
		return false
	}
	for key, pattern := range cr.labels {
		value, ok := r.Labels[key]
		if !ok {
			return false
		}
		if pattern != nil && !pattern.MatchString(value) {
			return false
		}
	}
	return true
}

// compilePattern anchors at the start of the value and ignores case, the
// same prefix-match semantics the rule files were written for.
func compilePattern(p string) (*regexp.Regexp, error) {
	if p == "" {
		return nil, nil
	}
	return regexp.Compile("(?i)^(?:" + p + ")")
}

func compileRule(axis string, r Rule) (compiledRule, error) {
	cr := compiledRule{name: r.Name, value: r.Value}
	if strings.TrimSpace(r.Value) == "" {
		return cr, fmt.Errorf("rule %q on axis %s has no value", r.Name, axis)
	}

	var err error
	if cr.kind, err = compilePattern(r.Match.Kind); err != nil {
		return cr, fmt.Errorf("rule %q kind pattern: %w", r.Name, err)
	}
	if cr.namespace, err = compilePattern(r.Match.Namespace); err != nil {
		return cr, fmt.Errorf("rule %q namespace pattern: %w", r.Name, err)
	}
	if cr.rname, err = compilePattern(r.Match.Name); err != nil {
		return cr, fmt.Errorf("rule %q name pattern: %w", r.Name, err)
	}
	if len(r.Match.Labels) > 0 {
		cr.labels = make(map[string]*regexp.Regexp, len(r.Match.Labels))
		for key, pattern := range r.Match.Labels {
			re, err := compilePattern(pattern)
			if err != nil {
				return cr, fmt.Errorf("rule %q label %s pattern: %w", r.Name, key, err)
			}
			cr.labels[key] = re
		}
	}
	return cr, nil
}

// Compile builds a Categorizer from the ruleset. A malformed rule is
// skipped with a single warning; the remaining rules stay in force.
func Compile(rs *Ruleset) *Categorizer {
	c := &Categorizer{}
	c.licensing = compileAxis("licensing", rs.Licensing)
	c.criticality = compileAxis("criticality", rs.Criticality)
	c.workload = compileAxis("workload", rs.Workload)
	return c
}

func compileAxis(axis string, rules []Rule) []compiledRule {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr, err := compileRule(axis, r)
		if err != nil {
			slog.Warn("skipping malformed categorization rule", "axis", axis, "rule", r.Name, "error", err)
			continue
		}
		compiled = append(compiled, cr)
	}
	return compiled
}

// Load parses a YAML ruleset document and compiles it.
func Load(data []byte) (*Categorizer, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse ruleset", err)
	}
	return Compile(&rs), nil
}

// LoadFile reads and compiles a ruleset from path.
func LoadFile(path string) (*Categorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, "failed to read ruleset file", err)
	}
	return Load(data)
}

// Default returns the categorizer built from the embedded CP4I ruleset.
func Default() *Categorizer {
	c, err := Load(defaultRules)
	if err != nil {
		// The embedded ruleset is validated by tests; a parse failure here
		// is a build defect.
		panic(err)
	}
	return c
}
