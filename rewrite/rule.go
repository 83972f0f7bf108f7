// Package rewrite converts callback-style lambdas (an explicit handle
// completed or failed by method calls) into direct-value lambdas (a
// zero-parameter function that returns or throws). It is pure: every
// transformation builds a new call from shared pieces and never edits
// the input tree.
package rewrite

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Strategy selects which transformation a rule applies.
type Strategy string

const (
	// Callable rewrites a single-parameter lambda whose body completes
	// or fails a handle into a zero-parameter lambda that returns or
	// throws directly.
	Callable Strategy = "callable"
	// Supplier drops a single provably-unused parameter without
	// touching the body.
	Supplier Strategy = "supplier"
)

// Rule binds an operation name to a transformation strategy. For the
// callable strategy, Complete and Fail name the handle methods that
// signal completion and failure.
type Rule struct {
	Operation string   `yaml:"operation"`
	Strategy  Strategy `yaml:"strategy"`
	Complete  string   `yaml:"complete,omitempty"`
	Fail      string   `yaml:"fail,omitempty"`
}

type InvalidRuleError struct {
	Index  int
	Reason string
}

func (e InvalidRuleError) Error() string {
	return fmt.Sprintf("rule %d: %s", e.Index, e.Reason)
}

// LoadRules decodes a YAML rule list and validates it. Rules are
// immutable for the life of a run.
func LoadRules(src []byte) ([]Rule, error) {
	var rules []Rule
	if err := yaml.Unmarshal(src, &rules); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	return rules, Validate(rules)
}

// Validate checks a rule list. Operation names must be unique across
// rules so at most one rule can apply to a given call.
func Validate(rules []Rule) error {
	var err error
	seen := make(map[string]bool)
	for i, r := range rules {
		if r.Operation == "" {
			err = errors.Join(err, InvalidRuleError{Index: i, Reason: "empty operation name"})
		}
		if seen[r.Operation] {
			err = errors.Join(err, InvalidRuleError{Index: i, Reason: fmt.Sprintf("duplicate operation name %q", r.Operation)})
		}
		seen[r.Operation] = true
		switch r.Strategy {
		case Callable:
			if r.Complete == "" || r.Fail == "" {
				err = errors.Join(err, InvalidRuleError{Index: i, Reason: "callable rule needs complete and fail names"})
			}
		case Supplier:
			// no extra names needed
		default:
			err = errors.Join(err, InvalidRuleError{Index: i, Reason: fmt.Sprintf("unknown strategy %q", r.Strategy)})
		}
	}

	return err
}
