// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nexusworks/plugin-kit/manifest"
)

// Rule is one organization policy rule evaluated against a manifest. The
// expression is a CEL boolean over the "manifest" variable.
type Rule struct {
	// Name identifies the rule in validation output.
	Name string `yaml:"name"`
	// Expression is the CEL boolean expression.
	Expression string `yaml:"expression"`
	// Message optionally overrides the failure message.
	Message string `yaml:"message,omitempty"`
}

// policyFile is the on-disk shape of a policy document.
type policyFile struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads policy rules from a YAML file.
func Load(path string) ([]Rule, error) {
	// #nosec G304 - reading a user-specified policy file is the whole point
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRules, path)
	}

	for i, r := range f.Rules {
		if r.Name == "" {
			return nil, fmt.Errorf("rule %d has no name", i)
		}
		if r.Expression == "" {
			return nil, fmt.Errorf("rule %q has no expression", r.Name)
		}
	}

	return f.Rules, nil
}

// Set is a compiled, reusable collection of policy rules. A Set is safe for
// concurrent use.
type Set struct {
	rules []compiledRule
}

// Compile compiles every rule and returns the resulting Set. Compilation
// fails on the first broken rule so configuration problems surface before any
// manifest is judged.
func Compile(rules []Rule) (*Set, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		program, err := compileExpression(r.Expression)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule{rule: r, program: program})
	}
	return &Set{rules: compiled}, nil
}

// CompileFile loads and compiles a policy file in one step.
func CompileFile(path string) (*Set, error) {
	rules, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Compile(rules)
}

// Apply evaluates every rule against the document root and appends one entry
// per rule to the result: pass when the rule holds, fail when it is violated
// or cannot be evaluated. Rules never short-circuit each other.
func (s *Set) Apply(root map[string]any, r *manifest.Result) {
	for _, c := range s.rules {
		verdict, err := c.evaluateBool(root)
		switch {
		case err != nil:
			r.AddFail("policy %q could not be evaluated: %v", c.rule.Name, err)
		case verdict:
			r.AddPass("policy %q satisfied", c.rule.Name)
		case c.rule.Message != "":
			r.AddFail("policy %q violated: %s", c.rule.Name, c.rule.Message)
		default:
			r.AddFail("policy %q violated", c.rule.Name)
		}
	}
}

// Len returns the number of compiled rules.
func (s *Set) Len() int {
	return len(s.rules)
}
