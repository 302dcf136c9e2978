// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// maxExpressionLength is the maximum allowed length for a rule
	// expression. Longer expressions are rejected during compilation.
	maxExpressionLength = 10000

	// costLimit is the runtime cost limit for rule evaluation. Rules that
	// exceed it fail evaluation instead of stalling a validation run.
	costLimit = 1000000
)

// ManifestVar is the name under which the decoded manifest document is bound
// during rule evaluation.
const ManifestVar = "manifest"

// engineEnv lazily builds the shared CEL environment for policy rules. All
// rules see a single variable: the manifest as a map of string to dyn.
var engineEnv = struct {
	once sync.Once
	env  *cel.Env
	err  error
}{}

func getEnv() (*cel.Env, error) {
	engineEnv.once.Do(func() {
		engineEnv.env, engineEnv.err = cel.NewEnv(
			cel.Variable(ManifestVar, cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return engineEnv.env, engineEnv.err
}

// compiledRule pairs a rule with its compiled CEL program.
type compiledRule struct {
	rule    Rule
	program cel.Program
}

// compileExpression parses, checks and compiles a rule expression.
func compileExpression(expr string) (cel.Program, error) {
	if len(expr) > maxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrRuleCheck, len(expr), maxExpressionLength)
	}

	celEnv, err := getEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to build policy environment: %w", err)
	}

	parsed, issues := celEnv.Parse(expr)
	if issues.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuleCheck, issues.Err())
	}

	checked, issues := celEnv.Check(parsed)
	if issues.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuleCheck, issues.Err())
	}

	program, err := celEnv.Program(checked, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to build program for %q: %w", expr, err)
	}

	return program, nil
}

// evaluateBool runs a compiled rule against the manifest document and returns
// its boolean verdict.
func (c *compiledRule) evaluateBool(root map[string]any) (bool, error) {
	out, _, err := c.program.Eval(map[string]any{ManifestVar: root})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRuleEvaluation, err)
	}
	verdict, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrRuleResult, out.Value())
	}
	return verdict, nil
}
