// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import "errors"

// Sentinel errors for policy rule handling.
var (
	// ErrRuleCheck is returned when a rule expression fails syntax or type
	// checking.
	ErrRuleCheck = errors.New("policy rule check failed")

	// ErrRuleEvaluation is returned when rule evaluation fails at runtime.
	ErrRuleEvaluation = errors.New("policy rule evaluation failed")

	// ErrRuleResult is returned when a rule does not evaluate to a boolean.
	ErrRuleResult = errors.New("policy rule returned a non-boolean result")

	// ErrNoRules is returned when a policy file declares no rules.
	ErrNoRules = errors.New("policy file declares no rules")
)
