// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexusworks/plugin-kit/manifest"
	"github.com/nexusworks/plugin-kit/policy"
	"github.com/nexusworks/plugin-kit/report"
)

var (
	validateJSON   bool
	validatePolicy string
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a plugin manifest",
	Long: `Validate checks the plugin.json at the given path, or in the current
directory, against the platform rules. Every rule is evaluated and every
finding is reported in one pass.

The exit code is 0 when validation passes and 1 when it does not. Warnings
never affect the exit code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "emit one structured JSON record instead of the check list")
	validateCmd.Flags().StringVar(&validatePolicy, "policy", "", "apply additional CEL policy rules from a YAML file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	result, err := validateTarget(targetPath(args), validatePolicy)
	if err != nil {
		return err
	}

	if validateJSON {
		ok, err := report.JSON(cmd.OutOrStdout(), result)
		if err != nil {
			return err
		}
		if !ok {
			return errValidationFailed(result)
		}
		return nil
	}

	if !report.Human(cmd.OutOrStdout(), result) {
		return errValidationFailed(result)
	}
	return nil
}

// validateTarget runs the built-in rules plus, when policyPath is set, the
// policy rules. Policy compilation errors abort the run; they are operator
// mistakes, not manifest findings.
func validateTarget(path, policyPath string) (*manifest.Result, error) {
	var set *policy.Set
	if policyPath != "" {
		var err error
		set, err = policy.CompileFile(policyPath)
		if err != nil {
			return nil, err
		}
	}

	doc, err := manifest.Load(path)
	if err != nil {
		r := &manifest.Result{Path: manifest.ResolvePath(path)}
		if errors.Is(err, manifest.ErrNotFound) {
			r.AddFail("plugin.json not found")
		} else {
			r.AddFail("%v", err)
		}
		return r, nil
	}

	result := doc.Validate()
	if set != nil {
		set.Apply(doc.Root, result)
	}
	return result, nil
}

func errValidationFailed(r *manifest.Result) error {
	return fmt.Errorf("validation failed with %d error(s)", r.Errors())
}
