// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package policy evaluates organization-specific CEL rules against plugin
manifests, on top of the fixed rule set in the manifest package.

A policy file is a YAML document listing boolean CEL expressions over a single
"manifest" variable holding the decoded manifest JSON:

	rules:
	  - name: https_icon_only
	    expression: '!("icon" in manifest) || manifest.icon.startsWith("https://")'
	    message: icons must be served over https
	  - name: no_docker_permission
	    expression: '!("permissions" in manifest) || !("docker" in manifest.permissions)'

Rules are compiled once and applied to any number of manifests:

	set, err := policy.CompileFile("policy.yaml")
	if err != nil {
	    // broken policy configuration
	}
	result := doc.Validate()
	set.Apply(doc.Root, result)

Each rule contributes exactly one pass or fail entry to the validation result.
Expression length and evaluation cost are capped so a hostile policy file
cannot stall a validation run.
*/
package policy
