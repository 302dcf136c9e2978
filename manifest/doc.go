// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package manifest defines the Nexus plugin manifest format and validates
manifests against the platform rule set.

Validation is a two-phase process. Loading is fail-fast: a missing file or a
JSON parse error produces a single fail entry and nothing else runs. Once a
document is loaded, every rule runs to completion so that a single run reports
the complete defect list:

	result := manifest.Validate("./my-plugin")
	for _, e := range result.Entries {
		fmt.Println(e.Level, e.Message)
	}
	if !result.OK() {
		os.Exit(1)
	}

The validator performs exactly one file read plus a Dockerfile stat and holds
no shared state, so it is safe to invoke concurrently on different inputs.
Rendering is deliberately left to callers (see the report package) so that the
same run can back both the human CLI and machine-readable output.

# Rule table

The permission vocabulary, name patterns, length limits and setting type
enumeration live in rules.go as package-level configuration shared by the
validator and the scaffolder. Permission tokens outside the fixed vocabulary
must carry the "ext:" prefix.

# Levels

Entries carry one of three levels: pass, fail or warn. Overall success is
defined as zero fail entries; warnings (currently only a missing Dockerfile)
never affect success.
*/
package manifest
