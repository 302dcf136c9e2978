// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

# Testing

The Reader interface allows injecting a fake in tests to avoid relying on real
environment variables:

	result := myFunc(env.MapReader{"MY_VAR": "test-value"})

# CI detection

IsCI reports whether the process runs under a CI system, which the CLI uses to
pick the non-interactive prompt source at startup:

	if env.IsCI(&env.OSReader{}) {
		// no prompting
	}
*/
package env
