// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the nexus-plugin CLI.
package main

import (
	"os"

	"github.com/nexusworks/plugin-kit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
