// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/cobra"

	"github.com/nexusworks/plugin-kit/logger"
)

var debug bool

// debugFlagProvider exposes the --debug flag to the logger.
type debugFlagProvider struct{}

func (*debugFlagProvider) IsDebug() bool {
	return debug
}

var rootCmd = &cobra.Command{
	Use:   "nexus-plugin",
	Short: "Build, validate and publish Nexus plugins",
	Long: `nexus-plugin is the developer kit for Nexus plugins.

It scaffolds new plugin projects, validates plugin manifests against the
platform rules and publishes plugins to the central registry.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.InitializeWithDebug(&debugFlagProvider{})
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(versionCmd)
}

// targetPath returns the plugin directory or manifest path from args,
// defaulting to the current directory.
func targetPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
