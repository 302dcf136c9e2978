// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nexusworks/plugin-kit/publish"
)

var (
	publishRegistry string
	publishDryRun   bool
)

var publishCmd = &cobra.Command{
	Use:   "publish [path]",
	Short: "Publish a plugin to the central registry",
	Long: `Publish validates the plugin, resolves its image to an immutable digest
and opens a pull request adding the registry entry to the central registry
repository. It needs the gh CLI authenticated against GitHub.

A manifest that fails validation is never published.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishRegistry, "registry", publish.DefaultRegistry, "registry repository slug")
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "build and check the registry entry without publishing")
}

func runPublish(cmd *cobra.Command, args []string) error {
	p := publish.New()
	p.Registry = publishRegistry
	p.DryRun = publishDryRun

	summary, err := p.Publish(cmd.Context(), targetPath(args))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case summary.DryRun:
		fmt.Fprintf(out, "%s\n%s", color.GreenString("registry entry ok (dry run)"), summary.EntryJSON)
	case summary.Unchanged:
		fmt.Fprintln(out, color.GreenString("registry already up to date, nothing to publish"))
	default:
		fmt.Fprintf(out, "%s %s\n", color.GreenString("opened pull request"), summary.PullRequest)
	}
	return nil
}
