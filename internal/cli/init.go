// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nexusworks/plugin-kit/env"
	"github.com/nexusworks/plugin-kit/prompt"
	"github.com/nexusworks/plugin-kit/scaffold"
)

const defaultUIPort = 8080

var (
	initName           string
	initAuthor         string
	initDescription    string
	initPort           int
	initPermissions    []string
	initForce          bool
	initNonInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a new plugin project",
	Long: `Init generates a runnable plugin project in the given directory, or the
current directory: a valid plugin.json, a Dockerfile, a minimal UI server and
a publish workflow.

Missing details are asked for interactively. With --non-interactive, or when
running in CI, flag values and defaults are used as-is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "plugin name")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "plugin author")
	initCmd.Flags().StringVar(&initDescription, "description", "", "plugin description")
	initCmd.Flags().IntVar(&initPort, "port", defaultUIPort, "container port serving the plugin UI")
	initCmd.Flags().StringSliceVar(&initPermissions, "permission", nil, "requested platform permission, repeatable")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "never prompt, use flags and defaults")
}

func runInit(cmd *cobra.Command, args []string) error {
	opts, err := collectOptions(cmd, initSource(cmd))
	if err != nil {
		return err
	}
	opts.Dir = targetPath(args)
	opts.Force = initForce

	written, err := scaffold.Generate(*opts)
	if err != nil {
		if errors.Is(err, scaffold.ErrExists) {
			return fmt.Errorf("%w, re-run with --force to overwrite", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range written {
		fmt.Fprintf(out, "  %s %s\n", color.GreenString("created"), path)
	}
	fmt.Fprintf(out, "\nPlugin %q is ready. Run %s to check it.\n",
		opts.PluginID(), color.CyanString("nexus-plugin validate %s", opts.Dir))
	return nil
}

// initSource picks where answers come from. CI and --non-interactive runs
// must never block on a prompt.
func initSource(cmd *cobra.Command) prompt.Source {
	if initNonInteractive || env.IsCI(&env.OSReader{}) {
		return &prompt.Static{}
	}
	return prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// collectOptions fills in scaffold options from flags, asking the source for
// anything a flag did not set.
func collectOptions(cmd *cobra.Command, src prompt.Source) (*scaffold.Options, error) {
	opts := &scaffold.Options{
		Name:        initName,
		Author:      initAuthor,
		Description: initDescription,
		Port:        initPort,
		Permissions: initPermissions,
	}

	var err error
	if opts.Name == "" {
		if opts.Name, err = src.Ask("Plugin name", ""); err != nil {
			return nil, err
		}
	}
	if opts.Name == "" {
		return nil, errors.New("plugin name is required, pass --name or answer the prompt")
	}

	if opts.Author == "" {
		if opts.Author, err = src.Ask("Author", ""); err != nil {
			return nil, err
		}
	}
	if opts.Description == "" {
		if opts.Description, err = src.Ask("Description", ""); err != nil {
			return nil, err
		}
	}

	if !cmd.Flags().Changed("port") {
		answer, err := src.Ask("UI port", strconv.Itoa(defaultUIPort))
		if err != nil {
			return nil, err
		}
		if opts.Port, err = strconv.Atoi(answer); err != nil {
			return nil, fmt.Errorf("invalid port %q", answer)
		}
	}

	if len(opts.Permissions) == 0 {
		answer, err := src.Ask("Permissions (comma-separated, empty for none)", "")
		if err != nil {
			return nil, err
		}
		opts.Permissions = splitPermissions(answer)
	}

	return opts, nil
}

// splitPermissions parses a comma-separated permission list, dropping empty
// items.
func splitPermissions(answer string) []string {
	var perms []string
	for _, p := range strings.Split(answer, ",") {
		if p = strings.TrimSpace(p); p != "" {
			perms = append(perms, p)
		}
	}
	return perms
}
