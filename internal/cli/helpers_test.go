// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// runRootCommand executes the root command with the given args and returns
// the combined output. Flag state is reset afterwards so runs stay
// independent.
func runRootCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	resetFlags(rootCmd)
	return buf.String(), err
}

// resetFlags restores every flag in the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				// Set on a slice value appends, and DefValue is rendered as
				// "[a,b]", so rebuild the default element list instead.
				var defaults []string
				if trimmed := strings.Trim(f.DefValue, "[]"); trimmed != "" {
					defaults = strings.Split(trimmed, ",")
				}
				_ = sv.Replace(defaults)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		}
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// writePluginDir writes a minimal valid plugin project and returns its
// directory.
func writePluginDir(t *testing.T) string {
	t.Helper()

	const manifestJSON = `{
  "id": "com.acme.media-indexer",
  "name": "Media Indexer",
  "version": "1.0.0",
  "description": "Indexes your media library.",
  "author": "Acme Labs",
  "image": "ghcr.io/acme/media-indexer:1.0.0",
  "ui": {"port": 8080}
}`

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plugin.json"), []byte(manifestJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dockerfile"), []byte("FROM scratch\n"), 0o600))
	return dir
}
