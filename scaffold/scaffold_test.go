// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nexusworks/plugin-kit/manifest"
)

func sampleOptions(dir string) Options {
	return Options{
		Name:        "Media Indexer",
		Author:      "Acme Labs",
		Description: "Indexes media libraries",
		Port:        8080,
		Permissions: []string{"network", "storage"},
		Dir:         dir,
	}
}

func TestPluginID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "metrics", "metrics"},
		{"spaces and case", "Media Indexer", "media-indexer"},
		{"punctuation squashed", "My!! Plugin??", "my-plugin"},
		{"underscores kept", "log_tail", "log_tail"},
		{"leading junk trimmed", "  Fancy  ", "fancy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := Options{Name: tt.in}
			assert.Equal(t, tt.want, o.PluginID())
		})
	}
}

func TestGenerateWritesProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	written, err := Generate(sampleOptions(dir))
	require.NoError(t, err)

	wantFiles := []string{
		"plugin.json",
		"Dockerfile",
		".dockerignore",
		"main.go",
		filepath.Join("static", "index.html"),
		filepath.Join(".github", "workflows", "publish.yml"),
	}
	require.Len(t, written, len(wantFiles))
	for _, f := range wantFiles {
		assert.FileExists(t, filepath.Join(dir, f))
	}
}

func TestGenerateManifestValidates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Generate(sampleOptions(dir))
	require.NoError(t, err)

	r := manifest.Validate(dir)
	assert.True(t, r.OK(), "scaffolded manifest must validate cleanly: %+v", r.Entries)
	assert.Equal(t, 0, r.Warnings(), "Dockerfile is scaffolded, no warning expected")

	m, err := manifest.FromFile(dir)
	require.NoError(t, err)
	assert.Equal(t, "media-indexer", m.ID)
	assert.Equal(t, InitialVersion, m.Version)
	assert.Equal(t, 8080, m.UI.Port)
	assert.Equal(t, "ghcr.io/acme-labs/media-indexer:0.1.0", m.Image)
}

func TestGenerateWorkflowIsYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Generate(sampleOptions(dir))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".github", "workflows", "publish.yml"))
	require.NoError(t, err)

	var workflow map[string]any
	require.NoError(t, yaml.Unmarshal(data, &workflow))
	assert.Contains(t, workflow, "jobs")
	assert.Contains(t, string(data), "ghcr.io/acme-labs/media-indexer:0.1.0")
}

func TestGenerateRefusesOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dockerfile"), []byte("FROM scratch\n"), 0o600))

	_, err := Generate(sampleOptions(dir))
	require.ErrorIs(t, err, ErrExists)

	// Nothing else may have been written before the collision check.
	assert.NoFileExists(t, filepath.Join(dir, "plugin.json"))

	opts := sampleOptions(dir)
	opts.Force = true
	_, err = Generate(opts)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "plugin.json"))
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr string
	}{
		{"missing name", func(o *Options) { o.Name = "" }, "name is required"},
		{"unusable name", func(o *Options) { o.Name = "!!!" }, "usable ID"},
		{"missing description", func(o *Options) { o.Description = "" }, "description is required"},
		{"zero port", func(o *Options) { o.Port = 0 }, "port must be greater than zero"},
		{"unknown permission", func(o *Options) { o.Permissions = []string{"teleport"} }, `unknown permission "teleport"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := sampleOptions(t.TempDir())
			tt.mutate(&opts)
			_, err := Generate(opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
