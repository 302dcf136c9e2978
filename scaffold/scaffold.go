// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package scaffold generates new plugin projects from embedded templates.
package scaffold

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/nexusworks/plugin-kit/manifest"
)

//go:embed templates
var templateFS embed.FS

// Template expressions use [[ ]] delimiters so generated files may contain
// literal {{ }}, which GitHub Actions workflows do.
const (
	delimLeft  = "[["
	delimRight = "]]"
)

// InitialVersion is the version stamped into freshly scaffolded manifests.
const InitialVersion = "0.1.0"

// ErrExists is returned when scaffolding would overwrite an existing file and
// Force is not set.
var ErrExists = errors.New("file already exists")

// Options configures a scaffolding run.
type Options struct {
	// Name is the human-readable plugin name.
	Name string
	// Author is the plugin author or vendor.
	Author string
	// Description explains what the plugin does.
	Description string
	// Port is the container port serving the plugin UI.
	Port int
	// Permissions lists requested platform permissions.
	Permissions []string
	// Dir is the target project directory. Created if missing.
	Dir string
	// Force allows overwriting existing files.
	Force bool
}

var idSquashRegex = regexp.MustCompile(`[^a-z0-9_-]+`)

// PluginID derives the plugin ID from the name: lowercased, with every run of
// characters outside [a-z0-9_-] squashed to a single dash.
func (o *Options) PluginID() string {
	id := idSquashRegex.ReplaceAllString(strings.ToLower(o.Name), "-")
	return strings.Trim(id, "-")
}

// validate rejects options that would produce an invalid manifest.
func (o *Options) validate() error {
	if o.Name == "" {
		return errors.New("plugin name is required")
	}
	if o.PluginID() == "" {
		return fmt.Errorf("plugin name %q does not yield a usable ID", o.Name)
	}
	// The validator requires a non-empty description; refusing here keeps
	// every generated project valid.
	if o.Description == "" {
		return errors.New("plugin description is required")
	}
	if o.Port <= 0 {
		return errors.New("ui port must be greater than zero")
	}
	for _, p := range o.Permissions {
		if !manifest.IsValidPermission(p) {
			return fmt.Errorf("unknown permission %q", p)
		}
	}
	return nil
}

// templateData is what the embedded templates see.
type templateData struct {
	ID          string
	Name        string
	Author      string
	Description string
	Image       string
	Port        int
}

// projectFiles maps output paths (relative to the project dir) to their
// template names.
var projectFiles = []struct {
	path     string
	template string
}{
	{"Dockerfile", "Dockerfile.tmpl"},
	{".dockerignore", "dockerignore.tmpl"},
	{"main.go", "main.go.tmpl"},
	{filepath.Join("static", "index.html"), "index.html.tmpl"},
	{filepath.Join(".github", "workflows", "publish.yml"), "publish.yml.tmpl"},
}

// Generate scaffolds a plugin project and returns the paths of all written
// files. Existing files abort the run with ErrExists unless Force is set;
// nothing is written before that check passes.
func Generate(opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	m := buildManifest(opts)
	data := templateData{
		ID:          m.ID,
		Name:        m.Name,
		Author:      m.Author,
		Description: m.Description,
		Image:       m.Image,
		Port:        opts.Port,
	}

	outputs := make(map[string][]byte, len(projectFiles)+1)

	manifestJSON, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	outputs[manifest.FileName] = append(manifestJSON, '\n')

	for _, f := range projectFiles {
		rendered, err := render(f.template, data)
		if err != nil {
			return nil, err
		}
		outputs[f.path] = rendered
	}

	if !opts.Force {
		for rel := range outputs {
			if _, err := os.Stat(filepath.Join(opts.Dir, rel)); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrExists, rel)
			}
		}
	}

	written := make([]string, 0, len(outputs))
	for _, f := range orderedPaths(outputs) {
		target := filepath.Join(opts.Dir, f)
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, outputs[f], 0o600); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", target, err)
		}
		written = append(written, target)
	}

	return written, nil
}

// buildManifest assembles the typed manifest for a new project.
func buildManifest(opts Options) *manifest.Manifest {
	id := opts.PluginID()
	owner := strings.Trim(idSquashRegex.ReplaceAllString(strings.ToLower(opts.Author), "-"), "-")
	if owner == "" {
		owner = id
	}
	return &manifest.Manifest{
		ID:          id,
		Name:        opts.Name,
		Version:     InitialVersion,
		Description: opts.Description,
		Author:      opts.Author,
		Image:       fmt.Sprintf("ghcr.io/%s/%s:%s", owner, id, InitialVersion),
		UI:          manifest.UI{Port: opts.Port},
		Permissions: opts.Permissions,
	}
}

// render executes one embedded template.
func render(name string, data templateData) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Delims(delimLeft, delimRight).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return []byte(buf.String()), nil
}

// orderedPaths returns the output paths in a stable order, manifest first.
func orderedPaths(outputs map[string][]byte) []string {
	paths := []string{manifest.FileName}
	for _, f := range projectFiles {
		if _, ok := outputs[f.path]; ok {
			paths = append(paths, f.path)
		}
	}
	return paths
}
