// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package manifest defines the Nexus plugin manifest format, its rule table,
// and the rule-based validator that checks manifests against it.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the typed form of a plugin manifest. The validator operates on
// the raw JSON document instead (see Document) so that presence and type
// violations can be reported precisely; the typed form is used when the kit
// produces manifests itself.
type Manifest struct {
	// ID is the unique plugin identifier, e.g. "com.example.metrics".
	ID string `json:"id"`
	// Name is the human-readable plugin name.
	Name string `json:"name"`
	// Version is the plugin release version.
	Version string `json:"version"`
	// Description explains what the plugin does.
	Description string `json:"description"`
	// Author is the plugin author or vendor.
	Author string `json:"author"`
	// Image is the container image reference for the plugin.
	Image string `json:"image"`
	// ImageDigest optionally pins the image to an exact build.
	ImageDigest string `json:"image_digest,omitempty"`
	// Icon is an optional http(s) URL to the plugin icon.
	Icon string `json:"icon,omitempty"`
	// UI describes the plugin's web UI.
	UI UI `json:"ui"`
	// Permissions lists the platform capabilities the plugin requests.
	Permissions []string `json:"permissions,omitempty"`
	// MCP describes the MCP capabilities the plugin exposes.
	MCP *MCP `json:"mcp,omitempty"`
	// Extensions maps extension IDs to the operations the plugin implements.
	Extensions map[string][]string `json:"extensions,omitempty"`
	// Settings lists the user-configurable settings of the plugin.
	Settings []Setting `json:"settings,omitempty"`
}

// UI describes the plugin's web UI endpoint inside the container.
type UI struct {
	// Port is the container port serving the plugin UI.
	Port int `json:"port"`
}

// MCP groups the MCP capabilities exposed by a plugin.
type MCP struct {
	// Tools lists the callable tools the plugin exposes.
	Tools []Tool `json:"tools,omitempty"`
}

// Tool is a callable capability exposed over MCP.
type Tool struct {
	// Name is the tool identifier, lowercase alphanumeric and underscores.
	Name string `json:"name"`
	// Description explains what the tool does.
	Description string `json:"description"`
	// InputSchema is the JSON schema of the tool's arguments. Its root must
	// declare type "object".
	InputSchema map[string]any `json:"input_schema"`
	// Permissions optionally narrows the permissions this tool needs.
	Permissions []string `json:"permissions,omitempty"`
}

// Setting is a user-configurable plugin setting.
type Setting struct {
	// Key identifies the setting.
	Key string `json:"key"`
	// Type is one of "string", "number", "boolean" or "select".
	Type string `json:"type"`
	// Label is an optional display label.
	Label string `json:"label,omitempty"`
	// Default is the optional default value.
	Default any `json:"default,omitempty"`
	// Options lists the choices for "select" settings.
	Options []string `json:"options,omitempty"`
}

// FromFile loads a typed manifest from a file or plugin directory.
func FromFile(path string) (*Manifest, error) {
	resolved := ResolvePath(path)

	// #nosec G304 - reading a user-specified manifest is the whole point
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}
