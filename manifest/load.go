// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the canonical manifest file name inside a plugin directory.
const FileName = "plugin.json"

// Sentinel errors for manifest loading.
var (
	// ErrNotFound is returned when the manifest file does not exist or is
	// not readable.
	ErrNotFound = errors.New("plugin.json not found")

	// ErrInvalidJSON is returned when the manifest file is not a valid JSON
	// object.
	ErrInvalidJSON = errors.New("invalid manifest JSON")
)

// Document is a manifest loaded from disk, decoded into its raw JSON form and
// ready for rule evaluation.
type Document struct {
	// Path is the resolved path of the manifest file.
	Path string

	// Root is the decoded top-level JSON object.
	Root map[string]any
}

// Dir returns the directory containing the manifest file.
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

// ResolvePath resolves a user-supplied target to a manifest file path. A
// directory resolves to the plugin.json inside it; anything else is taken as
// the manifest path itself.
func ResolvePath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, FileName)
	}
	return path
}

// Load reads and decodes the manifest at the given target path. It returns
// ErrNotFound when the file is missing or unreadable, and ErrInvalidJSON when
// the content does not decode to a JSON object. Rule evaluation is not
// performed here; see Document.Validate.
func Load(path string) (*Document, error) {
	resolved := ResolvePath(path)

	// #nosec G304 - reading a user-specified manifest is the whole point
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, resolved)
	}

	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return &Document{Path: resolved, Root: root}, nil
}
