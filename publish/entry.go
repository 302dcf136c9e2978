// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package publish

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/nexusworks/plugin-kit/manifest"
)

//go:embed data/registry-entry.schema.json
var embeddedSchemaFS embed.FS

// Entry is the registry-side record for one published plugin version. It is
// the manifest's identity plus a resolved image digest; the registry never
// trusts a floating tag.
type Entry struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Author      string              `json:"author"`
	Image       string              `json:"image"`
	ImageDigest string              `json:"image_digest"`
	Icon        string              `json:"icon,omitempty"`
	UI          manifest.UI         `json:"ui"`
	Permissions []string            `json:"permissions,omitempty"`
	Extensions  map[string][]string `json:"extensions,omitempty"`
}

// NewEntry builds a registry entry from a manifest and the resolved digest.
func NewEntry(m *manifest.Manifest, imageDigest string) *Entry {
	return &Entry{
		ID:          m.ID,
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
		Author:      m.Author,
		Image:       m.Image,
		ImageDigest: imageDigest,
		Icon:        m.Icon,
		UI:          m.UI,
		Permissions: m.Permissions,
		Extensions:  m.Extensions,
	}
}

// MarshalIndent renders the entry as the registry file content.
func (e *Entry) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize registry entry: %w", err)
	}
	return append(data, '\n'), nil
}

// Validate validates the Entry against the registry entry schema.
func (e *Entry) Validate() error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to serialize registry entry: %w", err)
	}
	return ValidateEntryBytes(data)
}

// ValidateEntryBytes validates raw registry entry JSON bytes against the
// embedded registry entry schema.
func ValidateEntryBytes(entryData []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile("data/registry-entry.schema.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(entryData),
	)
	if err != nil {
		return fmt.Errorf("registry entry schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("registry entry schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a
// numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
