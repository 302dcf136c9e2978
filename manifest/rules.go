// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"regexp"
	"strings"
)

// Length limits for manifest string fields, in characters.
const (
	MaxIDLength          = 100
	MaxNameLength        = 100
	MaxVersionLength     = 50
	MaxDescriptionLength = 2000
	MaxAuthorLength      = 100
	MaxImageLength       = 200
)

// ExternalPermissionPrefix marks permission tokens that are namespaced by an
// extension rather than drawn from the fixed platform vocabulary.
const ExternalPermissionPrefix = "ext:"

// Permissions is the fixed vocabulary of platform permission tokens.
// Any other token must carry the ExternalPermissionPrefix.
var Permissions = map[string]struct{}{
	"network":       {},
	"storage":       {},
	"docker":        {},
	"system":        {},
	"notifications": {},
	"clipboard":     {},
	"camera":        {},
	"microphone":    {},
}

// SettingTypes enumerates the recognized values for a setting's "type" field.
var SettingTypes = map[string]struct{}{
	"string":  {},
	"number":  {},
	"boolean": {},
	"select":  {},
}

var (
	// toolNameRegex constrains MCP tool names.
	toolNameRegex = regexp.MustCompile(`^[a-z0-9_]{1,100}$`)

	// extensionIDRegex constrains extension IDs and their operation names.
	extensionIDRegex = regexp.MustCompile(`^[a-z0-9_-]{1,100}$`)
)

// bidiOverrides are the Unicode directional control characters that can be
// used to visually spoof text. Manifests must not contain any of them in
// human-facing fields.
var bidiOverrides = []rune{
	'\u200e', '\u200f', // LRM, RLM
	'\u202a', '\u202b', '\u202c', '\u202d', '\u202e', // LRE, RLE, PDF, LRO, RLO
	'\u2066', '\u2067', '\u2068', '\u2069', // LRI, RLI, FSI, PDI
}

// containsBidiOverride reports whether s contains any bidirectional override
// character.
func containsBidiOverride(s string) bool {
	return strings.ContainsAny(s, string(bidiOverrides))
}

// IsValidPermission reports whether tok is a recognized platform permission
// or an extension-namespaced one. It is the same predicate the validator
// applies, exposed for callers that vet permissions before writing manifests.
func IsValidPermission(tok string) bool {
	return validPermission(tok)
}

// validPermission reports whether tok is a recognized platform permission or
// an extension-namespaced one.
func validPermission(tok string) bool {
	if strings.HasPrefix(tok, ExternalPermissionPrefix) {
		return true
	}
	_, ok := Permissions[tok]
	return ok
}

// validToolName reports whether name is an acceptable MCP tool name.
func validToolName(name string) bool {
	return toolNameRegex.MatchString(name)
}

// validExtensionID reports whether id is an acceptable extension ID or
// operation name.
func validExtensionID(id string) bool {
	return extensionIDRegex.MatchString(id)
}
