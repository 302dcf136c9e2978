// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/opencontainers/go-digest"
)

// requiredStringFields lists the required top-level string fields together
// with their length limits, in report order.
var requiredStringFields = []struct {
	name string
	min  int
	max  int
}{
	{"id", 1, MaxIDLength},
	{"name", 1, MaxNameLength},
	{"version", 1, MaxVersionLength},
	{"description", 1, MaxDescriptionLength},
	{"author", 0, MaxAuthorLength},
	{"image", 0, MaxImageLength},
}

// bidiCheckedFields are the top-level fields scanned for bidirectional
// override characters.
var bidiCheckedFields = []string{"name", "description", "author"}

// Validate resolves and loads the manifest at the given target path and runs
// the full rule set against it. Loading is fail-fast: a missing file or
// invalid JSON yields a single fail entry and no further checks run. Once a
// document is loaded every check runs, so one pass surfaces the complete
// defect list.
func Validate(path string) *Result {
	doc, err := Load(path)
	if err != nil {
		r := &Result{Path: ResolvePath(path)}
		if errors.Is(err, ErrNotFound) {
			r.AddFail("plugin.json not found")
		} else {
			r.AddFail("%v", err)
		}
		return r
	}
	return doc.Validate()
}

// Validate runs the full rule set against the loaded document. Checks are
// independent and never short-circuit each other; checks over optional fields
// are skipped silently when the field is absent.
func (d *Document) Validate() *Result {
	r := &Result{Path: d.Path}

	d.checkRequiredFields(r)
	d.checkLengthLimits(r)
	d.checkBidiOverrides(r)
	d.checkIcon(r)
	d.checkImageDigest(r)
	d.checkPermissions(r)
	d.checkTools(r)
	d.checkExtensions(r)
	d.checkSettings(r)
	d.checkDockerfile(r)

	return r
}

// checkRequiredFields verifies presence and type of every required field.
func (d *Document) checkRequiredFields(r *Result) {
	for _, f := range requiredStringFields {
		v, ok := d.Root[f.name]
		if !ok {
			r.AddFail("missing required field %q", f.name)
			continue
		}
		if _, isString := v.(string); !isString {
			r.AddFail("field %q must be a string", f.name)
			continue
		}
		r.AddPass("required field %q present", f.name)
	}

	d.checkUIPort(r)
}

// checkUIPort verifies the required ui.port field.
func (d *Document) checkUIPort(r *Result) {
	ui, ok := d.Root["ui"].(map[string]any)
	if !ok {
		r.AddFail("missing required field %q", "ui.port")
		return
	}
	port, ok := ui["port"]
	if !ok {
		r.AddFail("missing required field %q", "ui.port")
		return
	}
	n, isNumber := port.(float64)
	if !isNumber {
		r.AddFail("field %q must be a number", "ui.port")
		return
	}
	if n <= 0 {
		r.AddFail("field %q must be greater than zero", "ui.port")
		return
	}
	r.AddPass("required field %q present", "ui.port")
}

// checkLengthLimits enforces the length limits of the rule table. A field is
// only measured when it is present as a string; missing fields already failed
// the presence check.
func (d *Document) checkLengthLimits(r *Result) {
	for _, f := range requiredStringFields {
		s, ok := d.Root[f.name].(string)
		if !ok {
			continue
		}
		// Limits count characters, not bytes; multibyte text must not be
		// penalized.
		switch n := utf8.RuneCountInString(s); {
		case n < f.min:
			r.AddFail("field %q must be at least %d character(s)", f.name, f.min)
		case n > f.max:
			r.AddFail("field %q must be at most %d characters", f.name, f.max)
		default:
			r.AddPass("field %q length within limits", f.name)
		}
	}
}

// checkBidiOverrides scans the human-facing fields for directional override
// characters. A single aggregated pass is reported when everything is clean.
func (d *Document) checkBidiOverrides(r *Result) {
	clean := true
	for _, name := range bidiCheckedFields {
		s, ok := d.Root[name].(string)
		if !ok {
			continue
		}
		if containsBidiOverride(s) {
			r.AddFail("field %q contains bidirectional override characters", name)
			clean = false
		}
	}
	if clean {
		r.AddPass("no bidirectional override characters")
	}
}

// checkIcon verifies the icon URL scheme when an icon is declared.
func (d *Document) checkIcon(r *Result) {
	v, ok := d.Root["icon"]
	if !ok {
		return
	}
	s, isString := v.(string)
	if !isString || (!strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://")) {
		r.AddFail("field %q must be a URL starting with http:// or https://", "icon")
		return
	}
	r.AddPass("icon URL scheme valid")
}

// checkImageDigest verifies the image_digest format when a digest is pinned.
// go-digest enforces exactly "sha256:" followed by 64 lowercase hex chars for
// the sha256 algorithm.
func (d *Document) checkImageDigest(r *Result) {
	v, ok := d.Root["image_digest"]
	if !ok {
		return
	}
	s, isString := v.(string)
	if isString {
		if dgst, err := digest.Parse(s); err == nil && dgst.Algorithm() == digest.SHA256 {
			r.AddPass("image digest format valid")
			return
		}
	}
	r.AddFail("field %q must be sha256: followed by 64 lowercase hex characters", "image_digest")
}

// checkPermissions verifies every requested permission token. Every invalid
// entry is reported; there is no early exit.
func (d *Document) checkPermissions(r *Result) {
	perms, ok := d.Root["permissions"].([]any)
	if !ok {
		return
	}
	valid := true
	for i, p := range perms {
		tok, isString := p.(string)
		if !isString {
			r.AddFail("permissions[%d] must be a string", i)
			valid = false
			continue
		}
		if !validPermission(tok) {
			r.AddFail("unknown permission %q", tok)
			valid = false
		}
	}
	if valid {
		r.AddPass("permissions valid")
	}
}

// checkTools verifies every MCP tool declaration in array order. A single
// tool may contribute multiple fail entries; one aggregated pass is reported
// when every tool passes every sub-check.
func (d *Document) checkTools(r *Result) {
	mcp, ok := d.Root["mcp"].(map[string]any)
	if !ok {
		return
	}
	tools, ok := mcp["tools"].([]any)
	if !ok || len(tools) == 0 {
		return
	}

	valid := true
	seen := make(map[string]struct{}, len(tools))
	for i, t := range tools {
		tool, isObject := t.(map[string]any)
		if !isObject {
			r.AddFail("mcp.tools[%d] must be an object", i)
			valid = false
			continue
		}
		if !d.checkTool(r, tool, i, seen) {
			valid = false
		}
	}
	if valid {
		r.AddPass("mcp tools valid")
	}
}

// checkTool runs the per-tool sub-checks and reports whether all passed.
func (d *Document) checkTool(r *Result, tool map[string]any, index int, seen map[string]struct{}) bool {
	label := fmt.Sprintf("mcp.tools[%d]", index)
	ok := true

	name, _ := tool["name"].(string)
	if name != "" {
		label = fmt.Sprintf("tool %q", name)
	}
	if !validToolName(name) {
		r.AddFail("%s name must match [a-z0-9_]{1,100}", label)
		ok = false
	} else if _, dup := seen[name]; dup {
		r.AddFail("duplicate tool name %q", name)
		ok = false
	} else {
		seen[name] = struct{}{}
	}

	desc, isString := tool["description"].(string)
	switch {
	case !isString || desc == "":
		r.AddFail("%s description is required", label)
		ok = false
	case utf8.RuneCountInString(desc) > MaxDescriptionLength:
		r.AddFail("%s description must be at most %d characters", label, MaxDescriptionLength)
		ok = false
	case containsBidiOverride(desc):
		r.AddFail("%s description contains bidirectional override characters", label)
		ok = false
	}

	schema, isObject := tool["input_schema"].(map[string]any)
	if !isObject || schema["type"] != "object" {
		r.AddFail("%s input_schema root must declare type \"object\"", label)
		ok = false
	}

	if perms, isArray := tool["permissions"].([]any); isArray {
		for i, p := range perms {
			tok, isString := p.(string)
			if !isString {
				r.AddFail("%s permissions[%d] must be a string", label, i)
				ok = false
				continue
			}
			if !validPermission(tok) {
				r.AddFail("%s requests unknown permission %q", label, tok)
				ok = false
			}
		}
	}

	return ok
}

// checkExtensions verifies every extension entry. Keys are visited in sorted
// order so repeated runs produce identical output.
func (d *Document) checkExtensions(r *Result) {
	exts, ok := d.Root["extensions"].(map[string]any)
	if !ok || len(exts) == 0 {
		return
	}

	keys := make([]string, 0, len(exts))
	for k := range exts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	valid := true
	for _, id := range keys {
		if !validExtensionID(id) {
			r.AddFail("extension ID %q must match [a-z0-9_-]{1,100}", id)
			valid = false
		}
		ops, isArray := exts[id].([]any)
		if !isArray || len(ops) == 0 {
			r.AddFail("extension %q must declare a non-empty array of operations", id)
			valid = false
			continue
		}
		for i, op := range ops {
			name, isString := op.(string)
			if !isString || !validExtensionID(name) {
				r.AddFail("extension %q operations[%d] must match [a-z0-9_-]{1,100}", id, i)
				valid = false
			}
		}
	}
	if valid {
		r.AddPass("extensions valid")
	}
}

// checkSettings verifies every setting declaration.
func (d *Document) checkSettings(r *Result) {
	settings, ok := d.Root["settings"].([]any)
	if !ok || len(settings) == 0 {
		return
	}

	valid := true
	for i, s := range settings {
		setting, isObject := s.(map[string]any)
		if !isObject {
			r.AddFail("settings[%d] must be an object", i)
			valid = false
			continue
		}

		label := fmt.Sprintf("settings[%d]", i)
		key, hasKey := setting["key"].(string)
		if !hasKey || key == "" {
			r.AddFail("%s key is required", label)
			valid = false
		} else {
			label = fmt.Sprintf("setting %q", key)
		}

		typ, _ := setting["type"].(string)
		if _, known := SettingTypes[typ]; !known {
			r.AddFail("%s type must be one of string, number, boolean, select", label)
			valid = false
		} else if typ == "select" {
			if opts, isArray := setting["options"].([]any); !isArray || len(opts) == 0 {
				r.AddFail("%s requires a non-empty options array", label)
				valid = false
			}
		}
	}
	if valid {
		r.AddPass("settings valid")
	}
}

// checkDockerfile reports an advisory warning when no Dockerfile sits next to
// the manifest.
func (d *Document) checkDockerfile(r *Result) {
	if _, err := os.Stat(filepath.Join(d.Dir(), "Dockerfile")); err != nil {
		r.AddWarn("no Dockerfile found next to %s", FileName)
		return
	}
	r.AddPass("Dockerfile present")
}
