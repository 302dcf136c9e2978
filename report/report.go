// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package report renders validation results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nexusworks/plugin-kit/manifest"
)

// Record is the machine-readable form of a validation run. Automated callers
// consume exactly one Record per run.
type Record struct {
	Path     string           `json:"path"`
	Success  bool             `json:"success"`
	Errors   int              `json:"errors"`
	Warnings int              `json:"warnings"`
	Results  []manifest.Entry `json:"results"`
}

// NewRecord builds a Record from a validation result.
func NewRecord(r *manifest.Result) Record {
	entries := r.Entries
	if entries == nil {
		entries = []manifest.Entry{}
	}
	return Record{
		Path:     r.Path,
		Success:  r.OK(),
		Errors:   r.Errors(),
		Warnings: r.Warnings(),
		Results:  entries,
	}
}

// JSON writes the single structured record for the run and returns overall
// success. Nothing else is written, so the output stays script-parseable.
func JSON(w io.Writer, r *manifest.Result) (bool, error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewRecord(r)); err != nil {
		return false, fmt.Errorf("failed to encode validation record: %w", err)
	}
	return r.OK(), nil
}

// Human writes the full check list with per-level markers followed by a
// summary line, and returns overall success. Every check is printed, passes
// included, so users see what was verified rather than only what broke.
func Human(w io.Writer, r *manifest.Result) bool {
	fmt.Fprintf(w, "Validating %s\n\n", r.Path)
	for _, e := range r.Entries {
		fmt.Fprintf(w, "  %s %s\n", marker(e.Level), e.Message)
	}
	fmt.Fprintln(w)

	errs, warns := r.Errors(), r.Warnings()
	switch {
	case errs == 0 && warns == 0:
		fmt.Fprintln(w, color.GreenString("validation passed"))
	case errs == 0:
		fmt.Fprintln(w, color.GreenString("validation passed")+fmt.Sprintf(" (%d warning(s))", warns))
	case warns == 0:
		fmt.Fprintln(w, color.RedString("%d error(s)", errs))
	default:
		fmt.Fprintln(w, color.RedString("%d error(s)", errs)+fmt.Sprintf(", %d warning(s)", warns))
	}

	return r.OK()
}

// marker returns the colored visual marker for a result level.
func marker(level manifest.Level) string {
	switch level {
	case manifest.LevelPass:
		return color.GreenString("✓")
	case manifest.LevelFail:
		return color.RedString("✗")
	case manifest.LevelWarn:
		return color.YellowString("!")
	default:
		return "?"
	}
}
