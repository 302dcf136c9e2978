// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package manifest

import "fmt"

// Level classifies a single validation entry.
type Level string

// Validation entry levels.
const (
	LevelPass Level = "pass"
	LevelFail Level = "fail"
	LevelWarn Level = "warn"
)

// Entry is one check outcome in a validation run.
type Entry struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Result is the ordered outcome of a validation run. It is built fresh per
// run and never mutated after the run completes.
type Result struct {
	// Path is the resolved path of the manifest under validation.
	Path string

	// Entries holds the check outcomes in evaluation order.
	Entries []Entry
}

// AddPass appends a pass entry.
func (r *Result) AddPass(format string, args ...any) {
	r.Entries = append(r.Entries, Entry{Level: LevelPass, Message: fmt.Sprintf(format, args...)})
}

// AddFail appends a fail entry.
func (r *Result) AddFail(format string, args ...any) {
	r.Entries = append(r.Entries, Entry{Level: LevelFail, Message: fmt.Sprintf(format, args...)})
}

// AddWarn appends a warning entry.
func (r *Result) AddWarn(format string, args ...any) {
	r.Entries = append(r.Entries, Entry{Level: LevelWarn, Message: fmt.Sprintf(format, args...)})
}

// Errors returns the number of fail entries.
func (r *Result) Errors() int {
	return r.count(LevelFail)
}

// Warnings returns the number of warning entries.
func (r *Result) Warnings() int {
	return r.count(LevelWarn)
}

// OK reports overall success. Warnings never affect success.
func (r *Result) OK() bool {
	return r.Errors() == 0
}

func (r *Result) count(level Level) int {
	n := 0
	for _, e := range r.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
