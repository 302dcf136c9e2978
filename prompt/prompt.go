// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package prompt abstracts user input so commands can run interactively or
// fully scripted without branching through business logic.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Source supplies answers to questions a command needs. The implementation is
// chosen once at startup; everything downstream is unaware of interactivity.
type Source interface {
	// Ask returns the answer for a question, or def when the answer is
	// empty.
	Ask(label, def string) (string, error)

	// Confirm returns a yes/no answer, or def when the answer is empty.
	Confirm(label string, def bool) (bool, error)
}

// Terminal reads answers interactively from a stream, normally stdin.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Source prompting on out and reading from in.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Ask prints the label with its default and reads one line.
func (t *Terminal) Ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(t.out, "%s: ", label)
	}
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm prints the label and interprets the answer as yes/no.
func (t *Terminal) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer, err := t.Ask(fmt.Sprintf("%s (%s)", label, hint), "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Static answers every question from a fixed map, falling back to defaults.
// It backs --non-interactive runs and CI.
type Static struct {
	// Answers maps question labels to answers.
	Answers map[string]string
}

// Ask returns the mapped answer or the default.
func (s *Static) Ask(label, def string) (string, error) {
	if answer, ok := s.Answers[label]; ok && answer != "" {
		return answer, nil
	}
	return def, nil
}

// Confirm always returns the default; scripted runs opt in through flags.
func (s *Static) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}
