// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusworks/plugin-kit/manifest"
)

func sampleRoot() map[string]any {
	return map[string]any{
		"id":          "com.a.b",
		"name":        "X",
		"version":     "1.0.0",
		"permissions": []any{"network"},
		"ui":          map[string]any{"port": float64(80)},
	}
}

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "valid",
			content: `rules:
  - name: has_version
    expression: 'manifest.version != ""'
`,
		},
		{
			name:    "no rules",
			content: "rules: []\n",
			wantErr: "declares no rules",
		},
		{
			name: "missing name",
			content: `rules:
  - expression: 'true'
`,
			wantErr: "has no name",
		},
		{
			name: "missing expression",
			content: `rules:
  - name: empty
`,
			wantErr: "has no expression",
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "failed to parse policy file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rules, err := Load(writePolicy(t, tt.content))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, rules)
		})
	}
}

func TestCompileRejectsBrokenExpressions(t *testing.T) {
	t.Parallel()

	_, err := Compile([]Rule{{Name: "broken", Expression: `manifest.version ==`}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRuleCheck)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rule       Rule
		wantLevel  manifest.Level
		wantInMsg  string
		wantErrors int
	}{
		{
			name:      "satisfied rule",
			rule:      Rule{Name: "has_version", Expression: `manifest.version == "1.0.0"`},
			wantLevel: manifest.LevelPass,
			wantInMsg: `policy "has_version" satisfied`,
		},
		{
			name:       "violated rule with message",
			rule:       Rule{Name: "no_network", Expression: `!("network" in manifest.permissions)`, Message: "network access is forbidden"},
			wantLevel:  manifest.LevelFail,
			wantInMsg:  "network access is forbidden",
			wantErrors: 1,
		},
		{
			name:       "violated rule without message",
			rule:       Rule{Name: "big_port", Expression: `manifest.ui.port >= 1024.0`},
			wantLevel:  manifest.LevelFail,
			wantInMsg:  `policy "big_port" violated`,
			wantErrors: 1,
		},
		{
			name:       "evaluation error on missing field",
			rule:       Rule{Name: "needs_author", Expression: `manifest.author != ""`},
			wantLevel:  manifest.LevelFail,
			wantInMsg:  "could not be evaluated",
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, err := Compile([]Rule{tt.rule})
			require.NoError(t, err)
			require.Equal(t, 1, set.Len())

			r := &manifest.Result{Path: "plugin.json"}
			set.Apply(sampleRoot(), r)

			require.Len(t, r.Entries, 1)
			assert.Equal(t, tt.wantLevel, r.Entries[0].Level)
			assert.Contains(t, r.Entries[0].Message, tt.wantInMsg)
			assert.Equal(t, tt.wantErrors, r.Errors())
		})
	}
}

func TestCompileFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := writePolicy(t, `rules:
  - name: id_is_reverse_dns
    expression: 'manifest.id.contains(".")'
  - name: has_name
    expression: 'manifest.name != ""'
`)

	set, err := CompileFile(path)
	require.NoError(t, err)

	r := &manifest.Result{Path: "plugin.json"}
	set.Apply(sampleRoot(), r)
	assert.Equal(t, 0, r.Errors())
	assert.Len(t, r.Entries, 2)
}
