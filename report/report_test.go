// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusworks/plugin-kit/manifest"
)

func sampleResult() *manifest.Result {
	r := &manifest.Result{Path: "/tmp/p/plugin.json"}
	r.AddPass("required field %q present", "id")
	r.AddFail("unknown permission %q", "bogus")
	r.AddWarn("no Dockerfile found next to plugin.json")
	return r
}

func TestJSONEmitsSingleRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ok, err := JSON(&buf, sampleResult())
	require.NoError(t, err)
	assert.False(t, ok)

	var rec Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "/tmp/p/plugin.json", rec.Path)
	assert.False(t, rec.Success)
	assert.Equal(t, 1, rec.Errors)
	assert.Equal(t, 1, rec.Warnings)
	require.Len(t, rec.Results, 3)
	assert.Equal(t, manifest.LevelFail, rec.Results[1].Level)
}

func TestJSONNeverEmitsNullResults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := JSON(&buf, &manifest.Result{Path: "p"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"results": []`)
}

func TestHumanOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ok := Human(&buf, sampleResult())
	assert.False(t, ok)

	out := buf.String()
	assert.Contains(t, out, "Validating /tmp/p/plugin.json")
	assert.Contains(t, out, `required field "id" present`)
	assert.Contains(t, out, `unknown permission "bogus"`)
	assert.Contains(t, out, "1 error(s)")
	assert.Contains(t, out, "1 warning(s)")
}

func TestHumanOutputPassing(t *testing.T) {
	t.Parallel()

	r := &manifest.Result{Path: "p"}
	r.AddPass("required field %q present", "id")

	var buf bytes.Buffer
	ok := Human(&buf, r)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "validation passed")
	assert.NotContains(t, buf.String(), "warning")
}

func TestHumanWarningsDoNotFail(t *testing.T) {
	t.Parallel()

	r := &manifest.Result{Path: "p"}
	r.AddPass("required field %q present", "id")
	r.AddWarn("no Dockerfile found next to plugin.json")

	var buf bytes.Buffer
	ok := Human(&buf, r)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "validation passed (1 warning(s))")
}
