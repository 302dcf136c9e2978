// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"strconv"
)

// Reader defines an interface for environment variable access.
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// MapReader implements Reader over a fixed map. It is intended for tests.
type MapReader map[string]string

// Getenv returns the mapped value for the key, or the empty string.
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// IsCI reports whether the process appears to run under a CI system. Most CI
// providers set CI=true; any value that parses as true counts.
func IsCI(r Reader) bool {
	ci, err := strconv.ParseBool(r.Getenv("CI"))
	return err == nil && ci
}
