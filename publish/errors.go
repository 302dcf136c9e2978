// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package publish

import "errors"

// Sentinel errors for the publish workflow.
var (
	// ErrValidationFailed is returned when the manifest does not pass
	// validation. Publishing never proceeds past this.
	ErrValidationFailed = errors.New("manifest validation failed")

	// ErrDigestMismatch is returned when the manifest pins an image digest
	// that does not match the digest the registry reports for the image.
	ErrDigestMismatch = errors.New("image digest mismatch")
)
