// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package cli wires the nexus-plugin commands. Command logic lives in the
// scaffold, manifest, policy and publish packages; this package only parses
// flags, picks the prompt source and renders outcomes.
package cli
