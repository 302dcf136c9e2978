// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package publish submits a plugin to the central registry.

The workflow validates the local manifest, resolves the plugin image to an
immutable digest, renders a registry entry, checks it against the embedded
registry entry schema and opens a pull request against the registry
repository. Validation gates the whole run: no external command is executed
for a manifest that does not pass.

The gh and git CLIs are driven through the Runner interface so the workflow
can be tested without a network. Image digests are resolved in-process with
go-containerregistry rather than by shelling out to docker, which keeps
publishing possible on hosts without a container runtime.
*/
package publish
