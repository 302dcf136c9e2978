// SPDX-FileCopyrightText: Copyright 2026 Nexusworks, Inc.
// SPDX-License-Identifier: Apache-2.0

package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/google/go-containerregistry/pkg/crane"
	"github.com/opencontainers/go-digest"

	"github.com/nexusworks/plugin-kit/logger"
	"github.com/nexusworks/plugin-kit/manifest"
)

// DefaultRegistry is the repository slug of the central plugin registry.
const DefaultRegistry = "nexusworks/plugin-registry"

// entryDir is the directory inside the registry repository holding plugin
// entries.
const entryDir = "plugins"

// DigestResolver resolves a container image reference to its manifest digest.
type DigestResolver func(ctx context.Context, image string) (string, error)

// CraneResolver resolves image digests against the remote registry using
// go-containerregistry.
func CraneResolver(ctx context.Context, image string) (string, error) {
	d, err := crane.Digest(image, crane.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to resolve digest for %s: %w", image, err)
	}
	return d, nil
}

// Publisher pushes a plugin's registry entry to the central registry by
// opening a pull request against the registry repository.
type Publisher struct {
	// Runner executes the gh and git CLIs.
	Runner Runner
	// Resolver resolves the plugin image to a digest.
	Resolver DigestResolver
	// Registry is the registry repository slug, owner/name.
	Registry string
	// WorkDir is where registry clones are created.
	WorkDir string
	// DryRun stops the workflow after the entry is built and checked.
	DryRun bool
}

// New returns a Publisher wired to the real gh/git CLIs, the remote image
// registry, and a work directory under the user cache.
func New() *Publisher {
	return &Publisher{
		Runner:   &ExecRunner{},
		Resolver: CraneResolver,
		Registry: DefaultRegistry,
		WorkDir:  filepath.Join(xdg.CacheHome, "nexus-plugin"),
	}
}

// Summary describes the outcome of a publish run.
type Summary struct {
	// Entry is the registry entry that was built.
	Entry *Entry
	// EntryJSON is the rendered registry file content.
	EntryJSON []byte
	// ContentHash is the digest of the rendered entry.
	ContentHash digest.Digest
	// Branch is the branch the entry was pushed to. Empty for dry runs and
	// unchanged entries.
	Branch string
	// Unchanged is true when the registry already holds identical content.
	Unchanged bool
	// PullRequest is the URL of the opened pull request, when one was.
	PullRequest string
	// DryRun echoes the publisher configuration.
	DryRun bool
}

// Publish validates the plugin at path and pushes its registry entry. The
// validation gate is absolute: no external command runs unless the manifest
// passes.
func (p *Publisher) Publish(ctx context.Context, path string) (*Summary, error) {
	result := manifest.Validate(path)
	if !result.OK() {
		return nil, fmt.Errorf("%w: %d error(s), run validate for details", ErrValidationFailed, result.Errors())
	}

	m, err := manifest.FromFile(path)
	if err != nil {
		return nil, err
	}

	resolved, err := p.Resolver(ctx, m.Image)
	if err != nil {
		return nil, err
	}
	if m.ImageDigest != "" && m.ImageDigest != resolved {
		return nil, fmt.Errorf("%w: manifest pins %s but registry reports %s", ErrDigestMismatch, m.ImageDigest, resolved)
	}
	logger.Debugw("resolved image digest", "image", m.Image, "digest", resolved)

	entry := NewEntry(m, resolved)
	entryJSON, err := entry.MarshalIndent()
	if err != nil {
		return nil, err
	}
	if err := ValidateEntryBytes(entryJSON); err != nil {
		return nil, err
	}

	hash := digest.FromBytes(entryJSON)
	summary := &Summary{
		Entry:       entry,
		EntryJSON:   entryJSON,
		ContentHash: hash,
		DryRun:      p.DryRun,
	}
	if p.DryRun {
		return summary, nil
	}

	unchanged, err := p.remoteUnchanged(ctx, entry.ID, entryJSON)
	if err != nil {
		return nil, err
	}
	if unchanged {
		logger.Infow("registry entry already up to date", "plugin", entry.ID)
		summary.Unchanged = true
		return summary, nil
	}

	branch := fmt.Sprintf("plugin/%s-%s", entry.ID, hash.Encoded()[:12])
	summary.Branch = branch

	prURL, err := p.openPullRequest(ctx, entry, entryJSON, branch)
	if err != nil {
		return nil, err
	}
	summary.PullRequest = prURL
	return summary, nil
}

// entryPath returns the entry file path inside the registry repository.
func entryPath(id string) string {
	return fmt.Sprintf("%s/%s.json", entryDir, id)
}

// remoteUnchanged reports whether the registry already holds identical entry
// content. A missing remote entry simply means there is something to publish.
func (p *Publisher) remoteUnchanged(ctx context.Context, id string, entryJSON []byte) (bool, error) {
	remote, err := p.Runner.Run(ctx, "gh",
		"api", fmt.Sprintf("repos/%s/contents/%s", p.Registry, entryPath(id)),
		"-H", "Accept: application/vnd.github.raw+json")
	if err != nil {
		logger.Debugw("no remote entry found", "plugin", id)
		return false, nil
	}
	return strings.TrimSpace(remote) == strings.TrimSpace(string(entryJSON)), nil
}

// openPullRequest clones the registry, commits the entry on a fresh branch,
// pushes it and opens the pull request. It returns the PR URL.
func (p *Publisher) openPullRequest(ctx context.Context, entry *Entry, entryJSON []byte, branch string) (string, error) {
	clone := filepath.Join(p.WorkDir, branch)
	if err := os.MkdirAll(filepath.Dir(clone), 0o750); err != nil {
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}
	if err := os.RemoveAll(clone); err != nil {
		return "", fmt.Errorf("failed to clear stale clone: %w", err)
	}

	if _, err := p.Runner.Run(ctx, "gh", "repo", "clone", p.Registry, clone, "--", "--depth", "1"); err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(clone); err != nil {
			logger.Warnf("failed to clean up clone %s: %v", clone, err)
		}
	}()

	target := filepath.Join(clone, entryDir, entry.ID+".json")
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", fmt.Errorf("failed to create entry directory: %w", err)
	}
	if err := os.WriteFile(target, entryJSON, 0o600); err != nil {
		return "", fmt.Errorf("failed to write registry entry: %w", err)
	}

	title := fmt.Sprintf("Add %s %s", entry.ID, entry.Version)
	steps := [][]string{
		{"git", "-C", clone, "checkout", "-b", branch},
		{"git", "-C", clone, "add", entryPath(entry.ID)},
		{"git", "-C", clone, "commit", "-m", title},
		{"git", "-C", clone, "push", "origin", branch},
	}
	for _, step := range steps {
		if _, err := p.Runner.Run(ctx, step[0], step[1:]...); err != nil {
			return "", err
		}
	}

	body := fmt.Sprintf("Publishes %s version %s pinned to %s.", entry.Name, entry.Version, entry.ImageDigest)
	prURL, err := p.Runner.Run(ctx, "gh", "pr", "create",
		"--repo", p.Registry,
		"--head", branch,
		"--title", title,
		"--body", body)
	if err != nil {
		return "", err
	}

	logger.Infow("opened registry pull request", "plugin", entry.ID, "url", prURL)
	return prURL, nil
}
