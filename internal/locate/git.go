// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package locate

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
)

// Repository is a git repository holding one or more ROS message packages.
type Repository struct {
	URL    string `yaml:"url"`
	Branch string `yaml:"branch,omitempty"` // may contain {distro}
}

// DefaultFallback is the repository searched for packages without their own repository.
const DefaultFallback = "common_msgs"

// DefaultRepositories returns the well-known ROS message repositories.
func DefaultRepositories() map[string]Repository {
	return map[string]Repository{
		"std_msgs":    {URL: "https://github.com/ros/std_msgs.git"},
		"common_msgs": {URL: "https://github.com/ros/common_msgs.git", Branch: "{distro}-devel"},
	}
}

// GitRunner runs git with the given arguments.
type GitRunner func(ctx context.Context, args ...string) error

func runGit(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Git fetches message packages from remote repositories into a local cache.
// Each repository is cloned or updated at most once per Git value.
type Git struct {
	CacheDir     string
	Distro       string
	Repositories map[string]Repository
	Fallback     string
	Offline      bool      // only read existing clones
	Run          GitRunner // defaults to the git binary
	Out          io.Writer // progress output, may be nil

	fetched map[string]string
}

// Resolve implements Locator.
func (g *Git) Resolve(ctx context.Context, pkg, name string) (string, error) {
	pkgDir, err := g.FindPackage(ctx, pkg)
	if err != nil {
		return "", err
	}
	p, ok := findMsgFile(pkgDir, name)
	if !ok {
		return "", notFound(pkg, name)
	}
	return readFile(p)
}

// FindPackage returns the local directory of a package, fetching the
// repository that holds it when needed. A repository named after the package
// is tried first, then the fallback repository.
func (g *Git) FindPackage(ctx context.Context, pkg string) (string, error) {
	if repo, ok := g.Repositories[pkg]; ok {
		return g.fetchPackage(ctx, pkg, pkg, repo)
	}

	if repo, ok := g.Repositories[g.Fallback]; ok && g.Fallback != "" {
		return g.fetchPackage(ctx, pkg, g.Fallback, repo)
	}

	return "", fmt.Errorf("%w: package %q is not in any known repository", ErrNotFound, pkg)
}

// RepoPath returns where a repository is cloned.
func (g *Git) RepoPath(repoName string) string {
	return filepath.Join(g.CacheDir, g.Distro, repoName)
}

func (g *Git) fetchPackage(ctx context.Context, pkg, repoName string, repo Repository) (string, error) {
	repoPath, err := g.fetch(ctx, repoName, repo)
	if err != nil {
		return "", err
	}

	pkgPath := filepath.Join(repoPath, pkg)
	if isDir(pkgPath) {
		return pkgPath, nil
	}

	// single-package repositories keep the package at the root
	if repoName == pkg {
		if _, err := os.Stat(filepath.Join(repoPath, "package.xml")); err == nil {
			return repoPath, nil
		}
		if isDir(filepath.Join(repoPath, "msg")) {
			return repoPath, nil
		}
	}

	return "", fmt.Errorf("%w: package %q not in repository %q", ErrNotFound, pkg, repoName)
}

func (g *Git) fetch(ctx context.Context, repoName string, repo Repository) (string, error) {
	if p, ok := g.fetched[repoName]; ok {
		return p, nil
	}
	if err := validateRepoDirName(repoName); err != nil {
		return "", err
	}

	repoPath := g.RepoPath(repoName)
	run := g.Run
	if run == nil {
		run = runGit
	}

	switch {
	case g.Offline:
		if !isDir(repoPath) {
			return "", fmt.Errorf("%w: repository %q is not cached (offline)", ErrNotFound, repoName)
		}
	case isDir(repoPath):
		g.logf("Updating repository: %s...\n", repoName)
		if err := run(ctx, "-C", repoPath, "pull", "--ff-only"); err != nil {
			return "", fmt.Errorf("failed to update repository %s: %w", repoName, err)
		}
	default:
		g.logf("Cloning repository: %s from %s...\n", repoName, repo.URL)
		if err := os.MkdirAll(filepath.Dir(repoPath), 0o750); err != nil {
			return "", fmt.Errorf("failed to create cache directory: %w", err)
		}
		args := []string{"clone", "--depth", "1"}
		if b := strings.TrimSpace(expand(repo.Branch, "", "", g.Distro)); b != "" {
			args = append(args, "--branch", b, "--single-branch")
		}
		args = append(args, repo.URL, repoPath)
		if err := run(ctx, args...); err != nil {
			return "", fmt.Errorf("failed to clone repository %s: %w", repoName, err)
		}
	}

	if g.fetched == nil {
		g.fetched = make(map[string]string)
	}
	g.fetched[repoName] = repoPath
	return repoPath, nil
}

func (g *Git) logf(format string, args ...any) {
	if g.Out != nil {
		fmt.Fprintf(g.Out, format, args...)
	}
}

func validateRepoDirName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("invalid repository name %q", name)
	}
	if strings.ContainsAny(name, `/\`) || path.Clean(name) != name {
		return fmt.Errorf("repository name must be a single path segment: %q", name)
	}
	return nil
}
