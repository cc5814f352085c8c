// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package locate finds ROS message definitions on disk, behind URLs, and in
// cached clones of remote repositories.
package locate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates no message definition exists for a package and type.
var ErrNotFound = errors.New("message definition not found")

// Locator returns the raw .msg text of a message type.
type Locator interface {
	// Resolve returns the definition of pkg/name or an error wrapping ErrNotFound.
	Resolve(ctx context.Context, pkg, name string) (string, error)
}

// Chain tries each locator in order. The first definition found wins; any
// error other than ErrNotFound stops the search.
type Chain []Locator

// Resolve implements Locator.
func (c Chain) Resolve(ctx context.Context, pkg, name string) (string, error) {
	for _, l := range c {
		text, err := l.Resolve(ctx, pkg, name)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", notFound(pkg, name)
}

func notFound(pkg, name string) error {
	return fmt.Errorf("%w: %s/%s", ErrNotFound, pkg, name)
}

// expand substitutes {package}, {type} and {distro} placeholders.
func expand(s, pkg, name, distro string) string {
	return strings.NewReplacer(
		"{package}", pkg,
		"{type}", name,
		"{distro}", distro,
	).Replace(s)
}

// findMsgFile looks for name.msg in the msg/ subdirectory of a package, then
// in the package directory itself.
func findMsgFile(pkgDir, name string) (string, bool) {
	candidates := []string{
		filepath.Join(pkgDir, "msg", name+".msg"),
		filepath.Join(pkgDir, name+".msg"),
	}
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from configured search roots
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
