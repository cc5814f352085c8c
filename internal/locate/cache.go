// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package locate

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DefaultCacheDir returns r2pb under the user cache directory.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "r2pb")
	}
	return filepath.Join(os.TempDir(), "r2pb")
}

// CachedRepositories lists the repository clones under cacheDir, relative to
// it (e.g. "noetic/common_msgs"), sorted.
func CachedRepositories(cacheDir string) ([]string, error) {
	if !isDir(cacheDir) {
		return nil, nil
	}
	var repos []string
	err := filepath.WalkDir(cacheDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || p == cacheDir {
			return nil
		}
		if isDir(filepath.Join(p, ".git")) {
			rel, err := filepath.Rel(cacheDir, p)
			if err != nil {
				return err
			}
			repos = append(repos, filepath.ToSlash(rel))
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(repos)
	return repos, nil
}

// Clean removes every cached repository.
func Clean(cacheDir string) error {
	return os.RemoveAll(cacheDir)
}
