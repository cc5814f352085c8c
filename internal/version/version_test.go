// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillFromBuildInfo(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "dev", "none", "unknown"
	fillFromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	})

	assert.Equal(t, "v0.2.0", Short())
	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2026-10-01T12:00:00Z", Date)
	assert.Contains(t, Info(), "r2pb version v0.2.0 (commit: 0123456, built: 2026-10-01T12:00:00Z")
}

func TestFillFromBuildInfo_KeepsLdflags(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "1.0.0", "abcdef0", "2026-01-01"
	fillFromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fffffffffff"}},
	})

	assert.Equal(t, "1.0.0", Version)
	assert.Equal(t, "abcdef0", Commit)
	assert.Equal(t, "2026-01-01", Date)
}
