// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTranslators(t *testing.T) {
	assert.Equal(t, []string{"jsonschema", "protobuf"}, RegisterTranslators().Available())
}

func TestRun_Convert(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("R2PB_CACHE_DIR", filepath.Join(dir, "cache"))

	msgDir := filepath.Join(dir, "src", "std_msgs", "msg")
	require.NoError(t, os.MkdirAll(msgDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(msgDir, "String.msg"), []byte("string data\n"), 0o600))

	err := Run(context.Background(), []string{
		"convert", "std_msgs/String",
		"-o", filepath.Join(dir, "out"),
		"-p", filepath.Join(dir, "src"),
		"--offline",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "out", "std_msgs", "String.proto"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "string data = 1;")
}
