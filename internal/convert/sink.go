// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrWrite indicates generated output could not be persisted.
var ErrWrite = errors.New("failed to write output")

// Sink persists rendered files.
type Sink interface {
	// Write stores content for pkg/name, replacing any previous output.
	Write(pkg, name, content string) error
}

// FileSink writes <Root>/<pkg>/<name><Ext>, creating directories as needed.
type FileSink struct {
	Root string
	Ext  string
}

// Path returns the output file for pkg/name.
func (s *FileSink) Path(pkg, name string) string {
	return filepath.Join(s.Root, pkg, name+s.Ext)
}

// Write implements Sink.
func (s *FileSink) Write(pkg, name, content string) error {
	if err := os.MkdirAll(filepath.Join(s.Root, pkg), 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.WriteFile(s.Path(pkg, name), []byte(content), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
