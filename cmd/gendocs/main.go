// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Command gendocs generates markdown documentation for the r2pb CLI.
//
// Usage:
//
//	go run ./cmd/gendocs [output-dir]
//
// Default output directory is ./docs/cli.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"
	"github.com/tz-bb/r2pb/internal/commands"
	"github.com/tz-bb/r2pb/internal/translate"
	"github.com/tz-bb/r2pb/internal/translate/jsonschema"
	"github.com/tz-bb/r2pb/internal/translate/protobuf"
)

func main() {
	dir := "./docs/cli"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	translators := make(translate.Register)
	translators.Add(&protobuf.Translator{})
	translators.Add(&jsonschema.Translator{})

	rootCmd := commands.NewRootCmd(translators)
	rootCmd.DisableAutoGenTag = true

	if err := os.MkdirAll(dir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}

	if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	// Rename r2pb.md to index.md
	oldPath := filepath.Join(dir, "r2pb.md")
	newPath := filepath.Join(dir, "index.md")
	if err := os.Rename(oldPath, newPath); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error renaming %s to %s: %v\n", oldPath, newPath, err)
		os.Exit(1)
	}

	fmt.Printf("Documentation generated in %s\n", dir)
}
