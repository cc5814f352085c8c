// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/tz-bb/r2pb/internal/commands"
	"github.com/tz-bb/r2pb/internal/translate"
	"github.com/tz-bb/r2pb/internal/translate/jsonschema"
	"github.com/tz-bb/r2pb/internal/translate/protobuf"
)

// RegisterTranslators returns every available output format.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&protobuf.Translator{})
	translators.Add(&jsonschema.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(RegisterTranslators())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
