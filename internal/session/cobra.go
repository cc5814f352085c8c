// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package session

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// ConfigFlag is the persistent flag naming the configuration file.
const ConfigFlag = "config"

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("configuration not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the configuration
// named by the --config flag and stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return err
	}
	ctx, err := Load(cmd.Context(), path, os.Getenv)
	if err != nil {
		return err
	}
	if s := From(ctx); s != nil {
		s.Out = cmd.OutOrStdout()
	}
	cmd.SetContext(ctx)
	return nil
}
