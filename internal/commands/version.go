// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tz-bb/r2pb/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// no configuration needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}
}
