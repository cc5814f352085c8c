// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/tz-bb/r2pb/internal/config"
	"github.com/tz-bb/r2pb/internal/session"
	"github.com/tz-bb/r2pb/internal/translate"
	"github.com/tz-bb/r2pb/internal/version"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "r2pb",
		Short: "Convert ROS .msg definitions to Protocol Buffers",
		Long: `r2pb converts a ROS message type and every type it depends on into
Protocol Buffers (.proto) files, one file per type, organized by package.

Message definitions are searched in local search paths, remote URLs and
cached clones of the ROS message repositories, in that order.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: session.PreRunLoad,
	}

	rootCmd.PersistentFlags().String(session.ConfigFlag, config.FileName, "Path to the r2pb configuration file")

	rootCmd.AddCommand(newConvertCmd(translators))
	rootCmd.AddCommand(newDescribeCmd(translators))
	registerCacheCmd(rootCmd)
	registerConfigCmd(rootCmd, translators)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func registerCacheCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the repository cache",
	}

	cmd.AddCommand(newCacheListCmd())
	cmd.AddCommand(newCacheCleanCmd())

	parent.AddCommand(cmd)
}
