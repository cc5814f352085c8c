// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tz-bb/r2pb/internal/locate"
	"github.com/tz-bb/r2pb/internal/prompts"
	"github.com/tz-bb/r2pb/internal/session"
)

func newCacheListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached repositories",
		Example: `  # Show cloned message repositories
  r2pb cache list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			repos, err := locate.CachedRepositories(s.Config.CacheDir)
			if err != nil {
				return fmt.Errorf("failed to read cache: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(repos) == 0 {
				fmt.Fprintf(out, "No cached repositories in %s\n", s.Config.CacheDir)
				return nil
			}
			fmt.Fprintf(out, "Cached repositories in %s:\n", s.Config.CacheDir)
			for _, r := range repos {
				fmt.Fprintf(out, "  %s\n", r)
			}
			return nil
		},
	}
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove all cached repositories",
		Example: `  # Force fresh clones on the next conversion
  r2pb cache clean`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			repos, err := locate.CachedRepositories(s.Config.CacheDir)
			if err != nil {
				return fmt.Errorf("failed to read cache: %w", err)
			}
			if err := locate.Clean(s.Config.CacheDir); err != nil {
				return fmt.Errorf("failed to clean cache: %w", err)
			}

			prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
				{Label: "Cache", Value: s.Config.CacheDir},
				{Label: "Removed", Value: strconv.Itoa(len(repos))},
			}, "Cache cleaned.")
			return nil
		},
	}
}
