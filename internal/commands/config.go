// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tz-bb/r2pb/internal/config"
	"github.com/tz-bb/r2pb/internal/prompts"
	"github.com/tz-bb/r2pb/internal/session"
	"github.com/tz-bb/r2pb/internal/translate"
)

type configInitOptions struct {
	distro string
	output string
	format string
	force  bool
}

func registerConfigCmd(parent *cobra.Command, translators translate.Register) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the r2pb configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(translators))

	parent.AddCommand(cmd)
}

func newConfigInitCmd(translators translate.Register) *cobra.Command {
	opts := &configInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Long: `Write r2pb.yaml (or the file named by --config) with the default
distro, output directory, format and ROS message repositories.`,
		Example: `  # Create r2pb.yaml in the current directory
  r2pb config init

  # Start from another distro and format
  r2pb config init -d humble --format jsonschema

  # Replace an existing file
  r2pb config init --force`,
		Args: cobra.NoArgs,
		// the file may not exist yet or may be the one being replaced
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.distro, "ros-distro", "d", "", "ROS distribution (e.g., noetic, melodic)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory")
	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, translators translate.Register, opts *configInitOptions) error {
	path, err := cmd.Flags().GetString(session.ConfigFlag)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	cfg := config.Default()
	if opts.distro != "" {
		cfg.Distro = opts.distro
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.format != "" {
		if _, err := translators.Get(opts.format); err != nil {
			return fmt.Errorf("unsupported format %q. Available formats: %s",
				opts.format, strings.Join(translators.Available(), ", "))
		}
		cfg.Format = opts.format
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: path},
		{Label: "Distro", Value: cfg.Distro},
		{Label: "Format", Value: cfg.Format},
	}, "Configuration written.")
	return nil
}
