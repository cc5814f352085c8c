// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tz-bb/r2pb/internal/convert"
	"github.com/tz-bb/r2pb/internal/prompts"
	"github.com/tz-bb/r2pb/internal/session"
	"github.com/tz-bb/r2pb/internal/translate"
)

type convertOptions struct {
	output      string
	format      string
	distro      string
	searchPaths []string
	strict      bool
	offline     bool
}

func newConvertCmd(translators translate.Register) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [package/Type]",
		Short: "Convert a message type and its dependencies",
		Long: fmt.Sprintf(`Convert a ROS message type and every type it references.

Each type is written to <output>/<package>/<Type><ext>.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  r2pb convert

  # Convert a message with its dependencies
  r2pb convert geometry_msgs/PoseStamped -o proto

  # Use local message packages and a different distro
  r2pb convert my_msgs/Status -p ./src -d melodic

  # Fail on lines the parser would skip
  r2pb convert my_msgs/Status --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default from config, \".\")")
	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on message lines that cannot be parsed")
	addLocateFlags(cmd, opts)

	return cmd
}

// addLocateFlags registers the flags that control where definitions are found.
func addLocateFlags(cmd *cobra.Command, opts *convertOptions) {
	cmd.Flags().StringVarP(&opts.distro, "ros-distro", "d", "", "ROS distribution (e.g., noetic, melodic)")
	cmd.Flags().StringArrayVarP(&opts.searchPaths, "search-path", "p", nil, "Directory holding message packages (repeatable)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Do not clone or update repositories")
}

func runConvert(cmd *cobra.Command, translators translate.Register, opts *convertOptions, args []string) error {
	s, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	s = withFlagOverrides(cmd, s, opts)
	cfg := s.Config

	var typeName string
	if len(args) == 1 {
		typeName = args[0]
	}
	format := opts.format
	if format == "" && typeName != "" {
		format = cfg.Format
	}
	output := cfg.Output

	// Prompt for any missing values
	if err := prompts.RunConvertForm(
		&typeName, &format, &output,
		len(args) == 0 && !cmd.Flags().Changed("output"),
		translators.Available(),
	); err != nil {
		return err
	}
	if format == "" {
		format = cfg.Format
	}

	translator, err := translators.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(translators.Available(), ", "))
	}

	locator, err := s.Locator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Converting %s for ROS %s...\n", typeName, cfg.Distro)
	fmt.Fprintf(out, "Output directory: %s\n", output)

	summary, err := convert.Run(cmd.Context(), typeName, output, convert.Options{
		Locator:    locator,
		Translator: translator,
		Strict:     cfg.Strict,
		Out:        out,
	})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Conversion failed.")
		return err
	}

	prompts.PrintResult(out, []prompts.ResultField{
		{Label: "Type", Value: typeName},
		{Label: "Format", Value: translator.Name()},
		{Label: "Output", Value: output},
		{Label: "Files", Value: strconv.Itoa(len(summary.Written))},
	}, "Conversion finished successfully.")

	return nil
}

// withFlagOverrides returns a session whose configuration reflects the
// command-line flags that were set. The loaded session is left untouched.
func withFlagOverrides(cmd *cobra.Command, s *session.Context, opts *convertOptions) *session.Context {
	cfg := *s.Config
	flags := cmd.Flags()

	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("ros-distro") {
		cfg.Distro = opts.distro
	}
	if flags.Changed("search-path") {
		cfg.SearchPaths = append(append([]string{}, opts.searchPaths...), cfg.SearchPaths...)
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("offline") {
		cfg.Offline = opts.offline
	}

	return &session.Context{Config: &cfg, Out: s.Out}
}
