// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tz-bb/r2pb/internal/msg"
	"github.com/tz-bb/r2pb/internal/prompts"
	"github.com/tz-bb/r2pb/internal/session"
	"github.com/tz-bb/r2pb/internal/translate"
)

const jsonSchemaFormat = "jsonschema"

type describeOptions struct {
	convertOptions
	json bool
}

func newDescribeCmd(translators translate.Register) *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe package/Type",
		Short: "Show the parsed definition of a message type",
		Long: `Locate and parse a single message type and show its fields, constants,
dependencies and any lines the parser skipped.`,
		Example: `  # Show a message definition
  r2pb describe std_msgs/Header

  # Print it as a JSON Schema document
  r2pb describe std_msgs/Header --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, translators, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print as a JSON Schema document")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on message lines that cannot be parsed")
	addLocateFlags(cmd, &opts.convertOptions)

	return cmd
}

func runDescribe(cmd *cobra.Command, translators translate.Register, opts *describeOptions, typeName string) error {
	s, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	s = withFlagOverrides(cmd, s, &opts.convertOptions)

	name, err := msg.ParseQualifiedName(typeName)
	if err != nil {
		return err
	}

	locator, err := s.Locator()
	if err != nil {
		return err
	}

	text, err := locator.Resolve(cmd.Context(), name.Package, name.Name)
	if err != nil {
		return err
	}

	parsed, warnings := msg.ParseStrict(text)
	if len(warnings) > 0 && s.Config.Strict {
		return fmt.Errorf("%s: %w", typeName, warnings)
	}

	out := cmd.OutOrStdout()

	if opts.json {
		translator, err := translators.Get(jsonSchemaFormat)
		if err != nil {
			return err
		}
		result, err := translator.Translate(name, parsed)
		if err != nil {
			return err
		}
		_, err = out.Write(result.Content)
		return err
	}

	printParsed(out, name, parsed)
	prompts.PrintWarnings(cmd.ErrOrStderr(), typeName, warnings)
	return nil
}

func printParsed(w io.Writer, name msg.QualifiedName, parsed *msg.ParsedType) {
	heading := lipgloss.NewStyle().Bold(true)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))

	fmt.Fprintln(w, heading.Render(name.String()))

	fmt.Fprintln(w, label.Render("Fields:"))
	for i, f := range parsed.Fields {
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, f.Type, f.Name)
	}

	if len(parsed.Constants) > 0 {
		fmt.Fprintln(w, label.Render("Constants:"))
		for _, c := range parsed.Constants {
			fmt.Fprintf(w, "  %s %s = %s\n", c.Type, c.Name, c.Value)
		}
	}

	var deps []string
	seen := make(map[string]bool)
	for _, f := range parsed.Fields {
		if msg.IsQualified(f.Type) && !seen[f.Type] {
			seen[f.Type] = true
			deps = append(deps, f.Type)
		}
	}
	if len(deps) > 0 {
		fmt.Fprintln(w, label.Render("Dependencies:"))
		for _, d := range deps {
			fmt.Fprintf(w, "  %s\n", d)
		}
	}
}
