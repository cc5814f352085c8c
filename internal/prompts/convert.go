// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package prompts

import "github.com/charmbracelet/huh"

// RunConvertForm prompts for whatever the convert command is missing.
// Fields that already hold a value are not asked for.
func RunConvertForm(typeName, format, output *string, askOutput bool, formats []string) error {
	var fields []huh.Field

	if *typeName == "" {
		fields = append(fields, huh.NewInput().
			Title("Message type").
			Prompt(": ").
			Inline(true).
			Placeholder("e.g., geometry_msgs/PoseStamped").
			Value(typeName).
			Validate(typeNameValidator))
	}

	if *format == "" && len(formats) > 1 {
		options := make([]huh.Option[string], len(formats))
		for i, f := range formats {
			options[i] = huh.NewOption(f, f)
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Output format").
			Options(options...).
			Value(format))
	}

	if askOutput {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Prompt(": ").
			Inline(true).
			Value(output).
			Validate(requiredValidator("output directory")))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
