// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package msg

import (
	"fmt"
	"strings"
)

const commentMarker = "#"

// Warning describes a line the parser dropped or only partly understood.
type Warning struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (w Warning) Error() string {
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Reason, w.Text)
}

// Warnings is the strict-mode failure for a message definition.
type Warnings []Warning

func (ws Warnings) Error() string {
	msgs := make([]string, len(ws))
	for i, w := range ws {
		msgs[i] = w.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is match ErrInvalidSchema.
func (ws Warnings) Unwrap() error {
	return ErrInvalidSchema
}

// Parse parses message text leniently. Lines that are neither a field nor a
// constant are dropped without notice.
func Parse(text string) *ParsedType {
	parsed, _ := ParseStrict(text)
	return parsed
}

// ParseStrict parses message text like Parse and also reports every line that
// was dropped or carried content the converter ignores.
func ParseStrict(text string) (*ParsedType, Warnings) {
	parsed := &ParsedType{}
	var warnings Warnings

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		// comments go first so a '=' inside one never makes a constant
		if idx := strings.Index(line, commentMarker); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		warn := func(reason string) {
			warnings = append(warnings, Warning{Line: i + 1, Text: line, Reason: reason})
		}

		if decl, value, ok := strings.Cut(line, "="); ok {
			parts := strings.Fields(decl)
			if len(parts) != 2 {
				warn("malformed constant declaration")
				continue
			}
			value = strings.TrimSpace(value)
			if value == "" {
				warn("empty constant value")
			}
			parsed.Constants = append(parsed.Constants, Constant{
				Type:  parts[0],
				Name:  parts[1],
				Value: value,
			})
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			warn("expected '<type> <name>'")
			continue
		}
		if len(parts) > 2 {
			warn("unexpected trailing tokens")
		}
		typ := parts[0]
		switch {
		case strings.Contains(typ, "["):
			warn("array types are not supported")
		case !IsQualified(typ) && !IsBuiltin(typ):
			warn(fmt.Sprintf("unqualified type %q is not a builtin", typ))
		}
		parsed.Fields = append(parsed.Fields, Field{Type: typ, Name: parts[1]})
	}

	return parsed, warnings
}
