// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package convert drives the conversion of a message type and everything it
// depends on.
package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/tz-bb/r2pb/internal/locate"
	"github.com/tz-bb/r2pb/internal/msg"
	"github.com/tz-bb/r2pb/internal/translate"
)

// Error reports the message type whose conversion failed.
type Error struct {
	Type string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to convert %s: %v", e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Summary lists the types written by a successful conversion, in emission order.
type Summary struct {
	Written []msg.QualifiedName
}

// Converter converts a root message type and its transitive dependencies,
// one output file per type. A Converter is not safe for concurrent use.
type Converter struct {
	Locator    locate.Locator
	Translator translate.Translator
	Sink       Sink

	// Strict fails a type whose definition has lines the parser cannot use.
	// Otherwise those lines are reported to Out and skipped.
	Strict bool

	// Out receives progress output. May be nil.
	Out io.Writer
}

// Convert processes root breadth-first. The first error stops the run;
// files already written stay on disk.
func (c *Converter) Convert(ctx context.Context, root string) (*Summary, error) {
	if _, err := msg.ParseQualifiedName(root); err != nil {
		return nil, &Error{Type: root, Err: err}
	}

	summary := &Summary{}
	visited := make(map[string]struct{})
	queue := []string{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// diamonds can enqueue a type twice before it is processed
		if _, done := visited[current]; done {
			continue
		}

		c.logf("Processing %s...\n", current)
		name, deps, err := c.convertOne(ctx, current)
		if err != nil {
			c.logf("Failed to convert %s: %v\n", current, err)
			return nil, &Error{Type: current, Err: err}
		}

		visited[current] = struct{}{}
		summary.Written = append(summary.Written, name)
		c.logf("Successfully converted %s\n", current)

		for _, dep := range deps {
			if _, done := visited[dep]; !done {
				queue = append(queue, dep)
			}
		}
	}

	return summary, nil
}

// convertOne locates, parses, renders and writes a single type and returns
// its dependencies.
func (c *Converter) convertOne(ctx context.Context, typeName string) (msg.QualifiedName, []string, error) {
	name, err := msg.ParseQualifiedName(typeName)
	if err != nil {
		return name, nil, err
	}

	text, err := c.Locator.Resolve(ctx, name.Package, name.Name)
	if err != nil {
		return name, nil, err
	}

	parsed, warnings := msg.ParseStrict(text)
	if len(warnings) > 0 {
		if c.Strict {
			return name, nil, warnings
		}
		for _, w := range warnings {
			c.logf("  warning: %s: %v\n", typeName, w)
		}
	}

	result, err := c.Translator.Translate(name, parsed)
	if err != nil {
		return name, nil, err
	}

	if err := c.Sink.Write(name.Package, name.Name, string(result.Content)); err != nil {
		return name, nil, err
	}

	return name, result.Dependencies, nil
}

func (c *Converter) logf(format string, args ...any) {
	if c.Out != nil {
		fmt.Fprintf(c.Out, format, args...)
	}
}
