// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package jsonschema renders message definitions as JSON Schema documents.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/tz-bb/r2pb/internal/msg"
	"github.com/tz-bb/r2pb/internal/translate"
)

// FileExtension is the extension of generated documents.
const FileExtension = ".json"

// Draft is the JSON Schema dialect of generated documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Translator translates ROS message definitions to JSON Schema (draft 2020-12).
type Translator struct{}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "jsonschema"
}

// FileExtension returns the file extension for JSON Schema documents.
func (t *Translator) FileExtension() string {
	return FileExtension
}

// Translate renders one message type as a JSON Schema object. Fields are
// required properties; constants are read-only single-value properties.
func (t *Translator) Translate(name msg.QualifiedName, parsed *msg.ParsedType) (*translate.Result, error) {
	r := &resolver{}
	data := translate.Prepare(name, parsed, r)

	schema := &jsonschema.Schema{
		Schema:     Draft,
		Title:      name.String(),
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(data.Fields)+len(data.Constants)),
	}

	for i, f := range data.Fields {
		if _, ok := schema.Properties[f.Name]; ok {
			return nil, fmt.Errorf("duplicate field %q in %s", f.Name, name)
		}

		declared := parsed.Fields[i].Type
		var prop *jsonschema.Schema
		switch {
		case f.Package != "":
			prop = &jsonschema.Schema{Ref: f.Ref}
		case msg.IsBuiltin(declared):
			prop = &jsonschema.Schema{Type: f.Type, Format: builtinFormats[declared]}
		default:
			// unqualified message types live in the same package
			prop = &jsonschema.Schema{Ref: r.QualifiedRef(name.Package, declared)}
		}
		schema.Properties[f.Name] = prop
		schema.Required = append(schema.Required, f.Name)
	}

	for _, c := range data.Constants {
		if _, ok := schema.Properties[c.Name]; ok {
			return nil, fmt.Errorf("constant %q in %s collides with a field of the same name", c.Name, name)
		}
		schema.Properties[c.Name] = constantSchema(c)
	}

	content, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return &translate.Result{
		Content:      append(content, '\n'),
		Dependencies: data.Dependencies,
	}, nil
}

// constantSchema pins a constant to its literal value. Values that do not
// parse as the constant's JSON type are kept verbatim as strings.
func constantSchema(c translate.Constant) *jsonschema.Schema {
	typ, value := "string", any(c.Value)
	switch c.Type {
	case "integer":
		if v, err := strconv.ParseInt(c.Value, 10, 64); err == nil {
			typ, value = c.Type, v
		} else if v, err := strconv.ParseUint(c.Value, 10, 64); err == nil {
			typ, value = c.Type, v
		}
	case "number":
		if v, err := strconv.ParseFloat(c.Value, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			typ, value = c.Type, v
		}
	case "boolean":
		if v, err := strconv.ParseBool(c.Value); err == nil {
			typ, value = c.Type, v
		}
	}

	return &jsonschema.Schema{
		Type:     typ,
		ReadOnly: true,
		Enum:     []any{value},
	}
}
