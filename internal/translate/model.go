// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package translate

// SchemaData is the complete input passed to a translator template.
type SchemaData struct {
	Package          string     // source package, also the destination package
	Name             string     // message name
	Fields           []Field    // in source order
	Constants        []Constant // in source order
	Dependencies     []string   // sorted package/Name of referenced message types
	Imports          []string   // sorted, one per dependency
	WellKnownImports []string   // sorted imports for builtin structured types
}

// Field is a destination field derived from a source field.
type Field struct {
	Name    string
	Type    string // mapped local type name
	Package string // originating package for message references, empty for scalars
	Ref     string // fully qualified destination type, e.g. "std_msgs.Header"
	Number  int    // 1-based position in source order
}

// Constant is a source constant with its mapped type. Value is verbatim.
type Constant struct {
	Name  string
	Type  string
	Value string
}

// Result is the output of translating a single message type.
type Result struct {
	Content      []byte
	Dependencies []string // sorted, unique package/Name strings
}
