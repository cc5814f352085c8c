// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package msg models and parses ROS .msg message definitions.
package msg

// Field is a single field declaration, in source order.
type Field struct {
	Type string // builtin token or package/Name
	Name string
}

// Constant is a constant declaration. Value is kept verbatim.
type Constant struct {
	Type  string
	Name  string
	Value string
}

// ParsedType is the structured form of one .msg file.
type ParsedType struct {
	Fields    []Field
	Constants []Constant
}
