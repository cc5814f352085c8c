// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package jsonschema

import (
	"github.com/tz-bb/r2pb/internal/msg"
)

var builtinTypes = map[string]string{
	"bool":     "boolean",
	"byte":     "integer",
	"char":     "string",
	"float32":  "number",
	"float64":  "number",
	"int8":     "integer",
	"uint8":    "integer",
	"int16":    "integer",
	"uint16":   "integer",
	"int32":    "integer",
	"uint32":   "integer",
	"int64":    "integer",
	"uint64":   "integer",
	"string":   "string",
	"time":     "string",
	"duration": "string",
}

var builtinFormats = map[string]string{
	"time":     "date-time",
	"duration": "duration",
}

type resolver struct{}

func (r *resolver) MapType(declared string) string {
	if t, ok := builtinTypes[declared]; ok {
		return t
	}
	_, local := msg.SplitType(declared)
	return local
}

// QualifiedRef points at the sibling document of the referenced type,
// relative to the referencing document's package directory.
func (r *resolver) QualifiedRef(pkg, local string) string {
	return "../" + pkg + "/" + local + FileExtension
}

func (r *resolver) ImportPath(dep msg.QualifiedName) string {
	return r.QualifiedRef(dep.Package, dep.Name)
}

func (r *resolver) WellKnownImport(string) string {
	return ""
}
