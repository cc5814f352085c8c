// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package protobuf

import (
	"strings"

	"github.com/tz-bb/r2pb/internal/msg"
)

const (
	timestampType = "google.protobuf.Timestamp"
	durationType  = "google.protobuf.Duration"
)

// builtinTypes maps ROS builtin types to proto3 types. proto3 has no 8 or 16
// bit integers, so those widen to the 32 bit type of the same signedness.
var builtinTypes = map[string]string{
	"bool":     "bool",
	"byte":     "int32",
	"char":     "string",
	"float32":  "float",
	"float64":  "double",
	"int8":     "int32",
	"uint8":    "uint32",
	"int16":    "int32",
	"uint16":   "uint32",
	"int32":    "int32",
	"uint32":   "uint32",
	"int64":    "int64",
	"uint64":   "uint64",
	"string":   "string",
	"time":     timestampType,
	"duration": durationType,
}

var wellKnownImports = map[string]string{
	timestampType: "google/protobuf/timestamp.proto",
	durationType:  "google/protobuf/duration.proto",
}

// MapType maps a ROS type to its proto3 type. Anything that is not a builtin is
// a message reference and maps to its local name, without the package.
func MapType(rosType string) string {
	if t, ok := builtinTypes[rosType]; ok {
		return t
	}
	if i := strings.LastIndex(rosType, "/"); i >= 0 {
		return rosType[i+1:]
	}
	return rosType
}

type resolver struct{}

func (r *resolver) MapType(declared string) string {
	return MapType(declared)
}

func (r *resolver) QualifiedRef(pkg, local string) string {
	return pkg + "." + local
}

func (r *resolver) ImportPath(dep msg.QualifiedName) string {
	return dep.Package + "/" + dep.Name + FileExtension
}

func (r *resolver) WellKnownImport(destType string) string {
	return wellKnownImports[destType]
}
