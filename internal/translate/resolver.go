// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package translate

import "github.com/tz-bb/r2pb/internal/msg"

// TypeResolver maps source types to a destination format's type names and import paths.
// Each translator implements this interface to control how message types map to its output.
type TypeResolver interface {
	// MapType maps a declared source type to the destination type name.
	// Message references resolve to their local name.
	MapType(declared string) string

	// QualifiedRef returns how a field refers to a message type from pkg.
	QualifiedRef(pkg, local string) string

	// ImportPath returns the import needed for a dependency.
	ImportPath(dep msg.QualifiedName) string

	// WellKnownImport returns the import a mapped builtin type requires, or "".
	WellKnownImport(destType string) string
}
