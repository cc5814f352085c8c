// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package msg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedIdentifier indicates a type name is not of the form package/Name.
	ErrMalformedIdentifier = errors.New("malformed type identifier")

	// ErrInvalidSchema indicates a message definition failed strict parsing.
	ErrInvalidSchema = errors.New("invalid message definition")
)

// QualifiedName identifies a message type across packages, e.g. std_msgs/Header.
type QualifiedName struct {
	Package string
	Name    string
}

// String returns the package/Name form.
func (q QualifiedName) String() string {
	return q.Package + "/" + q.Name
}

// ParseQualifiedName parses a package/Name identifier.
// Exactly one separator with a non-empty package and name is required.
// Neither half may be "." or ".." or contain a backslash, since both are
// used as path segments.
func ParseQualifiedName(s string) (QualifiedName, error) {
	if strings.Count(s, "/") != 1 {
		return QualifiedName{}, fmt.Errorf("%w: %q (expected package/Name)", ErrMalformedIdentifier, s)
	}
	pkg, name, _ := strings.Cut(s, "/")
	if pkg == "" || name == "" {
		return QualifiedName{}, fmt.Errorf("%w: %q (expected package/Name)", ErrMalformedIdentifier, s)
	}
	if !isSegment(pkg) || !isSegment(name) {
		return QualifiedName{}, fmt.Errorf("%w: %q (package and name must be plain path segments)", ErrMalformedIdentifier, s)
	}
	return QualifiedName{Package: pkg, Name: name}, nil
}

func isSegment(s string) bool {
	return s != "." && s != ".." && !strings.Contains(s, `\`)
}

// SplitType splits a declared field type into its package and local name.
// Builtins and other unqualified types have an empty package.
func SplitType(declared string) (pkg, local string) {
	if p, l, ok := strings.Cut(declared, "/"); ok {
		return p, l
	}
	return "", declared
}

// IsQualified reports whether a declared type references another package.
func IsQualified(declared string) bool {
	return strings.Contains(declared, "/")
}

var builtins = map[string]struct{}{
	"bool":     {},
	"byte":     {},
	"char":     {},
	"int8":     {},
	"uint8":    {},
	"int16":    {},
	"uint16":   {},
	"int32":    {},
	"uint32":   {},
	"int64":    {},
	"uint64":   {},
	"float32":  {},
	"float64":  {},
	"string":   {},
	"time":     {},
	"duration": {},
}

// IsBuiltin reports whether a declared type is one of the ROS builtin types.
func IsBuiltin(declared string) bool {
	_, ok := builtins[declared]
	return ok
}
