// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package translate

import (
	"sort"

	"github.com/tz-bb/r2pb/internal/msg"
)

// Prepare converts a parsed message into SchemaData ready for template execution.
// Fields keep their source order and are numbered from 1.
func Prepare(name msg.QualifiedName, parsed *msg.ParsedType, resolver TypeResolver) *SchemaData {
	data := &SchemaData{
		Package: name.Package,
		Name:    name.Name,
	}

	deps := make(map[string]struct{})
	wellKnown := make(map[string]struct{})

	for i, f := range parsed.Fields {
		pkg, local := msg.SplitType(f.Type)
		mapped := resolver.MapType(f.Type)

		field := Field{
			Name:    f.Name,
			Type:    mapped,
			Package: pkg,
			Ref:     mapped,
			Number:  i + 1,
		}
		if pkg != "" {
			field.Ref = resolver.QualifiedRef(pkg, local)
			deps[f.Type] = struct{}{}
		} else if imp := resolver.WellKnownImport(mapped); imp != "" {
			wellKnown[imp] = struct{}{}
		}
		data.Fields = append(data.Fields, field)
	}

	for _, c := range parsed.Constants {
		data.Constants = append(data.Constants, Constant{
			Name:  c.Name,
			Type:  resolver.MapType(c.Type),
			Value: c.Value,
		})
	}

	data.Dependencies = sortedKeys(deps)
	data.WellKnownImports = sortedKeys(wellKnown)

	for _, dep := range data.Dependencies {
		pkg, local := msg.SplitType(dep)
		data.Imports = append(data.Imports, resolver.ImportPath(msg.QualifiedName{Package: pkg, Name: local}))
	}
	sort.Strings(data.Imports)

	return data
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
