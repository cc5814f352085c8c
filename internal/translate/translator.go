// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package translate turns parsed message definitions into destination schema files.
package translate

import (
	"fmt"
	"sort"

	"github.com/tz-bb/r2pb/internal/msg"
)

// Translator defines the interface all output formats must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "protobuf")
	Name() string

	// Translate renders one message type and reports the qualified types it depends on
	Translate(name msg.QualifiedName, parsed *msg.ParsedType) (*Result, error)

	// FileExtension returns the appropriate file extension (e.g., ".proto")
	FileExtension() string
}

// Register maps translator names to implementations.
type Register map[string]Translator

// Add registers a translator under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
