// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package protobuf provides Protocol Buffers (proto3) message translation.
package protobuf

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/tz-bb/r2pb/internal/msg"
	"github.com/tz-bb/r2pb/internal/translate"
)

// FileExtension is the extension of generated files, also used in import paths.
const FileExtension = ".proto"

//go:embed protobuf.proto.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "protobuf.proto.tmpl"))

// Translator translates ROS message definitions to proto3 message definitions.
type Translator struct{}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "protobuf"
}

// FileExtension returns the file extension for Protocol Buffers files.
func (t *Translator) FileExtension() string {
	return FileExtension
}

// Translate renders a proto3 file for one message type.
func (t *Translator) Translate(name msg.QualifiedName, parsed *msg.ParsedType) (*translate.Result, error) {
	data := translate.Prepare(name, parsed, &resolver{})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "protobuf.proto.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return &translate.Result{
		Content:      buf.Bytes(),
		Dependencies: data.Dependencies,
	}, nil
}
