// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package protobuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tz-bb/r2pb/internal/msg"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		rosType   string
		protoType string
	}{
		{"bool", "bool"},
		{"byte", "int32"},
		{"char", "string"},
		{"int8", "int32"},
		{"uint8", "uint32"},
		{"int16", "int32"},
		{"uint16", "uint32"},
		{"int32", "int32"},
		{"uint32", "uint32"},
		{"int64", "int64"},
		{"uint64", "uint64"},
		{"float32", "float"},
		{"float64", "double"},
		{"string", "string"},
		{"time", "google.protobuf.Timestamp"},
		{"duration", "google.protobuf.Duration"},
		{"std_msgs/Header", "Header"},
		{"geometry_msgs/Pose", "Pose"},
		{"Header", "Header"},
	}

	for _, tt := range tests {
		t.Run(tt.rosType, func(t *testing.T) {
			assert.Equal(t, tt.protoType, MapType(tt.rosType))
		})
	}
}

func TestResolver(t *testing.T) {
	r := &resolver{}

	assert.Equal(t, "std_msgs.Header", r.QualifiedRef("std_msgs", "Header"))
	assert.Equal(t, "std_msgs/Header.proto", r.ImportPath(msg.QualifiedName{Package: "std_msgs", Name: "Header"}))
	assert.Equal(t, "google/protobuf/timestamp.proto", r.WellKnownImport("google.protobuf.Timestamp"))
	assert.Equal(t, "google/protobuf/duration.proto", r.WellKnownImport("google.protobuf.Duration"))
	assert.Empty(t, r.WellKnownImport("int32"))
}
