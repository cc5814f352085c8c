// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package protobuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tz-bb/r2pb/internal/msg"
)

func translate(t *testing.T, pkg, name string, parsed *msg.ParsedType) (string, []string) {
	t.Helper()
	translator := &Translator{}
	result, err := translator.Translate(msg.QualifiedName{Package: pkg, Name: name}, parsed)
	require.NoError(t, err)
	return string(result.Content), result.Dependencies
}

func TestTranslate_FullOutput(t *testing.T) {
	parsed := &msg.ParsedType{
		Fields: []msg.Field{
			{Type: "std_msgs/Header", Name: "header"},
			{Type: "time", Name: "stamp"},
			{Type: "uint8", Name: "level"},
		},
		Constants: []msg.Constant{
			{Type: "uint8", Name: "DEBUG", Value: "1"},
			{Type: "string", Name: "LABEL", Value: "hello world"},
		},
	}

	output, deps := translate(t, "my_pkg", "Status", parsed)

	expected := `// Code generated by r2pb from my_pkg/Status.msg; DO NOT EDIT.

syntax = "proto3";

package my_pkg;

import "google/protobuf/timestamp.proto";

import "std_msgs/Header.proto";

message Status {
  std_msgs.Header header = 1;
  google.protobuf.Timestamp stamp = 2;
  uint32 level = 3;

  // Constants
  // uint32 DEBUG = 1
  // string LABEL = hello world
}
`
	assert.Equal(t, expected, output)
	assert.Equal(t, []string{"std_msgs/Header"}, deps)
}

func TestTranslate_ScalarsOnly(t *testing.T) {
	parsed := msg.Parse("uint32 seq\nstring frame_id\nfloat64 x\n")

	output, deps := translate(t, "std_msgs", "Simple", parsed)

	assert.Contains(t, output, `syntax = "proto3";`)
	assert.Contains(t, output, "package std_msgs;")
	assert.Contains(t, output, "message Simple {")
	assert.Contains(t, output, "  uint32 seq = 1;")
	assert.Contains(t, output, "  string frame_id = 2;")
	assert.Contains(t, output, "  double x = 3;")
	assert.NotContains(t, output, "import")
	assert.NotContains(t, output, "Constants")
	assert.Empty(t, deps)
}

func TestTranslate_DependencyExtraction(t *testing.T) {
	parsed := &msg.ParsedType{
		Fields: []msg.Field{
			{Type: "std_msgs/Header", Name: "header"},
			{Type: "int32", Name: "x"},
		},
	}

	output, deps := translate(t, "my_pkg", "Point", parsed)

	assert.Equal(t, []string{"std_msgs/Header"}, deps)
	assert.Equal(t, 1, strings.Count(output, "import "))
	assert.Contains(t, output, `import "std_msgs/Header.proto";`)
}

func TestTranslate_DependenciesSortedAndUnique(t *testing.T) {
	parsed := &msg.ParsedType{
		Fields: []msg.Field{
			{Type: "geometry_msgs/Twist", Name: "twist"},
			{Type: "geometry_msgs/Pose", Name: "pose"},
			{Type: "std_msgs/Header", Name: "header"},
			{Type: "geometry_msgs/Pose", Name: "goal"},
		},
		Constants: []msg.Constant{
			{Type: "other_msgs/Ignored", Name: "X", Value: "1"},
		},
	}

	output, deps := translate(t, "nav_msgs", "Odometry", parsed)

	assert.Equal(t, []string{"geometry_msgs/Pose", "geometry_msgs/Twist", "std_msgs/Header"}, deps)

	poseIdx := strings.Index(output, `import "geometry_msgs/Pose.proto";`)
	twistIdx := strings.Index(output, `import "geometry_msgs/Twist.proto";`)
	headerIdx := strings.Index(output, `import "std_msgs/Header.proto";`)
	assert.Greater(t, poseIdx, 0)
	assert.Less(t, poseIdx, twistIdx)
	assert.Less(t, twistIdx, headerIdx)
	assert.NotContains(t, output, "other_msgs/Ignored.proto")

	assert.Contains(t, output, "  geometry_msgs.Twist twist = 1;")
	assert.Contains(t, output, "  geometry_msgs.Pose pose = 2;")
	assert.Contains(t, output, "  std_msgs.Header header = 3;")
	assert.Contains(t, output, "  geometry_msgs.Pose goal = 4;")
}

func TestTranslate_FieldNumbers(t *testing.T) {
	parsed := msg.Parse("string a\nstring b\nstring c")

	output, _ := translate(t, "test_msgs", "Abc", parsed)

	aIdx := strings.Index(output, "string a = 1;")
	bIdx := strings.Index(output, "string b = 2;")
	cIdx := strings.Index(output, "string c = 3;")
	assert.Greater(t, aIdx, 0)
	assert.Less(t, aIdx, bIdx)
	assert.Less(t, bIdx, cIdx)
}

func TestTranslate_Deterministic(t *testing.T) {
	parsed := msg.Parse("std_msgs/Header header\ngeometry_msgs/Pose pose\nduration timeout\nint8 MODE = 2")

	first, _ := translate(t, "demo_msgs", "Goal", parsed)
	second, _ := translate(t, "demo_msgs", "Goal", parsed)

	assert.Equal(t, first, second)
}

func TestTranslate_ConstantsOnly(t *testing.T) {
	parsed := msg.Parse("int32 A = 1\nint32 B = 2")

	output, deps := translate(t, "consts", "Only", parsed)

	assert.Contains(t, output, "message Only {\n  // Constants\n  // int32 A = 1\n  // int32 B = 2\n}\n")
	assert.Empty(t, deps)
}

func TestTranslate_GeneratedHeader(t *testing.T) {
	output, _ := translate(t, "std_msgs", "Empty", &msg.ParsedType{})

	assert.True(t, strings.HasPrefix(output, "// Code generated by r2pb from std_msgs/Empty.msg; DO NOT EDIT."))
	assert.Contains(t, output, "message Empty {\n}\n")
}

func TestFileExtension(t *testing.T) {
	translator := &Translator{}
	assert.Equal(t, ".proto", translator.FileExtension())
	assert.Equal(t, "protobuf", translator.Name())
}
