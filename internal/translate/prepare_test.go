// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tz-bb/r2pb/internal/msg"
)

// stubResolver is a minimal TypeResolver for testing Prepare logic.
type stubResolver struct{}

func (s *stubResolver) MapType(declared string) string {
	if i := strings.LastIndex(declared, "/"); i >= 0 {
		return declared[i+1:]
	}
	if declared == "time" {
		return "Stamp"
	}
	return "T" + declared
}

func (s *stubResolver) QualifiedRef(pkg, local string) string {
	return pkg + "::" + local
}

func (s *stubResolver) ImportPath(dep msg.QualifiedName) string {
	return dep.Package + "/" + dep.Name + ".stub"
}

func (s *stubResolver) WellKnownImport(destType string) string {
	if destType == "Stamp" {
		return "wk/stamp.stub"
	}
	return ""
}

func TestPrepare_Fields(t *testing.T) {
	parsed := &msg.ParsedType{
		Fields: []msg.Field{
			{Type: "int32", Name: "x"},
			{Type: "std_msgs/Header", Name: "header"},
			{Type: "time", Name: "stamp"},
		},
	}

	data := Prepare(msg.QualifiedName{Package: "pkg", Name: "Msg"}, parsed, &stubResolver{})

	assert.Equal(t, "pkg", data.Package)
	assert.Equal(t, "Msg", data.Name)
	require.Len(t, data.Fields, 3)
	assert.Equal(t, Field{Name: "x", Type: "Tint32", Ref: "Tint32", Number: 1}, data.Fields[0])
	assert.Equal(t, Field{Name: "header", Type: "Header", Package: "std_msgs", Ref: "std_msgs::Header", Number: 2}, data.Fields[1])
	assert.Equal(t, Field{Name: "stamp", Type: "Stamp", Ref: "Stamp", Number: 3}, data.Fields[2])

	assert.Equal(t, []string{"std_msgs/Header"}, data.Dependencies)
	assert.Equal(t, []string{"std_msgs/Header.stub"}, data.Imports)
	assert.Equal(t, []string{"wk/stamp.stub"}, data.WellKnownImports)
}

func TestPrepare_ConstantsNeverDependencies(t *testing.T) {
	parsed := &msg.ParsedType{
		Constants: []msg.Constant{
			{Type: "int32", Name: "A", Value: "1"},
			{Type: "other/Thing", Name: "B", Value: "x y"},
		},
	}

	data := Prepare(msg.QualifiedName{Package: "pkg", Name: "Msg"}, parsed, &stubResolver{})

	assert.Empty(t, data.Dependencies)
	assert.Empty(t, data.Imports)
	assert.Equal(t, []Constant{
		{Name: "A", Type: "Tint32", Value: "1"},
		{Name: "B", Type: "Thing", Value: "x y"},
	}, data.Constants)
}

func TestPrepare_DuplicateDependencies(t *testing.T) {
	parsed := &msg.ParsedType{
		Fields: []msg.Field{
			{Type: "b_msgs/Point", Name: "start"},
			{Type: "a_msgs/Vector", Name: "dir"},
			{Type: "b_msgs/Point", Name: "end"},
		},
	}

	data := Prepare(msg.QualifiedName{Package: "pkg", Name: "Segment"}, parsed, &stubResolver{})

	assert.Equal(t, []string{"a_msgs/Vector", "b_msgs/Point"}, data.Dependencies)
	assert.Equal(t, []string{"a_msgs/Vector.stub", "b_msgs/Point.stub"}, data.Imports)
	for i, f := range data.Fields {
		assert.Equal(t, i+1, f.Number)
	}
}

func TestRegister(t *testing.T) {
	r := make(Register)
	r.Add(&namedTranslator{name: "zeta"})
	r.Add(&namedTranslator{name: "alpha"})

	assert.Equal(t, []string{"alpha", "zeta"}, r.Available())

	got, err := r.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name())

	_, err = r.Get("missing")
	assert.EqualError(t, err, "unknown translator: missing")
}

type namedTranslator struct{ name string }

func (n *namedTranslator) Name() string          { return n.name }
func (n *namedTranslator) FileExtension() string { return ".txt" }
func (n *namedTranslator) Translate(msg.QualifiedName, *msg.ParsedType) (*Result, error) {
	return &Result{}, nil
}
