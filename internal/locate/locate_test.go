// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package locate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMsg(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocal_Resolve(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeMsg(t, filepath.Join(first, "std_msgs", "msg", "Header.msg"), "uint32 seq\n")
	writeMsg(t, filepath.Join(second, "std_msgs", "msg", "Header.msg"), "shadowed\n")
	writeMsg(t, filepath.Join(second, "my_msgs", "Flat.msg"), "int32 x\n")

	l := &Local{Paths: []string{first, second}}

	text, err := l.Resolve(context.Background(), "std_msgs", "Header")
	require.NoError(t, err)
	assert.Equal(t, "uint32 seq\n", text)

	text, err = l.Resolve(context.Background(), "my_msgs", "Flat")
	require.NoError(t, err)
	assert.Equal(t, "int32 x\n", text)

	_, err = l.Resolve(context.Background(), "std_msgs", "Missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "std_msgs/Missing")
}

type stubLocator struct {
	text  map[string]string
	err   error
	calls int
}

func (s *stubLocator) Resolve(_ context.Context, pkg, name string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if text, ok := s.text[pkg+"/"+name]; ok {
		return text, nil
	}
	return "", notFound(pkg, name)
}

func TestChain_Resolve(t *testing.T) {
	a := &stubLocator{text: map[string]string{"a/One": "from a"}}
	b := &stubLocator{text: map[string]string{"a/One": "from b", "b/Two": "from b"}}
	chain := Chain{a, b}

	text, err := chain.Resolve(context.Background(), "a", "One")
	require.NoError(t, err)
	assert.Equal(t, "from a", text)

	text, err = chain.Resolve(context.Background(), "b", "Two")
	require.NoError(t, err)
	assert.Equal(t, "from b", text)

	_, err = chain.Resolve(context.Background(), "c", "Three")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestChain_StopsOnHardError(t *testing.T) {
	boom := errors.New("network down")
	failing := &stubLocator{err: boom}
	never := &stubLocator{text: map[string]string{"a/One": "x"}}

	_, err := Chain{failing, never}.Resolve(context.Background(), "a", "One")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, never.calls)
}

func TestCached_Resolve(t *testing.T) {
	next := &stubLocator{text: map[string]string{"std_msgs/Header": "uint32 seq"}}
	cached, err := NewCached(next, 8)
	require.NoError(t, err)

	for range 3 {
		text, err := cached.Resolve(context.Background(), "std_msgs", "Header")
		require.NoError(t, err)
		assert.Equal(t, "uint32 seq", text)
	}
	assert.Equal(t, 1, next.calls)

	for range 2 {
		_, err := cached.Resolve(context.Background(), "std_msgs", "Missing")
		assert.True(t, errors.Is(err, ErrNotFound))
	}
	assert.Equal(t, 3, next.calls)
}

func TestNewCached_InvalidSize(t *testing.T) {
	_, err := NewCached(&stubLocator{}, 0)
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	got := expand("https://host/{distro}/{package}/msg/{type}.msg", "std_msgs", "Header", "noetic")
	assert.Equal(t, "https://host/noetic/std_msgs/msg/Header.msg", got)
	assert.Equal(t, "noetic-devel", expand("{distro}-devel", "", "", "noetic"))
	assert.True(t, strings.HasPrefix(expand("plain", "a", "b", "c"), "plain"))
}
