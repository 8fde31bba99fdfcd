// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", []int{}},
		{"  \n\t ", []int{}},
		{"5 2 4", []int{5, 2, 4}},
		{"5,2,,4", []int{5, 2, 4}},
		{"-3\n10, -50\t0", []int{-3, 10, -50, 0}},
	}
	for _, tt := range tests {
		got, err := parseInts(tt.in, "test")
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseIntsError(t *testing.T) {
	_, err := parseInts("1 2 x3", "data.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.txt")
	assert.Contains(t, err.Error(), `"x3"`)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "", formatInts(nil))
	assert.Equal(t, "1 2 3", formatInts([]int{1, 2, 3}))
	assert.Equal(t, "-1", formatInts([]int{-1}))
}

func TestLoadInputsStdin(t *testing.T) {
	got, err := loadInputs(context.Background(), nil, nil, strings.NewReader("3 1 2"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestLoadInputsFilesThenArgs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1 2 3")
	b := writeFile(t, dir, "b.txt", "4,5\n6")

	got, err := loadInputs(context.Background(), []string{a, b}, []string{"7", "8"}, strings.NewReader("99"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, got)
}

func TestLoadInputsManyFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	files := lo.Map(lo.Range(20), func(i int, _ int) string {
		return writeFile(t, dir, strconv.Itoa(i)+".txt", strconv.Itoa(i))
	})

	got, err := loadInputs(context.Background(), files, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, lo.Range(20), got)
}

func TestLoadInputsMissingFile(t *testing.T) {
	_, err := loadInputs(context.Background(), []string{filepath.Join(t.TempDir(), "nope.txt")}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInputsBadFile(t *testing.T) {
	bad := writeFile(t, t.TempDir(), "bad.txt", "1 two 3")
	_, err := loadInputs(context.Background(), []string{bad}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestLoadInputsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := writeFile(t, t.TempDir(), "a.txt", "1")
	_, err := loadInputs(ctx, []string{f}, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
