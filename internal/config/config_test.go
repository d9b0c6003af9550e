// Kestrel - UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 The Kestrel Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

func TestSetupWithEmptyPathKeepsDefaults(t *testing.T) {
	err := Setup("")
	assert.NoError(t, err)
	assert.Equal(t, "info", Settings.Log.Level)
	assert.True(t, Settings.Search.UsePruning)
	assert.Equal(t, "material", Settings.Eval.Mode)
}

func TestSetupWithMissingFileKeepsDefaults(t *testing.T) {
	err := Setup(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(t, err)
	assert.Equal(t, "material", Settings.Eval.Mode)
}

func TestSetupLoadsTOMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kestrel.toml")
	contents := `
[log]
level = "debug"

[search]
use_pruning = false
use_raycast_fallback = true
default_movetime_ms = 1000

[eval]
mode = "tapered"
`
	err := writeFile(path, contents)
	assert.NoError(t, err)

	err = Setup(path)
	assert.NoError(t, err)
	assert.Equal(t, "debug", Settings.Log.Level)
	assert.False(t, Settings.Search.UsePruning)
	assert.True(t, Settings.Search.UseRaycastFallback)
	assert.Equal(t, 1000, Settings.Search.DefaultMoveTimeMS)
	assert.Equal(t, "tapered", Settings.Eval.Mode)
}

func TestSetupRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	err := writeFile(path, "not = [valid")
	assert.NoError(t, err)

	err = Setup(path)
	assert.Error(t, err)
}
