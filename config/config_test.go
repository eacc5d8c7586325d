// Copyright 2025 go-sortviz Authors
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortviz/bench"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, 30, d.Visualizer.N)
	assert.Equal(t, 60, d.Visualizer.FPS)
	assert.Equal(t, []int{100, 500, 1000, 2000, 5000, 10000}, d.Bench.Sizes)

	conds, err := d.Bench.ParsedConditions()
	require.NoError(t, err)
	assert.Equal(t, bench.Conditions, conds)
}

func TestLoadEmptyPath(t *testing.T) {
	i, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), i)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
visualizer:
  n: 50
  algorithm: quick
bench:
  sizes: [10, 20]
  conditions: [reversed]
  compare-size: 20
`)
	i, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, i.Visualizer.N)
	assert.Equal(t, "quick", i.Visualizer.Algorithm)
	assert.Equal(t, 100, i.Visualizer.Max, "default kept")
	assert.Equal(t, []int{10, 20}, i.Bench.Sizes)
	assert.Equal(t, []string{"reversed"}, i.Bench.Conditions)
	assert.Equal(t, 20, i.Bench.CompareSize)
	assert.Equal(t, 5, i.Bench.Runs, "default kept")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown field", "visualizer:\n  colour: red\n", "parsing config"},
		{"bad yaml", "visualizer: [", "parsing config"},
		{"min above max", "visualizer:\n  min: 10\n  max: 5\n", "min 10 is greater than max 5"},
		{"huge range", "visualizer:\n  min: -2000000\n  max: 2000000\n", "values must lie within"},
		{"zero bars", "visualizer:\n  n: 0\n", "n must be at least 1"},
		{"bad algorithm", "visualizer:\n  algorithm: bogo\n", `unknown algorithm "bogo"`},
		{"bad condition", "bench:\n  conditions: [shuffled]\n", `unknown input condition "shuffled"`},
		{"no runs", "bench:\n  runs: 0\n", "runs must be at least 1"},
		{"negative size", "bench:\n  sizes: [10, -1]\n", "array sizes must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
