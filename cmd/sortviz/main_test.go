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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf, demoInput))
	out := buf.String()

	assert.Contains(t, out, "Original Array:  [170 45 75 90 802 24 2 66]")
	for _, name := range []string{"Bubble Sort:", "Merge Sort:", "Quick Sort:", "Radix Sort:"} {
		assert.Contains(t, out, fmt.Sprintf("%-16s [2 24 45 66 75 90 170 802]", name))
	}
	assert.Contains(t, out, "target=90 index=5 (6 probes)")
	assert.Contains(t, out, "target=3 index=-1 (8 probes)")
	assert.Equal(t, []int{170, 45, 75, 90, 802, 24, 2, 66}, demoInput, "demo input is not modified")
}

func TestBenchCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "charts")
	logFile := filepath.Join(dir, "bench.log")

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bench", "--sizes", "10,20", "--conditions", "random", "--runs", "1",
		"--out", out, "--compare-size", "20", "--seed", "3", "--no-progress", "--log-file", logFile})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "--- Condition: Random ---")
	assert.Contains(t, stdout.String(), "Saved: "+filepath.Join(out, "comparison_bar_chart.svg"))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 1+1+5)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "benchmark finished")
}

func TestBenchCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "sortviz.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("bench:\n  sizes: [5]\n  runs: 1\n  conditions: [Sorted]\n"), 0o644))

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bench", "-c", conf, "--no-charts", "--no-progress", "--log-file", filepath.Join(dir, "log")})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "--- Condition: Sorted ---")
	assert.NotContains(t, stdout.String(), "Random")
}

func TestBenchCommandInvalid(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bench", "--conditions", "shuffled", "--no-progress"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown input condition "shuffled"`)
}

func TestVisualizeRejectsBadAlgorithm(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"visualize", "-a", "bogo"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown algorithm "bogo"`)
}
