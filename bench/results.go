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

package bench

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Results holds the average times of one benchmark run.
type Results struct {
	Sizes      []int
	Conditions []Condition
	// Algorithms is the report order: the sorts, then LinearSearchName.
	Algorithms []string
	// Times[cond][algorithm][i] is the average time for Sizes[i].
	Times map[Condition]map[string][]time.Duration
	Env   Env
}

func newResults(sizes []int, conds []Condition) *Results {
	r := &Results{
		Sizes:      slices.Clone(sizes),
		Conditions: slices.Clone(conds),
		Algorithms: algorithmNames(),
		Times:      make(map[Condition]map[string][]time.Duration, len(conds)),
		Env:        CurrentEnv(),
	}
	for _, c := range conds {
		r.Times[c] = make(map[string][]time.Duration, len(r.Algorithms))
	}
	return r
}

// At returns the average time of algo under cond at the given size.
func (r *Results) At(cond Condition, algo string, size int) (time.Duration, bool) {
	i := slices.Index(r.Sizes, size)
	if i < 0 {
		return 0, false
	}
	times := r.Times[cond][algo]
	if i >= len(times) {
		return 0, false
	}
	return times[i], true
}

// Seconds returns the times of algo under cond as seconds, one per size.
func (r *Results) Seconds(cond Condition, algo string) []float64 {
	times := r.Times[cond][algo]
	out := make([]float64, len(times))
	for i, d := range times {
		out[i] = d.Seconds()
	}
	return out
}

const (
	nameWidth = 16
	cellWidth = 10
)

// WriteTable writes one fixed-width table per condition: a row per
// algorithm and a column per size, times in seconds.
func (r *Results) WriteTable(w io.Writer) error {
	rule := strings.Repeat("=", 65)
	bold := color.New(color.Bold)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	bold.Fprintln(&b, "  SORTING ALGORITHM PERFORMANCE ANALYSIS")
	fmt.Fprintf(&b, "  %s\n", r.Env)
	fmt.Fprintln(&b, rule)

	for _, cond := range r.Conditions {
		fmt.Fprintf(&b, "\n--- Condition: %s ---\n", cond)
		bold.Fprintf(&b, "%-*s ", nameWidth, "Algorithm")
		for _, s := range r.Sizes {
			bold.Fprintf(&b, "%*s", cellWidth, "n="+humanize.Comma(int64(s)))
		}
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, strings.Repeat("-", nameWidth+cellWidth*len(r.Sizes)))

		for _, algo := range r.Algorithms {
			fmt.Fprintf(&b, "%-*s ", nameWidth, algo)
			for _, d := range r.Times[cond][algo] {
				fmt.Fprintf(&b, "%*.5fs", cellWidth-1, d.Seconds())
			}
			fmt.Fprintln(&b)
		}
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing benchmark table")
}
