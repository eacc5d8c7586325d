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

package steps

import (
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortviz/sorts"
)

type instrumented struct {
	name  string
	steps func([]int) iter.Seq[Step]
	plain func([]int)
}

var instrumentedSorts = []instrumented{
	{"Bubble", Bubble[int], sorts.Bubble[int]},
	{"Merge", Merge[int], sorts.Merge[int]},
	{"Quick", Quick[int], sorts.Quick[int]},
	{"Radix", Radix[int], sorts.Radix[int]},
}

func randomInts(n, lo, hi int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = lo + rand.Intn(hi-lo+1)
	}
	return data
}

// drain runs seq to completion, checking every touched position is in range.
func drain(t *testing.T, name string, n int, seq iter.Seq[Step]) int {
	t.Helper()
	count := 0
	for s := range seq {
		count++
		for _, i := range s.Touched() {
			if i < 0 || i >= n {
				t.Fatalf("%s: step %v touches position %d outside [0, %d)", name, s, i, n)
			}
		}
	}
	return count
}

func TestInstrumentedMatchesPlain(t *testing.T) {
	inputs := [][]int{
		nil,
		{42},
		{2, 1},
		{170, 45, 75, 90, 802, 24, 2, 66},
		{5, 5, 5, 5},
		{8, 7, 6, 5, 4, 3, 2, 1},
		{-3, 10, 0, -7, 2, -3},
		randomInts(100, 0, 100),
		randomInts(257, -1000, 1000),
	}
	for _, tc := range instrumentedSorts {
		for _, input := range inputs {
			want := slices.Clone(input)
			tc.plain(want)

			got := slices.Clone(input)
			drain(t, tc.name, len(got), tc.steps(got))

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s(%v) mismatch (-plain +instrumented):\n%s", tc.name, input, diff)
			}
			if !sorts.IsSorted(got) {
				t.Errorf("%s(%v) produced unsorted result %v", tc.name, input, got)
			}
		}
	}
}

func TestEarlyStopLeavesPermutation(t *testing.T) {
	inputs := [][]int{
		{5, 1},
		{3, -5},
		{170, 45, 75, 90, 802, 24, 2, 66},
		{-3, 10, 0, -7, 2, -3, 44, 9},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}
	for _, tc := range instrumentedSorts {
		for _, input := range inputs {
			want := slices.Clone(input)
			slices.Sort(want)
			total := Count(tc.steps(slices.Clone(input))).Total

			for limit := 0; limit <= total; limit++ {
				data := slices.Clone(input)
				taken := 0
				for range tc.steps(data) {
					if taken == limit {
						break
					}
					taken++
				}
				got := slices.Clone(data)
				slices.Sort(got)
				require.Equal(t, want, got, "%s(%v) stopped after %d of %d steps is not a permutation: %v",
					tc.name, input, limit, total, data)
			}
		}
	}
}

func TestMergeStoppedAtFirstWrite(t *testing.T) {
	data := []int{5, 1}
	for s := range Merge(data) {
		if s.Op == Write {
			break
		}
	}
	assert.ElementsMatch(t, []int{1, 5}, data)
}

func TestRadixStoppedInSignPass(t *testing.T) {
	data := []int{3, -5}
	// One digit round: two reads and two writes, then the sign pass.
	writes := 0
	for s := range Radix(data) {
		if s.Op == Write {
			writes++
			if writes == 3 {
				break
			}
		}
	}
	assert.Equal(t, []int{-5, 3}, data)
}

func TestBubbleSteps(t *testing.T) {
	data := []int{3, 1, 2}
	var got []Step
	for s := range Bubble(data) {
		got = append(got, s)
	}
	want := []Step{
		two(Compare, 0, 1), two(Swap, 0, 1),
		two(Compare, 1, 2), two(Swap, 1, 2),
		two(Compare, 0, 1),
	}
	require.Equal(t, want, got)
	assert.Equal(t, []int{1, 2, 3}, data)
}

func TestBubbleSortedInputIsLinear(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	st := Count(Bubble(data))
	assert.Equal(t, len(data)-1, st.Of(Compare))
	assert.Zero(t, st.Of(Swap))
}

func TestMergeSteps(t *testing.T) {
	data := []int{2, 1}
	var got []Step
	for s := range Merge(data) {
		got = append(got, s)
	}
	want := []Step{two(Compare, 0, 1), one(Write, 0), one(Write, 1)}
	require.Equal(t, want, got)
	assert.Equal(t, []int{1, 2}, data)
}

func TestQuickSteps(t *testing.T) {
	data := []int{3, 1, 2}
	st := Count(Quick(data))
	assert.Equal(t, []int{1, 2, 3}, data)
	// Partition of [3 1 2] around 2, then nothing left with two or more elements.
	assert.Equal(t, 1, st.Of(Pivot))
	assert.Equal(t, 2, st.Of(Compare))
	assert.Equal(t, 2, st.Of(Swap))
}

func TestQuickFirstStepIsPivot(t *testing.T) {
	data := []int{4, 9, 1, 7}
	next, stop := iter.Pull(Quick(data))
	defer stop()
	s, ok := next()
	require.True(t, ok)
	assert.Equal(t, one(Pivot, 3), s)
}

func TestRadixSteps(t *testing.T) {
	data := []int{170, 45, 75, 90, 802, 24, 2, 66}
	st := Count(Radix(data))
	// Three digits: one read and one write per element per digit.
	assert.Equal(t, 3*8, st.Of(Read))
	assert.Equal(t, 3*8, st.Of(Write))
	assert.Equal(t, []int{2, 24, 45, 66, 75, 90, 170, 802}, data)
}

func TestRadixNegativeAddsSignPass(t *testing.T) {
	data := []int{-5, 3, -1}
	st := Count(Radix(data))
	assert.Equal(t, []int{-5, -1, 3}, data)
	assert.Equal(t, 3, st.Of(Read))
	assert.Equal(t, 6, st.Of(Write))
}

func TestRadixAllZero(t *testing.T) {
	data := []int{0, 0, 0}
	assert.Zero(t, Count(Radix(data)).Total)
}

func TestLinearSearchSteps(t *testing.T) {
	tests := []struct {
		name   string
		data   []int
		target int
		want   []Step
	}{
		{"found", []int{4, 8, 15}, 8, []Step{one(Compare, 0), one(Compare, 1), one(Found, 1)}},
		{"first", []int{4, 8, 4}, 4, []Step{one(Compare, 0), one(Found, 0)}},
		{"missing", []int{4, 8}, 16, []Step{one(Compare, 0), one(Compare, 1), one(Miss, -1)}},
		{"empty", nil, 1, []Step{one(Miss, -1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Step
			for s := range LinearSearch(tt.data, tt.target) {
				got = append(got, s)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinearSearchAgreesWithPlain(t *testing.T) {
	data := randomInts(200, 0, 50)
	for target := -1; target <= 51; target++ {
		want := sorts.LinearSearch(data, target)
		var last Step
		for s := range LinearSearch(data, target) {
			last = s
		}
		if want == sorts.NotFound {
			assert.Equal(t, Miss, last.Op, "target %d", target)
		} else {
			assert.Equal(t, one(Found, want), last, "target %d", target)
		}
	}
}

func TestStepTouched(t *testing.T) {
	assert.Equal(t, []int{1, 2}, two(Swap, 1, 2).Touched())
	assert.Equal(t, []int{4}, one(Write, 4).Touched())
	assert.Nil(t, one(Miss, -1).Touched())
	assert.True(t, two(Compare, 3, 7).Has(7))
	assert.False(t, one(Write, 3).Has(-1))
	assert.Equal(t, "swap(1, 2)", two(Swap, 1, 2).String())
	assert.Equal(t, "write(4)", one(Write, 4).String())
	assert.Equal(t, "miss", one(Miss, -1).String())
	assert.Equal(t, "Op(200)", Op(200).String())
}
