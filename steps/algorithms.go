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

	"github.com/ajroetker/go-sortviz/sorts"
)

// Each generator below mirrors the control flow of its counterpart in
// package sorts. The inner helpers take yield and return false once the
// consumer has stopped, which unwinds the recursion.

// =============================================================================
// Bubble sort
// =============================================================================

// Bubble yields Compare(j, j+1) before each adjacent comparison and
// Swap(j, j+1) after each exchange.
func Bubble[T sorts.Integer](data []T) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		n := len(data)
		for i := 0; i < n-1; i++ {
			swapped := false
			for j := 0; j < n-i-1; j++ {
				if !yield(two(Compare, j, j+1)) {
					return
				}
				if data[j] > data[j+1] {
					data[j], data[j+1] = data[j+1], data[j]
					swapped = true
					if !yield(two(Swap, j, j+1)) {
						return
					}
				}
			}
			if !swapped {
				return
			}
		}
	}
}

// =============================================================================
// Merge sort
// =============================================================================

// Merge yields Compare(k, j) for each merge decision, where k is the slot
// being filled and j the right-half candidate, and Write(k) for every
// element placed.
func Merge[T sorts.Integer](data []T) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if len(data) <= 1 {
			return
		}
		buf := make([]T, len(data))
		mergeSteps(data, buf, 0, len(data), yield)
	}
}

func mergeSteps[T sorts.Integer](data, buf []T, lo, hi int, yield func(Step) bool) bool {
	if hi-lo <= 1 {
		return true
	}

	mid := lo + (hi-lo)/2
	if !mergeSteps(data, buf, lo, mid, yield) || !mergeSteps(data, buf, mid, hi, yield) {
		return false
	}

	copy(buf[lo:mid], data[lo:mid])

	// data[lo:k] is merged, buf[i:mid] and data[j:hi] are pending and
	// j-k == mid-i, so a stopped run puts buf[i:mid] back into data[k:j].
	i, j, k := lo, mid, lo
	stop := func() bool {
		copy(data[k:j], buf[i:mid])
		return false
	}
	for i < mid && j < hi {
		if !yield(two(Compare, k, j)) {
			return stop()
		}
		if buf[i] <= data[j] {
			data[k] = buf[i]
			i++
		} else {
			data[k] = data[j]
			j++
		}
		k++
		if !yield(one(Write, k-1)) {
			return stop()
		}
	}
	for i < mid {
		data[k] = buf[i]
		i++
		k++
		if !yield(one(Write, k-1)) {
			return stop()
		}
	}
	// The remaining right-half elements are already in place.
	return true
}

// =============================================================================
// Quick sort
// =============================================================================

// Quick yields Pivot(high) when a partition starts, Compare(j, high) for
// each element tested against the pivot and Swap for every exchange,
// including the final move of the pivot into place.
func Quick[T sorts.Integer](data []T) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		quickSteps(data, 0, len(data)-1, yield)
	}
}

func quickSteps[T sorts.Integer](data []T, low, high int, yield func(Step) bool) bool {
	for low < high {
		p, ok := partitionSteps(data, low, high, yield)
		if !ok {
			return false
		}
		// Recurse into the smaller side, loop on the larger.
		if p-low < high-p {
			if !quickSteps(data, low, p-1, yield) {
				return false
			}
			low = p + 1
		} else {
			if !quickSteps(data, p+1, high, yield) {
				return false
			}
			high = p - 1
		}
	}
	return true
}

func partitionSteps[T sorts.Integer](data []T, low, high int, yield func(Step) bool) (int, bool) {
	if !yield(one(Pivot, high)) {
		return 0, false
	}
	pivot := data[high]
	i := low - 1

	for j := low; j < high; j++ {
		if !yield(two(Compare, j, high)) {
			return 0, false
		}
		if data[j] <= pivot {
			i++
			data[i], data[j] = data[j], data[i]
			if !yield(two(Swap, i, j)) {
				return 0, false
			}
		}
	}

	data[i+1], data[high] = data[high], data[i+1]
	if !yield(two(Swap, i+1, high)) {
		return 0, false
	}
	return i + 1, true
}

// =============================================================================
// Radix sort
// =============================================================================

// Radix yields Read(i) for every digit counted and Write(i) for every
// element copied back from the output buffer, one round per digit, followed
// by one more round of writes when negative values have to be moved first.
func Radix[T sorts.Integer](data []T) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		n := len(data)
		if n <= 1 {
			return
		}
		output := make([]T, n)

		maxMag := sorts.MaxMagnitude(data)
		for exp, more := uint64(1), maxMag > 0; more; exp, more = sorts.NextExp(exp, maxMag) {
			if !countingSteps(data, output, exp, yield) {
				return
			}
		}
		signSteps(data, output, yield)
	}
}

func countingSteps[T sorts.Integer](data, output []T, exp uint64, yield func(Step) bool) bool {
	var count [10]int

	for i, v := range data {
		if !yield(one(Read, i)) {
			return false
		}
		count[sorts.Digit(v, exp)]++
	}

	for d := 1; d < len(count); d++ {
		count[d] += count[d-1]
	}

	for i := len(data) - 1; i >= 0; i-- {
		d := sorts.Digit(data[i], exp)
		count[d]--
		output[count[d]] = data[i]
	}

	return writeBack(data, output, yield)
}

func signSteps[T sorts.Integer](data, output []T, yield func(Step) bool) bool {
	neg := 0
	for _, v := range data {
		if v < 0 {
			neg++
		}
	}
	if neg == 0 {
		return true
	}

	ni, pi := neg-1, neg
	for _, v := range data {
		if v < 0 {
			output[ni] = v
			ni--
		} else {
			output[pi] = v
			pi++
		}
	}

	return writeBack(data, output, yield)
}

// writeBack copies output into data one Write at a time. When the consumer
// stops, the rest is copied anyway so data stays a permutation of the input.
func writeBack[T sorts.Integer](data, output []T, yield func(Step) bool) bool {
	for i := range data {
		data[i] = output[i]
		if !yield(one(Write, i)) {
			copy(data[i+1:], output[i+1:])
			return false
		}
	}
	return true
}

// =============================================================================
// Linear search
// =============================================================================

// LinearSearch yields Compare(i) for each probe, then Found(i) at the first
// match or a single Miss once the whole array has been scanned.
func LinearSearch[T sorts.Integer](data []T, target T) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for i, v := range data {
			if !yield(one(Compare, i)) {
				return
			}
			if v == target {
				yield(one(Found, i))
				return
			}
		}
		yield(one(Miss, -1))
	}
}
