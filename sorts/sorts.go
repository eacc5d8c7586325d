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

package sorts

// Integer is the set of element types the sorting routines accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// NotFound is returned by LinearSearch when the target is absent.
const NotFound = -1

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T Integer](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// =============================================================================
// Bubble sort
// =============================================================================

// Bubble sorts data in place by repeatedly swapping adjacent elements that
// are out of order. A pass without swaps ends the sort early.
func Bubble[T Integer](data []T) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// =============================================================================
// Merge sort
// =============================================================================

// Merge sorts data with a stable top-down merge sort.
// A single scratch buffer of len(data) is allocated for the whole sort.
func Merge[T Integer](data []T) {
	if len(data) <= 1 {
		return
	}
	buf := make([]T, len(data))
	mergeSort(data, buf)
}

func mergeSort[T Integer](data, buf []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	mid := n / 2
	mergeSort(data[:mid], buf[:mid])
	mergeSort(data[mid:], buf[mid:])

	// Only the left half needs saving: writes never overtake the right cursor.
	left := buf[:mid]
	copy(left, data[:mid])

	i, j, k := 0, mid, 0
	for i < len(left) && j < n {
		if left[i] <= data[j] {
			data[k] = left[i]
			i++
		} else {
			data[k] = data[j]
			j++
		}
		k++
	}
	for i < len(left) {
		data[k] = left[i]
		i++
		k++
	}
}

// =============================================================================
// Quick sort
// =============================================================================

// Quick sorts data in place using quicksort with the last element as pivot.
//
// The smaller partition is sorted recursively and the larger one iteratively,
// so stack depth stays O(log n) even on already sorted input where the
// last-element pivot degrades to O(n²) comparisons.
func Quick[T Integer](data []T) {
	for len(data) > 1 {
		p := Partition(data)
		left, right := data[:p], data[p+1:]
		if len(left) < len(right) {
			Quick(left)
			data = right
		} else {
			Quick(right)
			data = left
		}
	}
}

// Partition performs a Lomuto partition of data around its last element.
// Elements <= pivot end up before the returned index, the pivot at it and
// larger elements after it.
func Partition[T Integer](data []T) int {
	high := len(data) - 1
	pivot := data[high]
	i := -1

	for j := 0; j < high; j++ {
		if data[j] <= pivot {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}

	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}

// =============================================================================
// Linear search
// =============================================================================

// LinearSearch returns the index of the first element equal to target,
// or NotFound.
func LinearSearch[T Integer](data []T, target T) int {
	for i, v := range data {
		if v == target {
			return i
		}
	}
	return NotFound
}
