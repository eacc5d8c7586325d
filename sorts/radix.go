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

import "math"

// radixBase is the digit base used by Radix.
const radixBase = 10

// Magnitude returns |v| as a uint64. It is exact for every Integer value,
// including the minimum of each signed type.
func Magnitude[T Integer](v T) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}

// Digit returns the base-10 digit of |v| selected by exp (1, 10, 100, ...).
func Digit[T Integer](v T, exp uint64) int {
	return int((Magnitude(v) / exp) % radixBase)
}

// MaxMagnitude returns the largest |v| in data, or 0 for empty data.
func MaxMagnitude[T Integer](data []T) uint64 {
	var m uint64
	for _, v := range data {
		if mag := Magnitude(v); mag > m {
			m = mag
		}
	}
	return m
}

// NextExp returns the digit selector after exp and whether another digit
// of maxMag remains to be sorted.
func NextExp(exp, maxMag uint64) (uint64, bool) {
	if exp > math.MaxUint64/radixBase {
		return 0, false
	}
	exp *= radixBase
	return exp, maxMag/exp > 0
}

// Radix sorts data in place using LSD base-10 radix sort with a stable
// counting sort per digit.
//
// Digits are taken from |v|. When negative values are present a final
// stable pass moves them, in reverse magnitude order, ahead of the
// non-negative values.
func Radix[T Integer](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Allocate the output buffer once for all passes
	output := make([]T, n)

	maxMag := MaxMagnitude(data)
	for exp, more := uint64(1), maxMag > 0; more; exp, more = NextExp(exp, maxMag) {
		countingPass(data, output, exp)
	}

	signPass(data, output)
}

// countingPass performs one stable counting sort of data by the digit
// selected by exp, using output as scratch.
func countingPass[T Integer](data, output []T, exp uint64) {
	var count [radixBase]int

	for _, v := range data {
		count[Digit(v, exp)]++
	}

	// Prefix sums give the end position of each bucket
	for d := 1; d < radixBase; d++ {
		count[d] += count[d-1]
	}

	// Walk backwards to keep the pass stable
	for i := len(data) - 1; i >= 0; i-- {
		d := Digit(data[i], exp)
		count[d]--
		output[count[d]] = data[i]
	}

	copy(data, output)
}

// signPass reorders data, already sorted by magnitude, so that negative
// values come first.
func signPass[T Integer](data, output []T) {
	neg := 0
	for _, v := range data {
		if v < 0 {
			neg++
		}
	}
	if neg == 0 {
		return
	}

	// Negatives fill [0, neg) from the back so the largest magnitude lands first
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
	copy(data, output)
}
