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

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(10000) + 1
	}
	return data
}

func generateSortedInt(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i + 1
	}
	return data
}

func benchmarkSort(b *testing.B, sort func([]int), ref []int) {
	data := make([]int, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sort(data)
	}
}

// Random input
func BenchmarkBubble_Random_1000(b *testing.B) {
	benchmarkSort(b, Bubble[int], generateInt(1000))
}

func BenchmarkMerge_Random_1000(b *testing.B) {
	benchmarkSort(b, Merge[int], generateInt(1000))
}

func BenchmarkQuick_Random_1000(b *testing.B) {
	benchmarkSort(b, Quick[int], generateInt(1000))
}

func BenchmarkRadix_Random_1000(b *testing.B) {
	benchmarkSort(b, Radix[int], generateInt(1000))
}

func BenchmarkMerge_Random_10000(b *testing.B) {
	benchmarkSort(b, Merge[int], generateInt(10000))
}

func BenchmarkQuick_Random_10000(b *testing.B) {
	benchmarkSort(b, Quick[int], generateInt(10000))
}

func BenchmarkRadix_Random_10000(b *testing.B) {
	benchmarkSort(b, Radix[int], generateInt(10000))
}

// Stdlib comparison
func BenchmarkStdlib_Random_10000(b *testing.B) {
	benchmarkSort(b, slices.Sort[[]int], generateInt(10000))
}

// Sorted input: best case for Bubble, worst case for Quick
func BenchmarkBubble_Sorted_10000(b *testing.B) {
	benchmarkSort(b, Bubble[int], generateSortedInt(10000))
}

func BenchmarkQuick_Sorted_10000(b *testing.B) {
	benchmarkSort(b, Quick[int], generateSortedInt(10000))
}

func BenchmarkLinearSearch_10000(b *testing.B) {
	data := generateInt(10000)
	targets := make([]int, 64)
	for i := range targets {
		targets[i] = data[rand.Intn(len(data))]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		LinearSearch(data, targets[i%len(targets)])
	}
}
