// Package sorts provides plain, uninstrumented implementations of the
// classic sorting algorithms animated by the visualizer, plus a linear search.
//
// These are the routines the benchmark times. The instrumented variants in
// package steps follow the same control flow and produce identical results.
//
// # Algorithms
//
//   - Bubble: adjacent-swap passes, stable, in place, O(n²) (O(n) on sorted input)
//   - Merge: top-down merge sort with a scratch buffer, stable, O(n log n)
//   - Quick: last-element pivot with Lomuto partition, in place, not stable
//   - Radix: LSD base-10 radix sort using a counting sort per digit, O(n·k)
//   - LinearSearch: O(n) scan returning NotFound when the target is absent
//
// # Example Usage
//
//	data := []int{170, 45, 75, 90, 802, 24, 2, 66}
//	sorts.Radix(data)
//	i := sorts.LinearSearch(data, 90)
package sorts
