// Package steps provides instrumented versions of the algorithms in package
// sorts. Each one is a range-over-func iterator that suspends after every
// significant operation and reports which positions of the array it touched.
//
// The array is mutated as the iterator advances, so a consumer can render
// the array after every Step and obtain a frame-by-frame animation:
//
//	data := []int{5, 2, 4, 1}
//	for step := range steps.Bubble(data) {
//	    draw(data, step.Touched())
//	}
//
// Consumers that need one step per frame use a Cursor, which wraps iter.Pull.
// Breaking out early abandons the run and leaves data as a partially sorted
// permutation of its input.
package steps
