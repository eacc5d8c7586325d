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

// Package visual implements the interactive terminal visualizer: a Model
// driving one instrumented run at a time, a Layout mapping the list onto
// terminal cells and a renderer drawing one frame per tick.
package visual

import "math/rand"

// Screen areas reserved around the bars, in terminal cells.
const (
	SidePad = 4
	TopPad  = 6
	gap     = 1
)

// Layout maps a list of values onto a terminal of Width x Height cells.
type Layout struct {
	Width  int
	Height int

	List     []int
	Min, Max int

	// BlockWidth is the number of columns allotted to each bar, gap included.
	BlockWidth int
	StartX     int
}

// NewLayout returns the layout of list on a width x height terminal.
func NewLayout(width, height int, list []int) *Layout {
	l := &Layout{Width: width, Height: height}
	l.SetList(list)
	return l
}

// SetList replaces the list and recomputes the bar geometry.
func (l *Layout) SetList(list []int) {
	l.List = list
	l.Min, l.Max = 0, 0
	if len(list) > 0 {
		l.Min, l.Max = list[0], list[0]
		for _, v := range list[1:] {
			l.Min = min(l.Min, v)
			l.Max = max(l.Max, v)
		}
	}
	l.compute()
}

// Resize updates the terminal size. It reports whether anything changed.
func (l *Layout) Resize(width, height int) bool {
	if width == l.Width && height == l.Height {
		return false
	}
	l.Width, l.Height = width, height
	l.compute()
	return true
}

func (l *Layout) compute() {
	l.StartX = SidePad / 2
	l.BlockWidth = 1
	if n := len(l.List); n > 0 {
		l.BlockWidth = max(1, (l.Width-SidePad)/n)
	}
}

// Rows returns the number of terminal rows available to the bars.
func (l *Layout) Rows() int {
	return max(1, l.Height-TopPad)
}

// BarWidth returns the drawn width of every bar.
func (l *Layout) BarWidth() int {
	if l.BlockWidth > gap+1 {
		return l.BlockWidth - gap
	}
	return l.BlockWidth
}

// BarX returns the column of the left edge of bar i.
func (l *Layout) BarX(i int) int {
	return l.StartX + i*l.BlockWidth
}

// Visible reports whether bar i fits on screen.
func (l *Layout) Visible(i int) bool {
	return l.BarX(i)+l.BarWidth() <= l.Width
}

// BarHeight returns the height of bar i in rows, between 1 (the list
// minimum) and Rows (the list maximum).
func (l *Layout) BarHeight(i int) int {
	rows := l.Rows()
	span := l.Max - l.Min
	if span <= 0 {
		return rows
	}
	return 1 + (l.List[i]-l.Min)*(rows-1)/span
}

// GenerateList returns n values drawn uniformly from [lo, hi].
func GenerateList(rng *rand.Rand, n, lo, hi int) []int {
	list := make([]int, n)
	for i := range list {
		list[i] = lo + rng.Intn(hi-lo+1)
	}
	return list
}
