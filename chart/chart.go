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

// Package chart renders benchmark results as SVG line and bar charts.
package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// Palette is the series colour cycle.
var Palette = []string{"#3366cc", "#dc3912", "#ff9900", "#109618", "#990099", "#0099c6"}

// Series is one named sequence of values, one per x label.
type Series struct {
	Name   string
	Values []float64
}

// Chart describes a single chart.
type Chart struct {
	Title   string
	XTitle  string
	YTitle  string
	XLabels []string
	Series  []Series
	Width   int
	Height  int
	// HideLegend drops the legend below the plot area.
	HideLegend bool
}

const (
	marginLeft   = 90
	marginRight  = 30
	marginTop    = 50
	marginBottom = 70
	legendRow    = 20
	yTicks       = 5
	fontStyle    = "font-family:sans-serif;font-size:12px;fill:#333"
)

// frame holds the plot area geometry of a chart being drawn.
type frame struct {
	x, y, w, h int
	yMax       float64
}

func (f frame) yPos(v float64) int {
	if f.yMax <= 0 {
		return f.y + f.h
	}
	return f.y + f.h - int(math.Round(v/f.yMax*float64(f.h)))
}

func (c Chart) size() (int, int) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = 900
	}
	if h <= 0 {
		h = 500
	}
	return w, h
}

func (c Chart) legendRows() int {
	if c.HideLegend || len(c.Series) == 0 {
		return 0
	}
	return (len(c.Series) + 2) / 3
}

// begin draws everything but the data: title, axes, grid and labels.
func (c Chart) begin(canvas *svg.SVG) frame {
	w, h := c.size()
	canvas.Start(w, h)
	canvas.Title(c.Title)
	canvas.Rect(0, 0, w, h, "fill:white")

	f := frame{
		x:    marginLeft,
		y:    marginTop,
		w:    w - marginLeft - marginRight,
		h:    h - marginTop - marginBottom - c.legendRows()*legendRow,
		yMax: niceMax(c.maxValue()),
	}

	canvas.Text(w/2, 28, c.Title, "text-anchor:middle;font-family:sans-serif;font-size:18px;fill:#111")

	// Y grid and tick labels
	for i := 0; i <= yTicks; i++ {
		v := f.yMax * float64(i) / yTicks
		y := f.yPos(v)
		canvas.Line(f.x, y, f.x+f.w, y, "stroke:#e0e0e0")
		canvas.Text(f.x-8, y+4, formatValue(v), "text-anchor:end;"+fontStyle)
	}

	canvas.Line(f.x, f.y, f.x, f.y+f.h, "stroke:#333")
	canvas.Line(f.x, f.y+f.h, f.x+f.w, f.y+f.h, "stroke:#333")

	canvas.Text(f.x+f.w/2, f.y+f.h+45, c.XTitle, "text-anchor:middle;"+fontStyle)
	canvas.TranslateRotate(20, f.y+f.h/2, -90)
	canvas.Text(0, 0, c.YTitle, "text-anchor:middle;"+fontStyle)
	canvas.Gend()

	return f
}

// end draws the legend and closes the document.
func (c Chart) end(canvas *svg.SVG, f frame) {
	if c.legendRows() > 0 {
		colW := f.w / 3
		for i, s := range c.Series {
			x := f.x + (i%3)*colW
			y := f.y + f.h + 60 + (i/3)*legendRow
			canvas.Rect(x, y-10, 12, 12, "fill:"+color(i))
			canvas.Text(x+18, y, s.Name, fontStyle)
		}
	}
	canvas.End()
}

func (c Chart) maxValue() float64 {
	m := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			m = max(m, v)
		}
	}
	return m
}

// Line renders c as a line chart with a dot per value.
func Line(w io.Writer, c Chart) {
	canvas := svg.New(w)
	f := c.begin(canvas)

	n := len(c.XLabels)
	xPos := func(i int) int {
		if n <= 1 {
			return f.x + f.w/2
		}
		return f.x + i*f.w/(n-1)
	}

	for i, l := range c.XLabels {
		canvas.Text(xPos(i), f.y+f.h+18, l, "text-anchor:middle;"+fontStyle)
	}

	for si, s := range c.Series {
		xs := make([]int, len(s.Values))
		ys := make([]int, len(s.Values))
		for i, v := range s.Values {
			xs[i], ys[i] = xPos(i), f.yPos(v)
		}
		style := "stroke:" + color(si)
		canvas.Polyline(xs, ys, "fill:none;stroke-width:2;"+style)
		for i := range xs {
			canvas.Circle(xs[i], ys[i], 4, "fill:"+color(si))
		}
	}

	c.end(canvas, f)
}

// Bar renders c as a grouped bar chart: one group per x label, one bar
// per series inside each group.
func Bar(w io.Writer, c Chart) {
	canvas := svg.New(w)
	f := c.begin(canvas)

	n := len(c.XLabels)
	if n == 0 || len(c.Series) == 0 {
		c.end(canvas, f)
		return
	}
	group := f.w / n
	bar := max(1, group*8/10/len(c.Series))
	pad := (group - bar*len(c.Series)) / 2

	for i, l := range c.XLabels {
		canvas.Text(f.x+i*group+group/2, f.y+f.h+18, l, "text-anchor:middle;"+fontStyle)
	}

	for si, s := range c.Series {
		for i, v := range s.Values {
			if i >= n {
				break
			}
			x := f.x + i*group + pad + si*bar
			y := f.yPos(v)
			canvas.Rect(x, y, bar, f.y+f.h-y, "fill:"+color(si))
		}
	}

	c.end(canvas, f)
}

func color(i int) string {
	return Palette[i%len(Palette)]
}

// niceMax rounds v up to 1, 2, 2.5 or 5 times a power of ten so the y ticks
// land on readable values.
func niceMax(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if v <= m*exp {
			return m * exp
		}
	}
	return 10 * exp
}

func formatValue(v float64) string {
	switch {
	case v == 0:
		return "0"
	case v >= 1:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%.2g", v)
}
