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

package chart

import (
	"bufio"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortviz/bench"
)

// DefaultCompareSize is the array size compared across conditions.
const DefaultCompareSize = 5000

// Options controls Render.
type Options struct {
	// CompareSize selects the size of the cross-condition bar chart.
	// When absent from the results the largest size is used.
	CompareSize int
	Logger      *zap.Logger
}

// Render writes the full chart set for res into dir and returns the paths
// written, in order:
//
//   - performance_<condition>.svg: a line chart per condition
//   - comparison_bar_chart.svg: every algorithm under every condition at CompareSize
//   - scaling_<algorithm>.svg: a bar chart per algorithm on Random input
func Render(dir string, res *bench.Results, opts Options) ([]string, error) {
	if opts.CompareSize == 0 {
		opts.CompareSize = DefaultCompareSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if len(res.Sizes) == 0 {
		return nil, errors.New("no benchmark sizes to chart")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating chart directory %s", dir)
	}

	sizeLabels := lo.Map(res.Sizes, func(s int, _ int) string { return strconv.Itoa(s) })

	var paths []string
	write := func(name string, draw func(*bufio.Writer)) error {
		path := filepath.Join(dir, name)
		if err := writeFile(path, draw); err != nil {
			return err
		}
		opts.Logger.Info("chart saved", zap.String("path", path))
		paths = append(paths, path)
		return nil
	}

	for _, cond := range res.Conditions {
		c := Chart{
			Title:   "Sorting Algorithm Performance - " + cond.String() + " Input",
			XTitle:  "Array Size (n)",
			YTitle:  "Average Time (seconds)",
			XLabels: sizeLabels,
			Width:   900,
			Height:  500,
		}
		for _, algo := range res.Algorithms {
			c.Series = append(c.Series, Series{Name: algo, Values: rounded(res.Seconds(cond, algo))})
		}
		err := write("performance_"+strings.ToLower(cond.String())+".svg", func(w *bufio.Writer) { Line(w, c) })
		if err != nil {
			return paths, err
		}
	}

	size := compareSize(res.Sizes, opts.CompareSize)
	cmp := Chart{
		Title:   "Algorithm Comparison Across Input Conditions (n=" + strconv.Itoa(size) + ")",
		XTitle:  "Algorithm",
		YTitle:  "Average Time (seconds)",
		XLabels: res.Algorithms,
		Width:   900,
		Height:  500,
	}
	for _, cond := range res.Conditions {
		values := lo.Map(res.Algorithms, func(algo string, _ int) float64 {
			d, _ := res.At(cond, algo, size)
			return round6(d.Seconds())
		})
		cmp.Series = append(cmp.Series, Series{Name: cond.String(), Values: values})
	}
	if err := write("comparison_bar_chart.svg", func(w *bufio.Writer) { Bar(w, cmp) }); err != nil {
		return paths, err
	}

	if !slices.Contains(res.Conditions, bench.Random) {
		opts.Logger.Warn("no Random results, skipping scaling charts")
		return paths, nil
	}
	for _, algo := range res.Algorithms {
		c := Chart{
			Title:      algo + " - Scaling Across Array Sizes (Random Input)",
			XTitle:     "Array Size",
			YTitle:     "Average Time (seconds)",
			XLabels:    sizeLabels,
			Series:     []Series{{Name: algo, Values: rounded(res.Seconds(bench.Random, algo))}},
			Width:      700,
			Height:     400,
			HideLegend: true,
		}
		name := "scaling_" + strings.ReplaceAll(strings.ToLower(algo), " ", "_") + ".svg"
		if err := write(name, func(w *bufio.Writer) { Bar(w, c) }); err != nil {
			return paths, err
		}
	}

	return paths, nil
}

func writeFile(path string, draw func(*bufio.Writer)) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	w := bufio.NewWriter(f)
	draw(w)
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// compareSize returns want if it is one of sizes, else the largest size.
func compareSize(sizes []int, want int) int {
	if slices.Contains(sizes, want) {
		return want
	}
	return slices.Max(sizes)
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func rounded(vs []float64) []float64 {
	return lo.Map(vs, func(v float64, _ int) float64 { return round6(v) })
}
