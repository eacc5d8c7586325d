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

package bench

import (
	"context"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/ajroetker/go-sortviz/sorts"
)

// Defaults used by Run when a Config leaves a field unset.
var (
	DefaultSizes = []int{100, 500, 1000, 2000, 5000, 10000}
	DefaultRuns  = 5
)

// LinearSearchName is the report name of the linear search benchmark.
const LinearSearchName = "Linear Search"

// SortFunc sorts data in place.
type SortFunc func(data []int)

// Algorithm is a named sort timed by Run.
type Algorithm struct {
	Name string
	Sort SortFunc
}

// Algorithms lists the timed sorts in report order.
var Algorithms = []Algorithm{
	{"Bubble Sort", sorts.Bubble[int]},
	{"Merge Sort", sorts.Merge[int]},
	{"Quick Sort", sorts.Quick[int]},
	{"Radix Sort", sorts.Radix[int]},
}

// Config controls a benchmark run.
type Config struct {
	// Sizes are the input lengths to time. Defaults to DefaultSizes.
	Sizes []int
	// Conditions are the input orderings to time. Defaults to Conditions.
	Conditions []Condition
	// Runs is the number of timed repetitions averaged per measurement.
	// Defaults to DefaultRuns.
	Runs int
	// Seed seeds input generation. Zero picks a time-based seed.
	Seed int64
	// Progress, when set, receives a progress bar.
	Progress io.Writer
	// Logger receives one debug entry per measurement. Defaults to a no-op logger.
	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if len(c.Sizes) == 0 {
		c.Sizes = DefaultSizes
	}
	if len(c.Conditions) == 0 {
		c.Conditions = Conditions
	}
	if c.Runs == 0 {
		c.Runs = DefaultRuns
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Validate reports whether the config describes a runnable benchmark.
// Zero values are valid and mean the defaults.
func (c Config) Validate() error {
	if c.Runs < 0 {
		return errors.Errorf("runs must not be negative (0 means %d), got %d", DefaultRuns, c.Runs)
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return errors.Errorf("array sizes must be positive, got %d", s)
		}
	}
	for _, cond := range c.Conditions {
		if cond < Random || cond > Reversed {
			return errors.Errorf("unknown input condition %d", int(cond))
		}
	}
	return nil
}

// Time returns the average wall time of fn over runs fresh copies of data.
func Time(fn SortFunc, data []int, runs int) time.Duration {
	if runs <= 0 {
		return 0
	}
	times := make([]time.Duration, runs)
	buf := make([]int, len(data))
	for i := range times {
		copy(buf, data)
		start := time.Now()
		fn(buf)
		times[i] = time.Since(start)
	}
	return average(times)
}

// TimeSearch returns the average wall time of a linear search for a random
// element of data over runs searches.
func TimeSearch(rng *rand.Rand, data []int, runs int) time.Duration {
	if runs <= 0 || len(data) == 0 {
		return 0
	}
	times := make([]time.Duration, runs)
	for i := range times {
		target := data[rng.Intn(len(data))]
		start := time.Now()
		sorts.LinearSearch(data, target)
		times[i] = time.Since(start)
	}
	return average(times)
}

func average(times []time.Duration) time.Duration {
	return lo.Sum(times) / time.Duration(len(times))
}

// Run times every algorithm for every condition and size.
// Linear search is always timed on Random input, whatever the condition.
// Run stops with the context's error if ctx is cancelled between measurements.
func Run(ctx context.Context, cfg Config) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	log := cfg.Logger

	rng := rand.New(rand.NewSource(cfg.Seed))
	res := newResults(cfg.Sizes, cfg.Conditions)

	var bar *pb.ProgressBar
	if cfg.Progress != nil {
		bar = pb.New(len(cfg.Conditions) * len(res.Algorithms) * len(cfg.Sizes))
		bar.Output = cfg.Progress
		bar.ShowTimeLeft = false
		bar.Prefix("Benchmarking ")
		bar.Start()
		defer bar.Finish()
	}

	log.Info("benchmark starting",
		zap.Ints("sizes", cfg.Sizes),
		zap.Int("runs", cfg.Runs),
		zap.Int64("seed", cfg.Seed),
		zap.Stringer("env", res.Env))

	measure := func(cond Condition, name string, size int, fn func() time.Duration) error {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "benchmark interrupted at %s/%s n=%d", cond, name, size)
		}
		d := fn()
		res.Times[cond][name] = append(res.Times[cond][name], d)
		log.Debug("measured",
			zap.Stringer("condition", cond),
			zap.String("algorithm", name),
			zap.Int("size", size),
			zap.Duration("avg", d))
		if bar != nil {
			bar.Increment()
		}
		return nil
	}

	for _, cond := range cfg.Conditions {
		for _, algo := range Algorithms {
			for _, size := range cfg.Sizes {
				data := Generate(rng, size, cond)
				err := measure(cond, algo.Name, size, func() time.Duration {
					return Time(algo.Sort, data, cfg.Runs)
				})
				if err != nil {
					return nil, err
				}
			}
		}

		for _, size := range cfg.Sizes {
			data := Generate(rng, size, Random)
			err := measure(cond, LinearSearchName, size, func() time.Duration {
				return TimeSearch(rng, data, cfg.Runs)
			})
			if err != nil {
				return nil, err
			}
		}
	}

	log.Info("benchmark finished")
	return res, nil
}

// algorithmNames returns the report order of all timed algorithms.
func algorithmNames() []string {
	names := lo.Map(Algorithms, func(a Algorithm, _ int) string { return a.Name })
	return append(slices.Clip(names), LinearSearchName)
}
