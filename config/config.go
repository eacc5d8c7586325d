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

// Package config loads the YAML configuration shared by the visualizer and
// the benchmark.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/ajroetker/go-sortviz/bench"
	"github.com/ajroetker/go-sortviz/steps"
	"github.com/ajroetker/go-sortviz/visual"
)

// Visualizer configures the interactive visualizer.
type Visualizer struct {
	// Number of bars in a generated list.
	N int `yaml:"n"`

	// Inclusive value range of generated lists.
	Min int `yaml:"min"`
	Max int `yaml:"max"`

	// Frames per second; one step is taken per frame at speed 1.
	FPS int `yaml:"fps"`

	// Algorithm selected at startup, by name or key (see steps.Lookup).
	Algorithm string `yaml:"algorithm"`

	// Seed for list generation, 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// Bench configures the benchmark and its charts.
type Bench struct {
	Sizes      []int    `yaml:"sizes"`
	Conditions []string `yaml:"conditions"`
	Runs       int      `yaml:"runs"`

	// Directory the SVG charts are written to.
	Out string `yaml:"out"`

	// Array size of the cross-condition comparison chart.
	CompareSize int `yaml:"compare-size"`

	Seed int64 `yaml:"seed"`
}

// Info is the configuration loaded from a YAML file, e.g.
//
//	visualizer:
//	  n: 50
//	  algorithm: quick
//	bench:
//	  sizes: [100, 1000]
//	  conditions: [Random, Reversed]
type Info struct {
	Visualizer Visualizer `yaml:"visualizer"`
	Bench      Bench      `yaml:"bench"`
}

// Default returns the configuration used when no file is given.
func Default() *Info {
	return &Info{
		Visualizer: Visualizer{
			N:         30,
			Min:       0,
			Max:       100,
			FPS:       60,
			Algorithm: "bubble",
		},
		Bench: Bench{
			Sizes:       []int{100, 500, 1000, 2000, 5000, 10000},
			Conditions:  []string{"Random", "Sorted", "Reversed"},
			Runs:        5,
			Out:         "charts",
			CompareSize: 5000,
		},
	}
}

// ReadFile loads the configuration from filename. Fields missing from the
// file keep their default values.
func (i *Info) ReadFile(filename string) error {
	*i = *Default()

	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", filename)
	}

	if err := yaml.UnmarshalStrict(b, i); err != nil {
		return errors.Wrapf(err, "parsing config %s", filename)
	}
	return nil
}

// Load returns the defaults when filename is empty, otherwise the validated
// contents of the file.
func Load(filename string) (*Info, error) {
	if filename == "" {
		return Default(), nil
	}
	var i Info
	if err := i.ReadFile(filename); err != nil {
		return nil, err
	}
	if err := i.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filename)
	}
	return &i, nil
}

// Validate checks both sections.
func (i *Info) Validate() error {
	if err := i.Visualizer.Validate(); err != nil {
		return errors.Wrap(err, "visualizer")
	}
	if err := i.Bench.Validate(); err != nil {
		return errors.Wrap(err, "bench")
	}
	return nil
}

// Validate checks the visualizer section.
func (v *Visualizer) Validate() error {
	if v.N < 1 {
		return errors.Errorf("n must be at least 1, got %d", v.N)
	}
	if err := visual.CheckRange(v.Min, v.Max); err != nil {
		return err
	}
	if v.FPS < 1 {
		return errors.Errorf("fps must be at least 1, got %d", v.FPS)
	}
	if _, ok := steps.Lookup(v.Algorithm); !ok {
		return errors.Errorf("unknown algorithm %q", v.Algorithm)
	}
	return nil
}

// Validate checks the bench section.
func (b *Bench) Validate() error {
	if len(b.Sizes) == 0 {
		return errors.New("at least one size is required")
	}
	if b.Runs < 1 {
		return errors.Errorf("runs must be at least 1, got %d", b.Runs)
	}
	if b.Out == "" {
		return errors.New("out directory is required")
	}
	conds, err := b.ParsedConditions()
	if err != nil {
		return err
	}
	return bench.Config{Sizes: b.Sizes, Conditions: conds, Runs: b.Runs}.Validate()
}

// ParsedConditions returns Conditions as bench.Condition values.
func (b *Bench) ParsedConditions() ([]bench.Condition, error) {
	return bench.ParseConditions(b.Conditions)
}
