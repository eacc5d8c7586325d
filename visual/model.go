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

package visual

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortviz/sorts"
	"github.com/ajroetker/go-sortviz/steps"
)

// Control keys, as read from a terminal in raw mode.
const (
	KeyCtrlC byte = 3
	KeyEsc   byte = 27
	KeySpace byte = ' '
)

// MaxSpeed caps the number of steps taken per frame.
const MaxSpeed = 64

// MaxValue bounds the absolute value of generated bars, which keeps the
// range and bar height arithmetic far from overflow.
const MaxValue = 1_000_000

// Options configures a visualizer session.
type Options struct {
	// N is the number of bars; Min and Max bound their values.
	N, Min, Max int
	// FPS is the frame rate of Run.
	FPS int
	// Algorithm is the initially selected algorithm (see steps.Lookup).
	Algorithm string
	// Seed seeds list generation; 0 picks a time-based seed.
	Seed int64
	// Width and Height are the screen size in cells.
	Width, Height int
	Logger        *zap.Logger
}

// Model is the visualizer state: the list, the selected algorithm and the
// run in progress. Everything happens on the caller's goroutine.
type Model struct {
	Layout    *Layout
	Algorithm steps.Algorithm

	// Sorting is set while the run advances on every Tick.
	Sorting bool
	// Finished is set once the current run has completed.
	Finished bool
	// Speed is the number of steps taken per Tick.
	Speed int
	// Target is the value searched for by a search run.
	Target int
	// Result is the index found by the last search run, or sorts.NotFound.
	Result int
	// Quit is set once the user asked to leave.
	Quit bool

	cursor *steps.Cursor
	last   steps.Step
	taken  int

	rng          *rand.Rand
	n, low, high int
	log          *zap.Logger
}

// NewModel returns a model holding a freshly generated list.
func NewModel(opts Options) (*Model, error) {
	if opts.N < 1 {
		return nil, errors.Errorf("need at least one bar, got %d", opts.N)
	}
	if err := CheckRange(opts.Min, opts.Max); err != nil {
		return nil, err
	}
	if opts.Algorithm == "" {
		opts.Algorithm = "bubble"
	}
	algo, ok := steps.Lookup(opts.Algorithm)
	if !ok {
		return nil, errors.Errorf("unknown algorithm %q", opts.Algorithm)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m := &Model{
		Algorithm: algo,
		Speed:     1,
		Result:    sorts.NotFound,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		n:         opts.N,
		low:       opts.Min,
		high:      opts.Max,
		log:       opts.Logger,
	}
	m.Layout = NewLayout(opts.Width, opts.Height, GenerateList(m.rng, m.n, m.low, m.high))
	return m, nil
}

// CheckRange reports whether [lo, hi] is a usable range of bar values.
func CheckRange(lo, hi int) error {
	if lo > hi {
		return errors.Errorf("min %d is greater than max %d", lo, hi)
	}
	if lo < -MaxValue || hi > MaxValue {
		return errors.Errorf("values must lie within [%d, %d], got [%d, %d]", -MaxValue, MaxValue, lo, hi)
	}
	return nil
}

// List returns the list being visualized.
func (m *Model) List() []int { return m.Layout.List }

// Last returns the most recent step of the current run.
func (m *Model) Last() (steps.Step, bool) {
	if m.cursor == nil || m.taken == 0 {
		return steps.Step{}, false
	}
	return m.last, true
}

// Steps returns the number of steps taken by the current run.
func (m *Model) Steps() int { return m.taken }

// discard abandons the current run, if any.
func (m *Model) discard() {
	if m.cursor != nil {
		m.cursor.Stop()
		m.cursor = nil
	}
	m.Sorting = false
	m.Finished = false
	m.taken = 0
	m.Result = sorts.NotFound
}

// Reset generates a new list and abandons the current run.
func (m *Model) Reset() {
	m.discard()
	m.Layout.SetList(GenerateList(m.rng, m.n, m.low, m.high))
	m.log.Debug("list reset", zap.Ints("list", m.Layout.List))
}

// Select switches to algo and abandons the current run.
func (m *Model) Select(algo steps.Algorithm) {
	m.discard()
	m.Algorithm = algo
	m.log.Debug("algorithm selected", zap.String("algorithm", algo.Name))
}

// Toggle starts, pauses or resumes the run. The run is created on the first
// start after a reset or selection; a finished run stays finished.
func (m *Model) Toggle() {
	if m.Sorting {
		m.Sorting = false
		return
	}
	if m.Finished {
		return
	}
	if m.cursor == nil {
		list := m.Layout.List
		if m.Algorithm.Search {
			m.Target = list[m.rng.Intn(len(list))]
		}
		m.cursor = steps.NewCursor(m.Algorithm.Steps(list, m.Target))
		m.log.Debug("run started", zap.String("algorithm", m.Algorithm.Name), zap.Int("n", len(list)))
	}
	m.Sorting = true
}

// Tick advances the run by Speed steps while sorting.
func (m *Model) Tick() {
	if !m.Sorting || m.cursor == nil {
		return
	}
	for range m.Speed {
		s, ok := m.cursor.Next()
		if !ok {
			m.finish()
			return
		}
		m.last = s
		m.taken++
		if s.Op == steps.Found {
			m.Result = s.I
		}
	}
}

func (m *Model) finish() {
	m.Sorting = false
	m.Finished = true
	m.log.Info("run finished",
		zap.String("algorithm", m.Algorithm.Name),
		zap.Int("steps", m.taken),
		zap.Bool("sorted", sorts.IsSorted(m.Layout.List)))
}

// HandleKey applies one key press.
func (m *Model) HandleKey(k byte) {
	switch k {
	case KeyCtrlC, KeyEsc:
		m.discard()
		m.Quit = true
	case 'r', 'R':
		m.Reset()
	case KeySpace:
		m.Toggle()
	case '+', '=':
		m.Speed = min(MaxSpeed, m.Speed*2)
	case '-', '_':
		m.Speed = max(1, m.Speed/2)
	default:
		if algo, ok := steps.ByKey(rune(k)); ok {
			m.Select(algo)
		}
	}
}
