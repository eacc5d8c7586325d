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

package steps

import "iter"

// Cursor pulls the steps of one run one at a time, for consumers that
// advance the algorithm from an event loop instead of a range statement.
// Stop must be called when a run is abandoned before it is done.
type Cursor struct {
	next  func() (Step, bool)
	stop  func()
	done  bool
	count int
	last  Step
}

// NewCursor starts pulling from seq. Nothing runs until the first Next.
func NewCursor(seq iter.Seq[Step]) *Cursor {
	next, stop := iter.Pull(seq)
	return &Cursor{next: next, stop: stop}
}

// Next advances the run by one step. It returns false once the run is done.
func (c *Cursor) Next() (Step, bool) {
	if c.done {
		return Step{}, false
	}
	s, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
		return Step{}, false
	}
	c.count++
	c.last = s
	return s, true
}

// Stop abandons the run, leaving the data a permutation of its input. It is
// safe to call more than once.
func (c *Cursor) Stop() {
	c.done = true
	c.stop()
}

// Done reports whether the run has finished or been stopped.
func (c *Cursor) Done() bool { return c.done }

// Count returns the number of steps taken so far.
func (c *Cursor) Count() int { return c.count }

// Last returns the most recent step and whether there was one.
func (c *Cursor) Last() (Step, bool) { return c.last, c.count > 0 }
