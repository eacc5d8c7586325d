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

import (
	"fmt"
	"iter"
)

// Op identifies the kind of operation a Step reports.
type Op uint8

const (
	// Compare: the values at I and J (or only I) were compared.
	Compare Op = iota
	// Swap: the values at I and J were exchanged.
	Swap
	// Write: a value was stored at I.
	Write
	// Pivot: the value at I was chosen as the partition pivot.
	Pivot
	// Read: the value at I was read, e.g. to count its digit.
	Read
	// Found: the search target is at I.
	Found
	// Miss: the search ended without finding the target.
	Miss

	numOps
)

var opNames = [numOps]string{"compare", "swap", "write", "pivot", "read", "found", "miss"}

func (o Op) String() string {
	if o < numOps {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Step is one suspension point of an instrumented algorithm.
// I and J are the touched positions; unused positions are -1.
type Step struct {
	Op Op
	I  int
	J  int
}

// Touched returns the positions touched by the step.
func (s Step) Touched() []int {
	switch {
	case s.I >= 0 && s.J >= 0:
		return []int{s.I, s.J}
	case s.I >= 0:
		return []int{s.I}
	case s.J >= 0:
		return []int{s.J}
	}
	return nil
}

// Has reports whether position i is touched by the step.
func (s Step) Has(i int) bool {
	return i >= 0 && (s.I == i || s.J == i)
}

func (s Step) String() string {
	switch {
	case s.J >= 0:
		return fmt.Sprintf("%s(%d, %d)", s.Op, s.I, s.J)
	case s.I >= 0:
		return fmt.Sprintf("%s(%d)", s.Op, s.I)
	}
	return s.Op.String()
}

func one(op Op, i int) Step    { return Step{Op: op, I: i, J: -1} }
func two(op Op, i, j int) Step { return Step{Op: op, I: i, J: j} }

// Stats holds per-Op step totals for a completed run.
type Stats struct {
	Total int
	ByOp  [numOps]int
}

// Of returns the number of steps of the given op.
func (s Stats) Of(op Op) int {
	if op >= numOps {
		return 0
	}
	return s.ByOp[op]
}

// Count runs seq to completion and tallies its steps.
func Count(seq iter.Seq[Step]) Stats {
	var st Stats
	for s := range seq {
		st.Total++
		if s.Op < numOps {
			st.ByOp[s.Op]++
		}
	}
	return st
}
