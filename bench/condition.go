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
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Condition is the initial ordering of a generated input array.
type Condition int

const (
	Random Condition = iota
	Sorted
	Reversed
)

// Conditions lists every input condition in report order.
var Conditions = []Condition{Random, Sorted, Reversed}

// randomMax is the upper bound (inclusive) of Random input values.
const randomMax = 10000

func (c Condition) String() string {
	switch c {
	case Random:
		return "Random"
	case Sorted:
		return "Sorted"
	case Reversed:
		return "Reversed"
	}
	return "Condition(" + strconv.Itoa(int(c)) + ")"
}

// ParseCondition parses a condition name, ignoring case.
func ParseCondition(s string) (Condition, error) {
	for _, c := range Conditions {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return 0, errors.Errorf("unknown input condition %q", s)
}

// ParseConditions parses a list of condition names.
func ParseConditions(names []string) ([]Condition, error) {
	out := make([]Condition, 0, len(names))
	for _, n := range names {
		c, err := ParseCondition(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Generate returns a new array of the given size: uniform values in
// [1, 10000] for Random, 1..size for Sorted and size..1 for Reversed.
func Generate(rng *rand.Rand, size int, cond Condition) []int {
	data := make([]int, size)
	for i := range data {
		switch cond {
		case Sorted:
			data[i] = i + 1
		case Reversed:
			data[i] = size - i
		default:
			data[i] = rng.Intn(randomMax) + 1
		}
	}
	return data
}
