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
	"iter"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/ajroetker/go-sortviz/sorts"
)

// Algorithm describes one animatable algorithm of the catalog.
type Algorithm struct {
	// Name is the display name, e.g. "Bubble Sort".
	Name string
	// Key selects the algorithm in the visualizer.
	Key rune
	// Search is set for searches, whose runs need a target.
	Search bool

	steps func(data []int, target int) iter.Seq[Step]
	plain func(data []int, target int) int
}

// Steps returns the instrumented run of the algorithm over data.
// target is ignored by sorts.
func (a Algorithm) Steps(data []int, target int) iter.Seq[Step] {
	return a.steps(data, target)
}

// Run executes the uninstrumented algorithm. Sorts return -1; searches
// return the found index or sorts.NotFound.
func (a Algorithm) Run(data []int, target int) int {
	return a.plain(data, target)
}

// Slug returns the lower-case, underscore separated form of Name.
func (a Algorithm) Slug() string {
	return strings.ReplaceAll(strings.ToLower(a.Name), " ", "_")
}

func sortEntry(name string, key rune, steps func([]int) iter.Seq[Step], plain func([]int)) Algorithm {
	return Algorithm{
		Name:  name,
		Key:   key,
		steps: func(data []int, _ int) iter.Seq[Step] { return steps(data) },
		plain: func(data []int, _ int) int {
			plain(data)
			return -1
		},
	}
}

// Catalog lists the animatable algorithms in display order.
var Catalog = []Algorithm{
	sortEntry("Bubble Sort", 'b', Bubble[int], sorts.Bubble[int]),
	sortEntry("Merge Sort", 'm', Merge[int], sorts.Merge[int]),
	sortEntry("Quick Sort", 'q', Quick[int], sorts.Quick[int]),
	sortEntry("Radix Sort", 'x', Radix[int], sorts.Radix[int]),
	{
		Name:   "Linear Search",
		Key:    'l',
		Search: true,
		steps:  LinearSearch[int],
		plain:  sorts.LinearSearch[int],
	},
}

// Sorts returns the catalog entries that are sorting algorithms.
func Sorts() []Algorithm {
	return lo.Filter(Catalog, func(a Algorithm, _ int) bool { return !a.Search })
}

// Lookup finds a catalog entry by name, slug, first word or key,
// ignoring case. "bubble", "Bubble Sort", "bubble_sort" and "b" all match.
func Lookup(name string) (Algorithm, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return Algorithm{}, false
	}
	return lo.Find(Catalog, func(a Algorithm) bool {
		lower := strings.ToLower(a.Name)
		first, _, _ := strings.Cut(lower, " ")
		return lower == name || a.Slug() == name || first == name ||
			(len([]rune(name)) == 1 && unicode.ToLower(a.Key) == []rune(name)[0])
	})
}

// ByKey finds a catalog entry by its selection key.
func ByKey(key rune) (Algorithm, bool) {
	key = unicode.ToLower(key)
	return lo.Find(Catalog, func(a Algorithm) bool { return a.Key == key })
}

// Names returns the display names of the catalog in order.
func Names() []string {
	return lo.Map(Catalog, func(a Algorithm, _ int) string { return a.Name })
}
