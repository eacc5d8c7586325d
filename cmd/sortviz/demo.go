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

package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortviz/steps"
)

// demoInput is the array sorted by the demo command.
var demoInput = []int{170, 45, 75, 90, 802, 24, 2, 66}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Sort a fixed array with every algorithm and show the step counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), demoInput)
		},
	}
}

// runDemo sorts a copy of input with every catalog algorithm, then searches
// the result for each of its values.
func runDemo(w io.Writer, input []int) error {
	if _, err := fmt.Fprintf(w, "%-16s %v\n", "Original Array:", input); err != nil {
		return err
	}

	var sorted []int
	for _, a := range steps.Sorts() {
		data := slices.Clone(input)
		st := steps.Count(a.Steps(data, 0))
		fmt.Fprintf(w, "%-16s %v  (%d steps: %d compares, %d swaps, %d writes)\n",
			a.Name+":", data, st.Total, st.Of(steps.Compare), st.Of(steps.Swap), st.Of(steps.Write))
		sorted = data
	}

	search, _ := steps.Lookup("linear")
	for _, target := range []int{90, 3} {
		st := steps.Count(search.Steps(sorted, target))
		idx := search.Run(sorted, target)
		_, err := fmt.Fprintf(w, "%-16s target=%d index=%d (%d probes)\n",
			search.Name+":", target, idx, st.Of(steps.Compare))
		if err != nil {
			return err
		}
	}
	return nil
}
