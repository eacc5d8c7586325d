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
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortviz/bench"
	"github.com/ajroetker/go-sortviz/chart"
)

func newBenchCmd(g *globals) *cobra.Command {
	var (
		sizes       []int
		conditions  []string
		runs        int
		out         string
		compareSize int
		seed        int64
		noCharts    bool
		noProgress  bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm over growing inputs and chart the results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := g.load()
			if err != nil {
				return err
			}
			b := info.Bench
			flags := cmd.Flags()
			if flags.Changed("sizes") {
				b.Sizes = sizes
			}
			if flags.Changed("conditions") {
				b.Conditions = conditions
			}
			if flags.Changed("runs") {
				b.Runs = runs
			}
			if flags.Changed("out") {
				b.Out = out
			}
			if flags.Changed("compare-size") {
				b.CompareSize = compareSize
			}
			if flags.Changed("seed") {
				b.Seed = seed
			}
			if err := b.Validate(); err != nil {
				return err
			}
			conds, err := b.ParsedConditions()
			if err != nil {
				return err
			}

			log, err := g.setupLogger(false)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			cfg := bench.Config{
				Sizes:      b.Sizes,
				Conditions: conds,
				Runs:       b.Runs,
				Seed:       b.Seed,
				Logger:     log,
			}
			if !noProgress {
				cfg.Progress = cmd.ErrOrStderr()
			}

			res, err := bench.Run(ctx, cfg)
			if err != nil {
				return err
			}
			if err := res.WriteTable(cmd.OutOrStdout()); err != nil {
				return err
			}
			if noCharts {
				return nil
			}

			paths, err := chart.Render(b.Out, res, chart.Options{CompareSize: b.CompareSize, Logger: log})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w)
			for _, p := range paths {
				fmt.Fprintf(w, "  Saved: %s\n", p)
			}
			log.Info("charts written", zap.String("dir", b.Out), zap.Int("count", len(paths)))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&sizes, "sizes", bench.DefaultSizes, "comma-separated array sizes")
	f.StringSliceVar(&conditions, "conditions", []string{"Random", "Sorted", "Reversed"}, "input conditions: Random, Sorted, Reversed")
	f.IntVar(&runs, "runs", bench.DefaultRuns, "timed runs averaged per measurement")
	f.StringVarP(&out, "out", "o", "charts", "chart output directory")
	f.IntVar(&compareSize, "compare-size", chart.DefaultCompareSize, "array size of the cross-condition comparison chart")
	f.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	f.BoolVar(&noCharts, "no-charts", false, "print the table only")
	f.BoolVar(&noProgress, "no-progress", false, "hide the progress bar")
	return cmd
}
