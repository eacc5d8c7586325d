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
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortviz/visual"
)

func newVisualizeCmd(g *globals) *cobra.Command {
	var (
		n, lo, hi, fps int
		algorithm      string
		seed           int64
	)
	cmd := &cobra.Command{
		Use:     "visualize",
		Aliases: []string{"vis", "viz"},
		Short:   "Animate a sorting algorithm in the terminal",
		Long: `Animate a sorting algorithm in the terminal.

Keys: SPACE start/pause, R new list, B/M/Q/X/L select bubble, merge, quick,
radix sort or linear search, +/- change speed, ESC quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := g.load()
			if err != nil {
				return err
			}
			v := info.Visualizer
			flags := cmd.Flags()
			if flags.Changed("bars") {
				v.N = n
			}
			if flags.Changed("min") {
				v.Min = lo
			}
			if flags.Changed("max") {
				v.Max = hi
			}
			if flags.Changed("fps") {
				v.FPS = fps
			}
			if flags.Changed("algorithm") {
				v.Algorithm = algorithm
			}
			if flags.Changed("seed") {
				v.Seed = seed
			}
			if err := v.Validate(); err != nil {
				return err
			}

			log, err := g.setupLogger(true)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err = visual.Run(ctx, os.Stdin, os.Stdout, visual.Options{
				N:         v.N,
				Min:       v.Min,
				Max:       v.Max,
				FPS:       v.FPS,
				Algorithm: v.Algorithm,
				Seed:      v.Seed,
				Logger:    log,
			})
			if err != nil {
				log.Error("visualizer failed", zap.Error(err))
			}
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&n, "bars", "n", 30, "number of bars")
	f.IntVar(&lo, "min", 0, "smallest generated value")
	f.IntVar(&hi, "max", 100, "largest generated value")
	f.IntVar(&fps, "fps", visual.DefaultFPS, "frames per second")
	f.StringVarP(&algorithm, "algorithm", "a", "bubble", "initial algorithm: bubble, merge, quick, radix or linear")
	f.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	return cmd
}
