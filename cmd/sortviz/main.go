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

// Command sortviz animates sorting algorithms in the terminal and benchmarks
// them.
//
// Usage:
//
//	sortviz visualize                     # interactive visualizer
//	sortviz visualize -a quick -n 60      # start with quick sort on 60 bars
//	sortviz bench -o charts               # time every algorithm, write SVG charts
//	sortviz bench --sizes 100,1000 --runs 3
//	sortviz demo                          # sort a fixed array with every algorithm
//
// Every command accepts --config with a YAML file; flags override its values.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortviz/config"
)

// globals are the flags shared by every command.
type globals struct {
	configFile string
	verbose    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "sortviz",
		Short:         "Visualize and benchmark classic sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.configFile, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&g.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newVisualizeCmd(g), newBenchCmd(g), newDemoCmd())
	return root
}

// load reads the configuration selected by --config.
func (g *globals) load() (*config.Info, error) {
	return config.Load(g.configFile)
}

// setupLogger builds the process logger and installs it as zap's global.
// quiet discards logs unless --log-file is given, for commands that own
// the terminal.
func (g *globals) setupLogger(quiet bool) (*zap.Logger, error) {
	if quiet && g.logFile == "" {
		lg := zap.NewNop()
		zap.ReplaceGlobals(lg)
		return lg, nil
	}

	cfg := zap.NewProductionConfig()
	if g.verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	if g.logFile != "" {
		cfg.OutputPaths = []string{g.logFile}
	}

	lg, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	zap.ReplaceGlobals(lg)
	return lg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
