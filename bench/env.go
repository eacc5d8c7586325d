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
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// Env describes the machine a benchmark ran on.
type Env struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []string
}

// CurrentEnv reports the running platform and the CPU features that
// golang.org/x/sys/cpu detected.
func CurrentEnv() Env {
	env := Env{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		env.Features = features(map[string]bool{
			"sse4.2":  cpu.X86.HasSSE42,
			"avx":     cpu.X86.HasAVX,
			"avx2":    cpu.X86.HasAVX2,
			"avx512f": cpu.X86.HasAVX512F,
			"bmi2":    cpu.X86.HasBMI2,
		})
	case "arm64":
		env.Features = features(map[string]bool{
			"asimd":   cpu.ARM64.HasASIMD,
			"sve":     cpu.ARM64.HasSVE,
			"crc32":   cpu.ARM64.HasCRC32,
			"atomics": cpu.ARM64.HasATOMICS,
		})
	}
	return env
}

func (e Env) String() string {
	s := e.GOOS + "/" + e.GOARCH + ", " + strconv.Itoa(e.NumCPU) + " CPUs"
	if len(e.Features) > 0 {
		s += ", features: " + strings.Join(e.Features, " ")
	}
	return s
}

// features returns the sorted names of the detected features.
func features(detected map[string]bool) []string {
	names := lo.Keys(lo.PickBy(detected, func(_ string, ok bool) bool { return ok }))
	slices.Sort(names)
	return names
}
