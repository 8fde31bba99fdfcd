// Copyright 2025 go-highway Authors
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

package order

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// HostInfo describes the machine the library is running on. Benchmark
// reports carry it so timings from different hosts are not confused.
type HostInfo struct {
	OS       string   `json:"os" yaml:"os"`
	Arch     string   `json:"arch" yaml:"arch"`
	CPUs     int      `json:"cpus" yaml:"cpus"`
	Features []string `json:"features" yaml:"features"`
}

// String returns a one-line summary such as "linux/amd64 8 cpus [avx2 bmi2]".
func (h HostInfo) String() string {
	var b strings.Builder
	b.WriteString(h.OS)
	b.WriteByte('/')
	b.WriteString(h.Arch)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(h.CPUs))
	b.WriteString(" cpus")
	if len(h.Features) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(h.Features, " "))
		b.WriteByte(']')
	}
	return b.String()
}

// hostFeatures is filled by init() in host_*.go files.
var hostFeatures []string

// Host returns a description of the running machine.
func Host() HostInfo {
	return HostInfo{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
		Features: append([]string(nil), hostFeatures...),
	}
}

// NoParallelEnv checks if the ORDERING_NO_PARALLEL environment variable is set.
// When set, batch operations run on the calling goroutine even if a worker
// pool is supplied. This is useful for testing and for timing comparisons.
func NoParallelEnv() bool {
	val := os.Getenv("ORDERING_NO_PARALLEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
