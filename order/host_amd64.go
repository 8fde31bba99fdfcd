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

//go:build amd64

package order

import "golang.org/x/sys/cpu"

func init() {
	type feature struct {
		name string
		ok   bool
	}
	for _, f := range []feature{
		{"sse42", cpu.X86.HasSSE42},
		{"popcnt", cpu.X86.HasPOPCNT},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"bmi2", cpu.X86.HasBMI2},
		{"erms", cpu.X86.HasERMS},
		{"avx512", cpu.X86.HasAVX512},
	} {
		if f.ok {
			hostFeatures = append(hostFeatures, f.name)
		}
	}
}
