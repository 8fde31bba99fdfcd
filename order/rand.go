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

import "github.com/zhangyunhao116/fastrand"

// Rand is a source of uniformly distributed indices.
// *math/rand/v2.Rand satisfies it, so a seeded generator can be injected
// wherever results must be reproducible.
type Rand interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// fastSource draws from the goroutine-safe fastrand generator.
type fastSource struct{}

func (fastSource) IntN(n int) int {
	return fastrand.Intn(n)
}

// DefaultRand returns the process-wide pivot source. It is safe for
// concurrent use and is not reproducible across runs.
func DefaultRand() Rand {
	return fastSource{}
}
