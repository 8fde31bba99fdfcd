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

package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/ajroetker/go-ordering/order"
	"github.com/ajroetker/go-ordering/order/contrib/sort"
)

// Algorithm names accepted by --algo and by bench configs.
const (
	algoAuto      = "auto"
	algoInsertion = "insertion"
	algoQuick     = "quick"
	algoStdlib    = "stdlib"
	algoBatch     = "batch"
)

// sortAlgorithms lists the names usable for a single sequence.
var sortAlgorithms = []string{algoAuto, algoInsertion, algoQuick, algoStdlib}

func validAlgorithm(name string, allowed []string) error {
	if !slices.Contains(allowed, name) {
		return fmt.Errorf("unknown algorithm %q (want one of %s)", name, strings.Join(allowed, ", "))
	}
	return nil
}

// pivotSource returns a seeded generator when seed != 0, otherwise the
// library default.
func pivotSource(seed uint64) order.Rand {
	if seed == 0 {
		return order.DefaultRand()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// sortWith sorts data in place with the named algorithm.
func sortWith(algo string, data []int, r order.Rand) error {
	switch algo {
	case algoAuto:
		sort.Sort(data)
	case algoInsertion:
		sort.InsertionSort(data)
	case algoQuick:
		copy(data, sort.QuickSortRand(data, r))
	case algoStdlib:
		slices.Sort(data)
	default:
		return validAlgorithm(algo, sortAlgorithms)
	}
	return nil
}
