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

package sort

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-ordering/order"
	"github.com/ajroetker/go-ordering/order/contrib/workerpool"
)

// sorters adapts every algorithm to the same shape so the properties can be
// checked across all of them.
var sorters = []struct {
	name string
	fn   func([]int) []int
}{
	{"InsertionSort", func(data []int) []int {
		out := slices.Clone(data)
		InsertionSort(out)
		return out
	}},
	{"QuickSort", QuickSort[int]},
	{"QuickSortRand", func(data []int) []int {
		return QuickSortRand(data, rand.New(rand.NewPCG(1, 2)))
	}},
	{"Sort", func(data []int) []int {
		out := slices.Clone(data)
		Sort(out)
		return out
	}},
}

// boundaryInputs covers the empty, singleton, all-equal, sorted and
// reverse-sorted cases.
func boundaryInputs() map[string][]int {
	sorted := make([]int, 100)
	reverse := make([]int, 100)
	equal := make([]int, 100)
	for i := range sorted {
		sorted[i] = i
		reverse[i] = 100 - i
		equal[i] = 7
	}
	return map[string][]int{
		"nil":        nil,
		"empty":      {},
		"single":     {42},
		"pair":       {2, 1},
		"allEqual":   equal,
		"sorted":     sorted,
		"reverse":    reverse,
		"duplicates": {3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
		"negatives":  {-3, 10, -50, 0, 7, -3},
	}
}

func randomInts(r *rand.Rand, n, span int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.IntN(span) - span/2
	}
	return data
}

// TestConcreteScenarios checks the documented worked examples.
func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		in, want []int
	}{
		{[]int{5, 2, 4, 6, 1, 3}, []int{1, 2, 3, 4, 5, 6}},
		{[]int{200, 2, 50000, 10}, []int{2, 10, 200, 50000}},
	}
	for _, tt := range tests {
		got := slices.Clone(tt.in)
		InsertionSort(got)
		if diff := gocmp.Diff(tt.want, got); diff != "" {
			t.Errorf("InsertionSort(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
		if diff := gocmp.Diff(tt.want, QuickSort(tt.in)); diff != "" {
			t.Errorf("QuickSort(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestQuickSortEmptyAndSingle(t *testing.T) {
	if got := QuickSort([]int{}); got == nil || len(got) != 0 {
		t.Errorf("QuickSort([]) = %#v, want empty non-nil slice", got)
	}
	if got := QuickSort[int](nil); got != nil {
		t.Errorf("QuickSort(nil) = %#v, want nil", got)
	}
	if diff := gocmp.Diff([]int{7}, QuickSort([]int{7})); diff != "" {
		t.Errorf("QuickSort([7]) mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundaryCases(t *testing.T) {
	for _, s := range sorters {
		for name, in := range boundaryInputs() {
			t.Run(s.name+"/"+name, func(t *testing.T) {
				want := slices.Clone(in)
				slices.Sort(want)
				got := s.fn(in)
				if diff := gocmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

// TestSortedPermutation checks sortedness and the permutation invariant
// against slices.Sort on random data of many sizes.
func TestSortedPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	sizes := []int{0, 1, 2, 7, 31, 32, 33, 64, 100, 257, 1000}
	for _, s := range sorters {
		for _, n := range sizes {
			// A narrow span forces many duplicates.
			for _, span := range []int{4, 1 << 20} {
				in := randomInts(r, n, span)
				orig := slices.Clone(in)
				got := s.fn(in)

				if !order.IsSorted(got) {
					t.Fatalf("%s(n=%d, span=%d) produced unsorted result", s.name, n, span)
				}
				want := slices.Clone(orig)
				slices.Sort(want)
				if !slices.Equal(want, got) {
					t.Fatalf("%s(n=%d, span=%d) is not a permutation of its input", s.name, n, span)
				}
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for _, s := range sorters {
		in := randomInts(r, 500, 100)
		once := s.fn(in)
		twice := s.fn(once)
		if diff := gocmp.Diff(once, twice); diff != "" {
			t.Errorf("%s is not idempotent (-once +twice):\n%s", s.name, diff)
		}
	}
}

func TestQuickSortDoesNotMutateInput(t *testing.T) {
	in := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	orig := slices.Clone(in)
	_ = QuickSort(in)
	if !slices.Equal(in, orig) {
		t.Errorf("QuickSort modified its input: %v, want %v", in, orig)
	}
}

func TestQuickSortRandDeterministic(t *testing.T) {
	in := randomInts(rand.New(rand.NewPCG(1, 1)), 1000, 50)
	a := QuickSortRand(in, rand.New(rand.NewPCG(42, 42)))
	b := QuickSortRand(in, rand.New(rand.NewPCG(42, 42)))
	if !slices.Equal(a, b) {
		t.Error("QuickSortRand with the same seed gave different results")
	}
}

// constRand always picks index 0, the worst pivot for sorted input.
type constRand struct{}

func (constRand) IntN(int) int { return 0 }

// TestQuickSortAdversarialPivot sorts with a pivot source that degrades to
// O(n²) work. The explicit range stack keeps this from overflowing.
func TestQuickSortAdversarialPivot(t *testing.T) {
	in := make([]int, 5000)
	for i := range in {
		in[i] = i
	}
	got := QuickSortRand(in, constRand{})
	if !slices.Equal(in, got) {
		t.Error("QuickSortRand(sorted, first-element pivot) produced wrong result")
	}
}

type tagged struct {
	value int
	index int
}

func byValue(a, b tagged) int { return cmp.Compare(a.value, b.value) }

func taggedInput(r *rand.Rand, n int) []tagged {
	data := make([]tagged, n)
	for i := range data {
		data[i] = tagged{value: r.IntN(10), index: i}
	}
	return data
}

// checkStable verifies equal values kept their original relative order.
func checkStable(t *testing.T, name string, got []tagged) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		if got[i].value < got[i-1].value {
			t.Fatalf("%s: not sorted at %d: %v then %v", name, i, got[i-1], got[i])
		}
		if got[i].value == got[i-1].value && got[i].index < got[i-1].index {
			t.Fatalf("%s: not stable at %d: %v then %v", name, i, got[i-1], got[i])
		}
	}
}

func TestInsertionSortStable(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for _, n := range []int{2, 10, 100, 500} {
		data := taggedInput(r, n)
		InsertionSortFunc(data, byValue)
		checkStable(t, "InsertionSortFunc", data)
	}
}

func TestQuickSortFuncStable(t *testing.T) {
	r := rand.New(rand.NewPCG(4, 4))
	for _, n := range []int{2, 10, 100, 2000} {
		got := QuickSortFunc(taggedInput(r, n), r, byValue)
		checkStable(t, "QuickSortFunc", got)
	}
}

func TestSortFuncStable(t *testing.T) {
	r := rand.New(rand.NewPCG(6, 6))
	for _, n := range []int{InsertionThreshold, InsertionThreshold + 1, 1000} {
		data := taggedInput(r, n)
		SortFunc(data, byValue)
		checkStable(t, "SortFunc", data)
	}
}

func TestSortFloatsWithNaN(t *testing.T) {
	nan := math.NaN()
	in := []float64{3, nan, -1, 2, nan, 0}

	got := QuickSort(in)
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Fatalf("QuickSort put NaN at %v, want it first", got)
	}
	if diff := gocmp.Diff([]float64{-1, 0, 2, 3}, got[2:]); diff != "" {
		t.Errorf("QuickSort mismatch (-want +got):\n%s", diff)
	}

	ins := slices.Clone(in)
	InsertionSort(ins)
	if !order.IsSorted(ins) || len(ins) != len(in) {
		t.Errorf("InsertionSort with NaN produced %v", ins)
	}
}

func TestSortStrings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "apple", "banana"}
	want := []string{"apple", "apple", "banana", "fig", "pear"}

	if diff := gocmp.Diff(want, QuickSort(in)); diff != "" {
		t.Errorf("QuickSort mismatch (-want +got):\n%s", diff)
	}
	Sort(in)
	if diff := gocmp.Diff(want, in); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortNamedType(t *testing.T) {
	type score int32
	data := []score{30, 10, 20}
	InsertionSort(data)
	if diff := gocmp.Diff([]score{10, 20, 30}, data); diff != "" {
		t.Errorf("InsertionSort mismatch (-want +got):\n%s", diff)
	}
}

func makeBatch(r *rand.Rand) [][]int {
	sizes := []int{0, 1, 5, 32, 33, 200, 1000, 3}
	batch := make([][]int, len(sizes))
	for i, n := range sizes {
		batch[i] = randomInts(r, n, 1000)
	}
	return batch
}

func checkBatch(t *testing.T, batch, orig [][]int) {
	t.Helper()
	for i := range batch {
		want := slices.Clone(orig[i])
		slices.Sort(want)
		if diff := gocmp.Diff(want, batch[i], cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("batch[%d] mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func cloneBatch(batch [][]int) [][]int {
	out := make([][]int, len(batch))
	for i := range batch {
		out[i] = slices.Clone(batch[i])
	}
	return out
}

func TestSortBatch(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	batch := makeBatch(rand.New(rand.NewPCG(8, 8)))
	orig := cloneBatch(batch)
	SortBatch(pool, batch)
	checkBatch(t, batch, orig)
}

func TestSortBatchNilPool(t *testing.T) {
	batch := makeBatch(rand.New(rand.NewPCG(2, 8)))
	orig := cloneBatch(batch)
	SortBatch(nil, batch)
	checkBatch(t, batch, orig)
}

func TestSortBatchNoParallelEnv(t *testing.T) {
	t.Setenv("ORDERING_NO_PARALLEL", "1")
	pool := workerpool.New(4)
	defer pool.Close()

	batch := makeBatch(rand.New(rand.NewPCG(5, 8)))
	orig := cloneBatch(batch)
	SortBatch(pool, batch)
	checkBatch(t, batch, orig)
}
