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

	"github.com/ajroetker/go-ordering/order"
	"github.com/ajroetker/go-ordering/order/contrib/workerpool"
)

// InsertionThreshold is the largest length Sort hands to insertion sort.
// Above it quicksort's partitioning pays for its allocations.
const InsertionThreshold = 32

// Sort sorts data in-place in non-decreasing order using the best
// algorithm for its length:
//   - len(data) <= InsertionThreshold: InsertionSort
//   - otherwise: QuickSort, copied back into data
//
// For explicit algorithm selection, use InsertionSort or QuickSort directly.
func Sort[T order.Ordered](data []T) {
	SortFunc(data, cmp.Compare[T])
}

// SortFunc is Sort with a comparator. The result is stable.
func SortFunc[E any](data []E, cmp func(a, b E) int) {
	n := len(data)
	if n <= 1 {
		return
	}

	if n <= InsertionThreshold {
		InsertionSortFunc(data, cmp)
		return
	}

	copy(data, QuickSortFunc(data, order.DefaultRand(), cmp))
}

// SortBatch sorts every slice in batch in-place with Sort, spreading the
// slices across pool. Slices are independent, so each is touched by exactly
// one worker. A nil pool, or ORDERING_NO_PARALLEL set in the environment,
// sorts on the calling goroutine.
func SortBatch[T order.Ordered](pool *workerpool.Pool, batch [][]T) {
	SortBatchFunc(pool, batch, cmp.Compare[T])
}

// SortBatchFunc is SortBatch with a comparator.
func SortBatchFunc[E any](pool *workerpool.Pool, batch [][]E, cmp func(a, b E) int) {
	if pool == nil || order.NoParallelEnv() {
		for _, data := range batch {
			SortFunc(data, cmp)
		}
		return
	}

	pool.Each(len(batch), func(i int) {
		SortFunc(batch[i], cmp)
	})
}
