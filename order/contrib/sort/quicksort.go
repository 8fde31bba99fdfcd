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
	"slices"

	"github.com/ajroetker/go-ordering/order"
)

// span is a pending half-open range [lo, hi) of the output still to be
// partitioned.
type span struct {
	lo, hi int
}

// QuickSort returns a new slice holding the elements of data in
// non-decreasing order. data is not modified.
//
// Pivots are drawn from order.DefaultRand.
func QuickSort[T order.Ordered](data []T) []T {
	return QuickSortRand(data, order.DefaultRand())
}

// QuickSortRand is QuickSort with an explicit pivot source.
func QuickSortRand[T order.Ordered](data []T, r order.Rand) []T {
	return QuickSortFunc(data, r, cmp.Compare[T])
}

// QuickSortFunc returns a new slice holding the elements of data in
// non-decreasing order as determined by cmp, using r to pick pivots.
//
// Every range is split in a single pass into elements less than, equal to
// and greater than a uniformly sampled pivot, and the result is
// less + equal + more. Buckets keep input order, so the sort is stable.
// Ranges are kept on an explicit stack instead of the call stack; the
// smaller side is always processed first, bounding the stack at
// O(log n) entries regardless of pivot quality.
func QuickSortFunc[E any](data []E, r order.Rand, cmp func(a, b E) int) []E {
	out := slices.Clone(data)
	if len(out) <= 1 {
		return out
	}

	n := len(out)
	less := make([]E, 0, n)
	equal := make([]E, 0, n)
	more := make([]E, 0, n)

	stack := []span{{0, n}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.hi-s.lo <= 1 {
			continue
		}

		seg := out[s.lo:s.hi]
		pivot := seg[r.IntN(len(seg))]

		less, equal, more = less[:0], equal[:0], more[:0]
		for _, v := range seg {
			switch c := cmp(v, pivot); {
			case c < 0:
				less = append(less, v)
			case c > 0:
				more = append(more, v)
			default:
				equal = append(equal, v)
			}
		}

		copy(seg, less)
		copy(seg[len(less):], equal)
		copy(seg[len(less)+len(equal):], more)

		left := span{s.lo, s.lo + len(less)}
		right := span{s.hi - len(more), s.hi}

		// Push the larger side first so the smaller one is popped next.
		if left.hi-left.lo > right.hi-right.lo {
			left, right = right, left
		}
		stack = append(stack, right, left)
	}
	return out
}
