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

package search

import (
	"cmp"
	"fmt"

	"github.com/ajroetker/go-ordering/order"
)

// BinarySearch returns the index of an element of data equal to target, or
// order.NotFound. data must be sorted in non-decreasing order.
//
// When several elements equal target, any one of their indices may be
// returned.
func BinarySearch[T order.Ordered](data []T, target T) int {
	return BinarySearchFunc(data, target, cmp.Compare[T])
}

// BinarySearchFunc is BinarySearch with a comparator. data must be sorted
// in non-decreasing order under cmp.
func BinarySearchFunc[E, K any](data []E, target K, cmp func(E, K) int) int {
	idx, _ := probe(data, target, cmp)
	return idx
}

// BinarySearchRelative searches like BinarySearch but returns the index of
// the match relative to the narrowed window it was found in, not to data.
// See the package documentation.
func BinarySearchRelative[T order.Ordered](data []T, target T) int {
	idx, lo := probe(data, target, cmp.Compare[T])
	if idx == order.NotFound {
		return order.NotFound
	}
	return idx - lo
}

// BinarySearchStrict checks that data is sorted and then searches it. It
// returns an error wrapping order.ErrUnsorted when data is out of order.
func BinarySearchStrict[T order.Ordered](data []T, target T) (int, error) {
	if i := order.FirstUnsorted(data); i != order.NotFound {
		return order.NotFound, fmt.Errorf("binary search: element %d is less than element %d: %w", i, i-1, order.ErrUnsorted)
	}
	return BinarySearch(data, target), nil
}

// Contains reports whether target is present in the sorted slice data.
func Contains[T order.Ordered](data []T, target T) bool {
	return BinarySearch(data, target) != order.NotFound
}

// probe narrows the window [lo, hi) over data. Each step compares target
// with the window's middle element, mid = lo + (hi-lo)/2, and continues on
// [lo, mid) or [mid+1, hi). It returns the absolute index of the match and
// the start of the window it was found in, or (NotFound, lo) once the
// window is empty.
func probe[E, K any](data []E, target K, cmp func(E, K) int) (int, int) {
	lo, hi := 0, len(data)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch c := cmp(data[mid], target); {
		case c == 0:
			return mid, lo
		case c > 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return order.NotFound, lo
}
