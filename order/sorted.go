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
	"cmp"
	"errors"
)

// ErrUnsorted is returned by checked operations whose input must already be
// in non-decreasing order.
var ErrUnsorted = errors.New("order: input is not sorted")

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is in non-decreasing order under cmp.
func IsSortedFunc[E any](data []E, cmp func(a, b E) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

// FirstUnsorted returns the smallest index i such that data[i] < data[i-1],
// or NotFound when data is sorted.
func FirstUnsorted[T Ordered](data []T) int {
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[i-1]) {
			return i
		}
	}
	return NotFound
}
