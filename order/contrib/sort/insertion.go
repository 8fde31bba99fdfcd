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
)

// InsertionSort sorts data in-place in non-decreasing order.
//
// Each element is taken in turn as the key and every preceding element
// strictly greater than it is shifted one slot right before the key is
// placed in the gap. Because the shift condition is strict, equal elements
// keep their relative order.
func InsertionSort[T order.Ordered](data []T) {
	for j := 1; j < len(data); j++ {
		key := data[j]
		i := j - 1
		for i >= 0 && cmp.Less(key, data[i]) {
			data[i+1] = data[i]
			i--
		}
		data[i+1] = key
	}
}

// InsertionSortFunc sorts data in-place in non-decreasing order as
// determined by cmp. The sort is stable.
func InsertionSortFunc[E any](data []E, cmp func(a, b E) int) {
	for j := 1; j < len(data); j++ {
		key := data[j]
		i := j - 1
		for i >= 0 && cmp(key, data[i]) < 0 {
			data[i+1] = data[i]
			i--
		}
		data[i+1] = key
	}
}
