// Package sort provides ascending sorts over slices of ordered values.
//
// # Algorithms
//
//   - InsertionSort: in-place, stable, O(n²) worst case and O(n) on sorted input.
//   - QuickSort: returns a new slice. The pivot is drawn uniformly at random
//     and each range is split into less/equal/more buckets in one pass, so
//     runs of duplicates never cause quadratic behavior. Expected O(n log n).
//   - Sort: in-place dispatcher. Small slices use insertion sort, larger ones
//     use quicksort.
//   - SortBatch: sorts many independent slices on a worker pool.
//
// Every algorithm has a Func variant taking a comparator in the
// slices.SortFunc convention, for element types outside order.Ordered.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-ordering/order/contrib/sort"
//
//	data := []int{5, 2, 4, 6, 1, 3}
//	sort.InsertionSort(data) // data is now [1 2 3 4 5 6]
//
//	sorted := sort.QuickSort([]int{200, 2, 50000, 10}) // [2 10 200 50000]
//
// # Determinism
//
// QuickSort draws pivots from order.DefaultRand. Use QuickSortRand with a
// seeded *math/rand/v2.Rand when the sequence of pivots must be
// reproducible. The output is the same either way; only the amount of work
// differs.
package sort
