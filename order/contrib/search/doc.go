// Package search finds values in slices sorted in non-decreasing order.
//
// Every function requires its input to be sorted ascending. On unsorted
// input the result is unspecified: it may report NotFound for a value that
// is present, or an index whose element differs from the target. Use
// BinarySearchStrict when the input is untrusted; it checks the ordering
// first and returns order.ErrUnsorted.
//
// # Index semantics
//
// BinarySearch returns an index into the slice it was given.
//
// BinarySearchRelative keeps an older contract: the search narrows a window
// over the slice and the index returned is relative to the window in which
// the match was found. It only agrees with BinarySearch when the match is
// at the first midpoint probed. It is kept for callers that depend on that
// behavior; new code should use BinarySearch.
package search
