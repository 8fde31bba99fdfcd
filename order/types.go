// Package order provides the shared vocabulary of the ordering library:
// the element constraint, sortedness checks, the pivot randomness source
// and a description of the host the code runs on.
//
// The algorithms themselves live under order/contrib:
//
//	import (
//	    "github.com/ajroetker/go-ordering/order"
//	    "github.com/ajroetker/go-ordering/order/contrib/search"
//	    "github.com/ajroetker/go-ordering/order/contrib/sort"
//	)
//
//	data := []int{5, 2, 4, 6, 1, 3}
//	sort.InsertionSort(data)
//	if order.IsSorted(data) {
//	    idx := search.BinarySearch(data, 4)
//	}
package order

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for every type with a total order usable by the
// sort and search packages. It is the same type set as cmp.Ordered.
//
// Floating point values are compared with cmp.Compare semantics: NaN is
// ordered before every other value and is equal to itself.
type Ordered interface {
	Integers | Floats | ~string
}

// NotFound is returned by the search functions when the target is absent.
// It is never a valid index.
const NotFound = -1
