package dynarray

import (
	"github.com/xgzlucario/dynarray/bcmp"
	"github.com/xgzlucario/dynarray/internal/quick"
)

// Sort orders the elements in place by cmp using quicksort with the
// last element of each range as pivot. The sort is not stable, and
// sorted or reverse-sorted input takes quadratic time.
//
// If cmp panics the panic propagates; the array still holds the same
// elements in unspecified order.
func (a *DynamicArray[T]) Sort(cmp bcmp.Func[T]) {
	quick.Sort(a.data[:a.n], cmp)
}

// SortErr is Sort with a fallible comparator. The first error from cmp
// stops the sort and is returned as is.
func (a *DynamicArray[T]) SortErr(cmp func(x, y T) (int, error)) error {
	return quick.SortErr(a.data[:a.n], cmp)
}
