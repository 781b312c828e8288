// Package bcmp holds the three-way comparators accepted by
// DynamicArray.Sort.
package bcmp

import (
	"bytes"

	"github.com/emirpasic/gods/utils"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"golang.org/x/exp/constraints"
)

// Func is a three-way comparator: negative when a < b, zero when
// equal, positive when a > b.
type Func[T any] func(a, b T) int

// Compare orders byte slices lexicographically.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Natural orders values by the built-in < operator.
func Natural[T constraints.Ordered]() Func[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Reverse inverts f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// FromComparer adapts a goleveldb comparer, such as
// comparer.DefaultComparer.
func FromComparer(c comparer.BasicComparer) Func[[]byte] {
	return c.Compare
}

// FromGods adapts an emirpasic/gods comparator. The gods comparator
// must accept the dynamic type T, or it panics.
func FromGods[T any](c utils.Comparator) Func[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}
