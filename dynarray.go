// Package dynarray is a generic resizable array list.
//
// A DynamicArray is not safe for concurrent use.
package dynarray

import (
	"fmt"
	"log/slog"

	"github.com/xgzlucario/dynarray/internal/quick"
	"github.com/xgzlucario/dynarray/option"
)

// DynamicArray is a list backed by one contiguous buffer that doubles
// when full. Slots past the logical length hold the zero value of T.
type DynamicArray[T any] struct {
	data []T
	n    int

	logger *slog.Logger
}

// New returns an empty array with DefaultOption.
func New[T any]() *DynamicArray[T] {
	return NewWithOption[T](nil)
}

// NewWithOption
func NewWithOption[T any](opt *option.Option) *DynamicArray[T] {
	opt = opt.Normalize()
	return &DynamicArray[T]{
		data:   make([]T, opt.InitialCapacity),
		logger: opt.Logger,
	}
}

// Len returns the number of elements.
func (a *DynamicArray[T]) Len() int {
	return a.n
}

// Append adds v at the end.
func (a *DynamicArray[T]) Append(v T) {
	a.ensureCapacity()
	a.data[a.n] = v
	a.n++
}

// Insert adds v at index, shifting the elements at [index, Len) right.
// index == Len appends.
func (a *DynamicArray[T]) Insert(index int, v T) error {
	if index < 0 || index > a.n {
		return a.errIndex(index)
	}
	a.ensureCapacity()
	copy(a.data[index+1:a.n+1], a.data[index:a.n])
	a.data[index] = v
	a.n++
	return nil
}

// Get
func (a *DynamicArray[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.data[index], nil
}

// Remove deletes the element at index, shifting the rest left.
func (a *DynamicArray[T]) Remove(index int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	copy(a.data[index:a.n-1], a.data[index+1:a.n])
	a.n--

	// drop the reference held by the vacated slot.
	var zero T
	a.data[a.n] = zero
	return nil
}

// Clear removes all elements, keeping the capacity.
func (a *DynamicArray[T]) Clear() {
	clear(a.data[:a.n])
	a.n = 0
}

// Swap exchanges the elements at i and j.
func (a *DynamicArray[T]) Swap(i, j int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if err := a.checkIndex(j); err != nil {
		return err
	}
	quick.Swap(a.data, i, j)
	return nil
}

// Items returns a copy of the elements.
func (a *DynamicArray[T]) Items() []T {
	items := make([]T, a.n)
	copy(items, a.data[:a.n])
	return items
}

// ensureCapacity doubles the buffer if it is full.
func (a *DynamicArray[T]) ensureCapacity() {
	if a.n < len(a.data) {
		return
	}
	// a zero-value DynamicArray has no buffer yet.
	size := len(a.data) * 2
	if size == 0 {
		size = option.DefaultOption.InitialCapacity
	}
	data := make([]T, size)
	copy(data, a.data[:a.n])

	a.log().Debug("dynarray grow", "from", len(a.data), "to", size)
	a.data = data
}

func (a *DynamicArray[T]) log() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}

// checkIndex validates an index into [0, Len).
func (a *DynamicArray[T]) checkIndex(index int) error {
	if index < 0 || index >= a.n {
		return a.errIndex(index)
	}
	return nil
}

func (a *DynamicArray[T]) errIndex(index int) error {
	return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, index, a.n)
}
