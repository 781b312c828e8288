// Package quick is an in-place quicksort with a fixed last-element pivot.
package quick

// Sort sorts s in place. Equal elements may be reordered.
func Sort[T any](s []T, cmp func(a, b T) int) {
	quicksort(s, 0, len(s)-1, cmp)
}

func quicksort[T any](s []T, low, high int, cmp func(a, b T) int) {
	if low >= high {
		return
	}
	p := partition(s, low, high, cmp)
	quicksort(s, low, p-1, cmp)
	quicksort(s, p+1, high, cmp)
}

// partition places s[high] at its final index and returns it.
// Elements comparing <= pivot end up on its left.
func partition[T any](s []T, low, high int, cmp func(a, b T) int) int {
	pivot := s[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp(s[j], pivot) <= 0 {
			i++
			Swap(s, i, j)
		}
	}
	Swap(s, i+1, high)
	return i + 1
}

// SortErr sorts s in place and stops at the first comparator error.
// On error s holds the same elements in unspecified order.
func SortErr[T any](s []T, cmp func(a, b T) (int, error)) error {
	return quicksortErr(s, 0, len(s)-1, cmp)
}

func quicksortErr[T any](s []T, low, high int, cmp func(a, b T) (int, error)) error {
	if low >= high {
		return nil
	}
	p, err := partitionErr(s, low, high, cmp)
	if err != nil {
		return err
	}
	if err := quicksortErr(s, low, p-1, cmp); err != nil {
		return err
	}
	return quicksortErr(s, p+1, high, cmp)
}

func partitionErr[T any](s []T, low, high int, cmp func(a, b T) (int, error)) (int, error) {
	pivot := s[high]
	i := low - 1
	for j := low; j < high; j++ {
		c, err := cmp(s[j], pivot)
		if err != nil {
			return 0, err
		}
		if c <= 0 {
			i++
			Swap(s, i, j)
		}
	}
	Swap(s, i+1, high)
	return i + 1, nil
}

// Swap exchanges s[i] and s[j].
func Swap[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}
