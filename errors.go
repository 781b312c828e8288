package dynarray

import "errors"

var (
	ErrOutOfRange = errors.New("dynarray: index out of range")
)
