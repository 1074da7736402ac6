package tensor

import "errors"

var (
	// ErrInvalidShape is returned when a shape has no axes or a non-positive dimension,
	// or when data length does not match the shape.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange is returned by checked accessors for indices outside the array.
	ErrOutOfRange = errors.New("tensor: index out of range")
)
