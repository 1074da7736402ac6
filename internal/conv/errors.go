package conv

import "errors"

var (
	// ErrShape indicates an image, kernel or window shape that the requested
	// operation cannot use: wrong rank, mismatched channels, or a padding and
	// stride combination that leaves no output cells.
	ErrShape = errors.New("conv: invalid shape")

	// ErrInvalidArgument indicates an unknown padding or pooling mode, negative
	// explicit padding, or a non-positive stride.
	ErrInvalidArgument = errors.New("conv: invalid argument")
)
