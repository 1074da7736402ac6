package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid: at least one axis, all dimensions > 0,
// and an element count that fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty shape", ErrInvalidShape)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension at index %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: shape %v has too many elements", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as a tuple, e.g. (2, 5, 5).
func (s Shape) String() string {
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(dim)
	}
	return out + ")"
}
