// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/xcorr/internal/tensor"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 5, 5, 3} is a batch of two 5x5 images with 3 channels.
type Shape = tensor.Shape

// Number is the set of element types accepted by FromSlice.
type Number = tensor.Number

// Array is a dense, row-major float64 array.
type Array = tensor.Array

// Errors reported by array construction and checked accessors.
var (
	ErrInvalidShape = tensor.ErrInvalidShape
	ErrOutOfRange   = tensor.ErrOutOfRange
)

// New creates a zero-filled array.
func New(shape Shape) (*Array, error) {
	return tensor.New(shape)
}

// MustNew is like New but panics on an invalid shape.
func MustNew(shape Shape) *Array {
	return tensor.MustNew(shape)
}

// Full creates an array filled with value.
func Full(shape Shape, value float64) (*Array, error) {
	return tensor.Full(shape, value)
}

// FromSlice creates an array from row-major data, converting elements to float64.
//
// Example:
//
//	img, err := tensor.FromSlice([]uint8{0, 255, 255, 0}, tensor.Shape{1, 2, 2})
func FromSlice[T Number](data []T, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}
