package tensor

import "fmt"

// Array is a dense, row-major float64 array.
//
// Arrays handed to the correlation engine are treated as immutable inputs;
// every operation allocates its result.
type Array struct {
	shape  Shape
	stride []int
	data   []float64
}

// New creates a zero-filled array with the given shape.
func New(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Array{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float64, shape.NumElements()),
	}, nil
}

// MustNew is like New but panics on an invalid shape.
// Intended for literal shapes.
//
// Example:
//
//	kernel := tensor.MustNew(tensor.Shape{3, 3})
func MustNew(shape Shape) *Array {
	a, err := New(shape)
	if err != nil {
		panic(err)
	}
	return a
}

// Full creates an array filled with value.
func Full(shape Shape, value float64) (*Array, error) {
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// FromSlice creates an array from row-major data, converting every element to float64.
// The input slice is copied.
//
// Example:
//
//	img, err := tensor.FromSlice([]uint8{1, 2, 3, 4}, tensor.Shape{1, 2, 2})
func FromSlice[T Number](data []T, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}

	a := &Array{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float64, len(data)),
	}
	for i, v := range data {
		a.data[i] = float64(v)
	}
	return a, nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the array's row-major strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.stride...)
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Dim returns the size of axis i.
func (a *Array) Dim(i int) int {
	return a.shape[i]
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return len(a.data)
}

// Data returns the backing slice.
// WARNING: writes through this slice mutate the array.
func (a *Array) Data() []float64 {
	return a.data
}

// Offset returns the flat offset of idx without bounds checks.
func (a *Array) Offset(idx ...int) int {
	off := 0
	for i, v := range idx {
		off += v * a.stride[i]
	}
	return off
}

func (a *Array) checkIndex(idx []int) error {
	if len(idx) != len(a.shape) {
		return fmt.Errorf("%w: got %d indices for rank %d array", ErrOutOfRange, len(idx), len(a.shape))
	}
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return fmt.Errorf("%w: index %d on axis %d with size %d", ErrOutOfRange, v, i, a.shape[i])
		}
	}
	return nil
}

// At returns the element at idx.
func (a *Array) At(idx ...int) (float64, error) {
	if err := a.checkIndex(idx); err != nil {
		return 0, err
	}
	return a.data[a.Offset(idx...)], nil
}

// Set stores v at idx.
func (a *Array) Set(v float64, idx ...int) error {
	if err := a.checkIndex(idx); err != nil {
		return err
	}
	a.data[a.Offset(idx...)] = v
	return nil
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		data:   data,
	}
}

// String returns a short description, e.g. "Array(2, 3, 3)".
func (a *Array) String() string {
	return "Array" + a.shape.String()
}
