// Package tensor provides the dense array model used by the correlation engine.
//
// Arrays always store float64 values: inputs of any supported element type
// are converted on construction so every reduction accumulates in float64.
package tensor

// Number is a constraint for element types accepted by FromSlice.
type Number interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64 | ~uint8
}
