package conv

import "fmt"

// Stride is the step, in pixels, between successive windows along each spatial axis.
type Stride struct {
	H int
	W int
}

// DefaultStride samples every position.
var DefaultStride = Stride{H: 1, W: 1}

// Validate reports ErrInvalidArgument unless both components are positive.
func (s Stride) Validate() error {
	if s.H <= 0 || s.W <= 0 {
		return fmt.Errorf("%w: stride %v must be positive", ErrInvalidArgument, s)
	}
	return nil
}

// String returns the stride as (h, w).
func (s Stride) String() string {
	return fmt.Sprintf("(%d, %d)", s.H, s.W)
}
