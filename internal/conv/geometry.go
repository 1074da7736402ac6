package conv

import (
	"fmt"
	"math"
)

// OutputSize computes the spatial output size of a windowed operation.
//
//	out_h = (in_h + 2*ph - kh) / stride_h + 1
//	out_w = (in_w + 2*pw - kw) / stride_w + 1
//
// Division floors. A kernel larger than the padded input is reported as ErrShape.
func OutputSize(inH, inW, kh, kw, ph, pw int, s Stride) (outH, outW int, err error) {
	if err := s.Validate(); err != nil {
		return 0, 0, err
	}
	if inH <= 0 || inW <= 0 {
		return 0, 0, fmt.Errorf("%w: input %dx%d must be positive", ErrShape, inH, inW)
	}
	if kh <= 0 || kw <= 0 {
		return 0, 0, fmt.Errorf("%w: kernel %dx%d must be positive", ErrShape, kh, kw)
	}
	if ph < 0 || pw < 0 {
		return 0, 0, fmt.Errorf("%w: padding (%d, %d) must be non-negative", ErrInvalidArgument, ph, pw)
	}

	if ph > (math.MaxInt-inH)/2 || pw > (math.MaxInt-inW)/2 {
		return 0, 0, fmt.Errorf("%w: padding (%d, %d) overflows input %dx%d", ErrInvalidArgument, ph, pw, inH, inW)
	}

	paddedH := inH + 2*ph
	paddedW := inW + 2*pw
	if kh > paddedH || kw > paddedW {
		return 0, 0, fmt.Errorf("%w: kernel %dx%d larger than padded input %dx%d",
			ErrShape, kh, kw, paddedH, paddedW)
	}

	// paddedH >= kh here, so the floor is a plain integer division.
	outH = (paddedH-kh)/s.H + 1
	outW = (paddedW-kw)/s.W + 1
	return outH, outW, nil
}
