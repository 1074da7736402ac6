package conv

import (
	"fmt"
	"math"

	"github.com/born-ml/xcorr/internal/tensor"
)

// Pad returns a new batch with ph zero rows above and below and pw zero
// columns left and right of every image. Only the spatial axes (1 and 2)
// grow; the batch axis and any trailing channel axis are unchanged.
//
// images must have rank 3 (m, h, w) or rank 4 (m, h, w, c).
func Pad(images *tensor.Array, ph, pw int) (*tensor.Array, error) {
	if images == nil {
		return nil, fmt.Errorf("%w: nil images", ErrShape)
	}
	if images.Rank() != 3 && images.Rank() != 4 {
		return nil, fmt.Errorf("%w: images must be (m, h, w) or (m, h, w, c), got %v", ErrShape, images.Shape())
	}
	if ph < 0 || pw < 0 {
		return nil, fmt.Errorf("%w: padding (%d, %d) must be non-negative", ErrInvalidArgument, ph, pw)
	}
	if ph == 0 && pw == 0 {
		return images.Clone(), nil
	}

	shape := images.Shape()
	m, h, w := shape[0], shape[1], shape[2]
	if ph > (math.MaxInt-h)/2 || pw > (math.MaxInt-w)/2 {
		return nil, fmt.Errorf("conv: pad: %w: padding (%d, %d) overflows image %dx%d",
			tensor.ErrInvalidShape, ph, pw, h, w)
	}
	padded := shape.Clone()
	padded[1] = h + 2*ph
	padded[2] = w + 2*pw

	out, err := tensor.New(padded)
	if err != nil {
		return nil, fmt.Errorf("conv: pad: %w", err)
	}

	// Elements per spatial position: 1 for grayscale, c for multi-channel.
	inner := images.NumElements() / (m * h * w)
	rowLen := w * inner

	src := images.Data()
	dst := out.Data()
	srcStrides := images.Strides()
	dstStrides := out.Strides()

	for b := 0; b < m; b++ {
		for r := 0; r < h; r++ {
			s := b*srcStrides[0] + r*srcStrides[1]
			d := b*dstStrides[0] + (r+ph)*dstStrides[1] + pw*dstStrides[2]
			copy(dst[d:d+rowLen], src[s:s+rowLen])
		}
	}
	return out, nil
}
