package conv

import (
	"fmt"

	"github.com/born-ml/xcorr/internal/tensor"
)

// Window extracts the kh x kw spatial window that output cell (row, col)
// reads from a padded batch:
//
//	padded[:, row*s.H : row*s.H+kh, col*s.W : col*s.W+kw, ...]
//
// The result spans the full batch axis and, for rank-4 input, the full
// channel axis. It is a fresh copy with shape (m, kh, kw) or (m, kh, kw, c);
// padded is never modified, so Window is safe to call concurrently.
func Window(padded *tensor.Array, row, col int, s Stride, kh, kw int) (*tensor.Array, error) {
	if padded == nil {
		return nil, fmt.Errorf("%w: nil images", ErrShape)
	}
	if padded.Rank() != 3 && padded.Rank() != 4 {
		return nil, fmt.Errorf("%w: images must be (m, h, w) or (m, h, w, c), got %v", ErrShape, padded.Shape())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	shape := padded.Shape()
	h, w := shape[1], shape[2]
	top, left := row*s.H, col*s.W
	if row < 0 || col < 0 || kh <= 0 || kw <= 0 || top+kh > h || left+kw > w {
		return nil, fmt.Errorf("%w: window %dx%d at cell (%d, %d) stride %v outside %dx%d image",
			ErrShape, kh, kw, row, col, s, h, w)
	}

	winShape := shape
	winShape[1] = kh
	winShape[2] = kw
	win, err := tensor.New(winShape)
	if err != nil {
		return nil, fmt.Errorf("conv: window: %w", err)
	}

	extractWindow(win.Data(), padded, top, left, kh, kw)
	return win, nil
}

// extractWindow copies the window with top-left corner (top, left) into dst,
// laid out as (m, kh, kw[, c]). Bounds must already be checked.
func extractWindow(dst []float64, padded *tensor.Array, top, left, kh, kw int) {
	m := padded.Dim(0)
	batchStride := padded.Offset(1)
	rowStride := padded.Offset(0, 1)
	inner := padded.Offset(0, 0, 1) // 1 for grayscale, c for multi-channel.
	rowLen := kw * inner

	src := padded.Data()
	d := 0
	for b := 0; b < m; b++ {
		base := b*batchStride + left*inner
		for r := 0; r < kh; r++ {
			s := base + (top+r)*rowStride
			copy(dst[d:d+rowLen], src[s:s+rowLen])
			d += rowLen
		}
	}
}
