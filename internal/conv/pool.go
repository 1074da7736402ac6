package conv

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/xcorr/internal/parallel"
	"github.com/born-ml/xcorr/internal/tensor"
)

// PoolMode selects the reduction applied to each pooling window.
type PoolMode int

// Supported pooling reductions.
const (
	MaxPool PoolMode = iota
	AvgPool
)

// String returns "max" or "avg".
func (m PoolMode) String() string {
	switch m {
	case MaxPool:
		return "max"
	case AvgPool:
		return "avg"
	default:
		return "unknown"
	}
}

// ParsePoolMode converts "max" or "avg" (case-insensitive) into a PoolMode.
func ParsePoolMode(s string) (PoolMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return MaxPool, nil
	case "avg", "average":
		return AvgPool, nil
	default:
		return 0, fmt.Errorf("%w: unknown pooling mode %q", ErrInvalidArgument, s)
	}
}

// Pool reduces every kh x kw window of each image channel to a single value.
//
// Input shape:  (m, h, w) or (m, h, w, c)
// Output shape: (m, out_h, out_w) or (m, out_h, out_w, c)
//
// Window placement and output size follow the same rules as Correlate.
// Zero padding takes part in the reduction, so a padded max pool over
// negative inputs can return 0 at the borders.
//
// Example (2x2 max pool, stride 2):
//
//	Input: [[1,2,3,4],    Output: [[6,8],
//	        [5,6,7,8],             [14,16]]
//	        [9,10,11,12],
//	        [13,14,15,16]]
func (e *Engine) Pool(images *tensor.Array, kh, kw int, padding Padding, stride Stride, mode PoolMode) (*tensor.Array, error) {
	if images == nil {
		return nil, fmt.Errorf("%w: nil images", ErrShape)
	}
	if images.Rank() != 3 && images.Rank() != 4 {
		return nil, fmt.Errorf("%w: images must be (m, h, w) or (m, h, w, c), got %v", ErrShape, images.Shape())
	}
	if mode != MaxPool && mode != AvgPool {
		return nil, fmt.Errorf("%w: unknown pooling mode %d", ErrInvalidArgument, int(mode))
	}

	ph, pw, err := padding.Resolve(kh, kw, stride)
	if err != nil {
		return nil, err
	}

	m, h, w := images.Dim(0), images.Dim(1), images.Dim(2)
	outH, outW, err := OutputSize(h, w, kh, kw, ph, pw, stride)
	if err != nil {
		return nil, err
	}

	padded, err := Pad(images, ph, pw)
	if err != nil {
		return nil, err
	}

	channels := 1
	outShape := tensor.Shape{m, outH, outW}
	if images.Rank() == 4 {
		channels = images.Dim(3)
		outShape = append(outShape, channels)
	}
	output, err := tensor.New(outShape)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create output: %w", err)
	}

	area := kh * kw
	winSize := area * channels
	outData := output.Data()
	cellStride := outH * outW * channels

	parallel.ForGrid(outH, outW, func(i, j int) {
		win := make([]float64, m*winSize)
		extractWindow(win, padded, i*stride.H, j*stride.W, kh, kw)

		// Values of one channel, gathered from the interleaved window.
		plane := make([]float64, area)
		cell := (i*outW + j) * channels
		for b := 0; b < m; b++ {
			seg := win[b*winSize : (b+1)*winSize]
			for c := 0; c < channels; c++ {
				for t := range plane {
					plane[t] = seg[t*channels+c]
				}
				outData[b*cellStride+cell+c] = reducePlane(plane, mode)
			}
		}
	}, e.cfg.Parallel)

	return output, nil
}

func reducePlane(plane []float64, mode PoolMode) float64 {
	if mode == MaxPool {
		return floats.Max(plane)
	}
	return floats.Sum(plane) / float64(len(plane))
}

// Pool runs Engine.Pool on the default engine.
func Pool(images *tensor.Array, kh, kw int, padding Padding, stride Stride, mode PoolMode) (*tensor.Array, error) {
	return defaultEngine.Pool(images, kh, kw, padding, stride, mode)
}
