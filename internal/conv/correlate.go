package conv

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/xcorr/internal/parallel"
	"github.com/born-ml/xcorr/internal/tensor"
)

// Correlate computes the batched cross-correlation of images with kernel.
//
// The variant is chosen from the ranks of the arguments:
//
//	images (m, h, w)     kernel (kh, kw)          -> (m, out_h, out_w)
//	images (m, h, w, c)  kernel (kh, kw, c)       -> (m, out_h, out_w)
//	images (m, h, w, c)  kernel (kh, kw, c, nk)   -> (m, out_h, out_w, nk)
//
// Any other combination is ErrShape.
func (e *Engine) Correlate(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	if images == nil || kernel == nil {
		return nil, fmt.Errorf("%w: nil images or kernel", ErrShape)
	}

	switch {
	case images.Rank() == 3 && kernel.Rank() == 2:
		return e.CorrelateGrayscale(images, kernel, padding, stride)
	case images.Rank() == 4 && kernel.Rank() == 3:
		return e.CorrelateChannels(images, kernel, padding, stride)
	case images.Rank() == 4 && kernel.Rank() == 4:
		return e.CorrelateKernels(images, kernel, padding, stride)
	default:
		return nil, fmt.Errorf("%w: cannot correlate images %v with kernel %v",
			ErrShape, images.Shape(), kernel.Shape())
	}
}

// CorrelateValid correlates grayscale images (m, h, w) with a (kh, kw)
// kernel without padding at stride (1, 1).
// The output is (m, h-kh+1, w-kw+1).
func (e *Engine) CorrelateValid(images, kernel *tensor.Array) (*tensor.Array, error) {
	return e.CorrelateGrayscale(images, kernel, Valid(), DefaultStride)
}

// CorrelateSame correlates grayscale images with same padding at stride (1, 1).
// For odd kernels the output has the input's spatial size.
func (e *Engine) CorrelateSame(images, kernel *tensor.Array) (*tensor.Array, error) {
	return e.CorrelateGrayscale(images, kernel, Same(), DefaultStride)
}

// CorrelatePadded correlates grayscale images with ph rows and pw columns of
// zeros on each side at stride (1, 1).
func (e *Engine) CorrelatePadded(images, kernel *tensor.Array, ph, pw int) (*tensor.Array, error) {
	return e.CorrelateGrayscale(images, kernel, Explicit(ph, pw), DefaultStride)
}

// CorrelateGrayscale correlates grayscale images (m, h, w) with a (kh, kw)
// kernel using any padding and stride. The output is (m, out_h, out_w).
func (e *Engine) CorrelateGrayscale(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	if images == nil || kernel == nil {
		return nil, fmt.Errorf("%w: nil images or kernel", ErrShape)
	}
	if images.Rank() != 3 {
		return nil, fmt.Errorf("%w: grayscale images must be (m, h, w), got %v", ErrShape, images.Shape())
	}
	if kernel.Rank() != 2 {
		return nil, fmt.Errorf("%w: grayscale kernel must be (kh, kw), got %v", ErrShape, kernel.Shape())
	}

	return e.correlate(images, [][]float64{kernel.Data()}, kernel.Dim(0), kernel.Dim(1), padding, stride, false)
}

// CorrelateChannels correlates multi-channel images (m, h, w, c) with a
// single (kh, kw, c) kernel. Each window is summed over both spatial axes and
// the channel axis, so the output is (m, out_h, out_w).
func (e *Engine) CorrelateChannels(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	if images == nil || kernel == nil {
		return nil, fmt.Errorf("%w: nil images or kernel", ErrShape)
	}
	if images.Rank() != 4 {
		return nil, fmt.Errorf("%w: multi-channel images must be (m, h, w, c), got %v", ErrShape, images.Shape())
	}
	if kernel.Rank() != 3 {
		return nil, fmt.Errorf("%w: multi-channel kernel must be (kh, kw, c), got %v", ErrShape, kernel.Shape())
	}
	if kernel.Dim(2) != images.Dim(3) {
		return nil, fmt.Errorf("%w: kernel has %d channels, images have %d",
			ErrShape, kernel.Dim(2), images.Dim(3))
	}

	return e.correlate(images, [][]float64{kernel.Data()}, kernel.Dim(0), kernel.Dim(1), padding, stride, false)
}

// CorrelateKernels correlates multi-channel images (m, h, w, c) with nk
// kernels stacked along the last axis of a (kh, kw, c, nk) array, producing
// one output channel per kernel: (m, out_h, out_w, nk).
//
// Output channel k equals CorrelateChannels with kernel[:, :, :, k].
func (e *Engine) CorrelateKernels(images, kernels *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	if images == nil || kernels == nil {
		return nil, fmt.Errorf("%w: nil images or kernels", ErrShape)
	}
	if images.Rank() != 4 {
		return nil, fmt.Errorf("%w: multi-channel images must be (m, h, w, c), got %v", ErrShape, images.Shape())
	}
	if kernels.Rank() != 4 {
		return nil, fmt.Errorf("%w: kernels must be (kh, kw, c, nk), got %v", ErrShape, kernels.Shape())
	}
	if kernels.Dim(2) != images.Dim(3) {
		return nil, fmt.Errorf("%w: kernels have %d channels, images have %d",
			ErrShape, kernels.Dim(2), images.Dim(3))
	}

	return e.correlate(images, splitKernels(kernels), kernels.Dim(0), kernels.Dim(1), padding, stride, true)
}

// splitKernels turns a (kh, kw, c, nk) array into nk contiguous
// (kh, kw, c) kernels so each lines up with a flattened window.
func splitKernels(kernels *tensor.Array) [][]float64 {
	nk := kernels.Dim(3)
	size := kernels.NumElements() / nk
	data := kernels.Data()

	out := make([][]float64, nk)
	for k := range out {
		flat := make([]float64, size)
		for i := range flat {
			flat[i] = data[i*nk+k]
		}
		out[k] = flat
	}
	return out
}

// correlate is the shared sliding-window loop. Each kernel in kernels is
// flattened in the same (kh, kw[, c]) order as a window of one image.
// When stacked is true the output gets a trailing axis of len(kernels).
func (e *Engine) correlate(images *tensor.Array, kernels [][]float64, kh, kw int,
	padding Padding, stride Stride, stacked bool) (*tensor.Array, error) {
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

	nk := len(kernels)
	outShape := tensor.Shape{m, outH, outW}
	if stacked {
		outShape = append(outShape, nk)
	}
	output, err := tensor.New(outShape)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create output: %w", err)
	}

	// Elements of one image's window; equals the length of every kernel.
	winSize := len(kernels[0])
	outData := output.Data()
	cellStride := outH * outW * nk

	parallel.ForGrid(outH, outW, func(i, j int) {
		win := make([]float64, m*winSize)
		extractWindow(win, padded, i*stride.H, j*stride.W, kh, kw)

		cell := (i*outW + j) * nk
		for b := 0; b < m; b++ {
			seg := win[b*winSize : (b+1)*winSize]
			for k, kernel := range kernels {
				outData[b*cellStride+cell+k] = floats.Dot(seg, kernel)
			}
		}
	}, e.cfg.Parallel)

	return output, nil
}

// Correlate runs Engine.Correlate on the default engine.
func Correlate(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	return defaultEngine.Correlate(images, kernel, padding, stride)
}

// CorrelateValid runs Engine.CorrelateValid on the default engine.
func CorrelateValid(images, kernel *tensor.Array) (*tensor.Array, error) {
	return defaultEngine.CorrelateValid(images, kernel)
}

// CorrelateSame runs Engine.CorrelateSame on the default engine.
func CorrelateSame(images, kernel *tensor.Array) (*tensor.Array, error) {
	return defaultEngine.CorrelateSame(images, kernel)
}

// CorrelatePadded runs Engine.CorrelatePadded on the default engine.
func CorrelatePadded(images, kernel *tensor.Array, ph, pw int) (*tensor.Array, error) {
	return defaultEngine.CorrelatePadded(images, kernel, ph, pw)
}

// CorrelateGrayscale runs Engine.CorrelateGrayscale on the default engine.
func CorrelateGrayscale(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	return defaultEngine.CorrelateGrayscale(images, kernel, padding, stride)
}

// CorrelateChannels runs Engine.CorrelateChannels on the default engine.
func CorrelateChannels(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	return defaultEngine.CorrelateChannels(images, kernel, padding, stride)
}

// CorrelateKernels runs Engine.CorrelateKernels on the default engine.
func CorrelateKernels(images, kernels *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	return defaultEngine.CorrelateKernels(images, kernels, padding, stride)
}
