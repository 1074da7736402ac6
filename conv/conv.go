// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package conv

import (
	"github.com/born-ml/xcorr/internal/conv"
	"github.com/born-ml/xcorr/internal/parallel"
	"github.com/born-ml/xcorr/tensor"
)

// Padding describes the zero border added around each image.
type Padding = conv.Padding

// PaddingMode selects how the border is sized.
type PaddingMode = conv.PaddingMode

// Padding modes.
const (
	PadValid    PaddingMode = conv.PadValid
	PadSame     PaddingMode = conv.PadSame
	PadExplicit PaddingMode = conv.PadExplicit
)

// Stride is the step between successive windows.
type Stride = conv.Stride

// DefaultStride samples every position.
var DefaultStride = conv.DefaultStride

// PoolMode selects the pooling reduction.
type PoolMode = conv.PoolMode

// Pooling reductions.
const (
	MaxPool PoolMode = conv.MaxPool
	AvgPool PoolMode = conv.AvgPool
)

// Errors reported by the engine.
var (
	ErrShape           = conv.ErrShape
	ErrInvalidArgument = conv.ErrInvalidArgument
)

// Engine runs correlation and pooling with a fixed configuration.
type Engine = conv.Engine

// Config configures an Engine.
type Config = conv.Config

// ParallelConfig controls how output cells are spread across goroutines.
type ParallelConfig = parallel.Config

// DefaultConfig returns a config that parallelizes across all CPUs.
func DefaultConfig() Config {
	return conv.DefaultConfig()
}

// SequentialConfig returns a config that computes every cell on the calling goroutine.
func SequentialConfig() Config {
	return Config{Parallel: parallel.Sequential()}
}

// NewEngine creates an engine.
//
// Example:
//
//	e := conv.NewEngine(conv.SequentialConfig())
//	out, err := e.CorrelateSame(images, kernel)
func NewEngine(cfg Config) *Engine {
	return conv.NewEngine(cfg)
}

// Valid returns padding that adds no border.
func Valid() Padding { return conv.Valid() }

// Same returns (k-1)/2 padding per side.
func Same() Padding { return conv.Same() }

// Explicit returns h rows and w columns of zeros per side.
func Explicit(h, w int) Padding { return conv.Explicit(h, w) }

// ParsePadding parses "valid" or "same".
func ParsePadding(s string) (Padding, error) { return conv.ParsePadding(s) }

// ParsePoolMode parses "max" or "avg".
func ParsePoolMode(s string) (PoolMode, error) { return conv.ParsePoolMode(s) }

// OutputSize returns the spatial output size for the given geometry.
func OutputSize(inH, inW, kh, kw, ph, pw int, s Stride) (outH, outW int, err error) {
	return conv.OutputSize(inH, inW, kh, kw, ph, pw, s)
}

// Pad returns a zero-bordered copy of an image batch.
func Pad(images *tensor.Array, ph, pw int) (*tensor.Array, error) {
	return conv.Pad(images, ph, pw)
}

// Window extracts the window read by output cell (row, col) from a padded batch.
func Window(padded *tensor.Array, row, col int, s Stride, kh, kw int) (*tensor.Array, error) {
	return conv.Window(padded, row, col, s, kh, kw)
}

// Correlate dispatches on the ranks of images and kernel:
//
//	(m, h, w)    with (kh, kw)         -> (m, out_h, out_w)
//	(m, h, w, c) with (kh, kw, c)      -> (m, out_h, out_w)
//	(m, h, w, c) with (kh, kw, c, nk)  -> (m, out_h, out_w, nk)
func Correlate(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	return conv.Correlate(images, kernel, padding, stride)
}

// CorrelateValid correlates grayscale images without padding at stride (1, 1).
func CorrelateValid(images, kernel *tensor.Array) (*tensor.Array, error) {
	return conv.CorrelateValid(images, kernel)
}

// CorrelateSame correlates grayscale images with same padding at stride (1, 1).
func CorrelateSame(images, kernel *tensor.Array) (*tensor.Array, error) {
	return conv.CorrelateSame(images, kernel)
}

// CorrelatePadded correlates grayscale images with explicit padding at stride (1, 1).
func CorrelatePadded(images, kernel *tensor.Array, ph, pw int) (*tensor.Array, error) {
	return conv.CorrelatePadded(images, kernel, ph, pw)
}

// CorrelateGrayscale correlates grayscale images with any padding and stride.
func CorrelateGrayscale(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	return conv.CorrelateGrayscale(images, kernel, padding, stride)
}

// CorrelateChannels correlates multi-channel images with one kernel, summing over channels.
func CorrelateChannels(images, kernel *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	return conv.CorrelateChannels(images, kernel, padding, stride)
}

// CorrelateKernels correlates multi-channel images with a stack of kernels.
func CorrelateKernels(images, kernels *tensor.Array, padding Padding, stride Stride) (*tensor.Array, error) {
	return conv.CorrelateKernels(images, kernels, padding, stride)
}

// Pool applies max or average pooling.
func Pool(images *tensor.Array, kh, kw int, padding Padding, stride Stride, mode PoolMode) (*tensor.Array, error) {
	return conv.Pool(images, kh, kw, padding, stride, mode)
}
