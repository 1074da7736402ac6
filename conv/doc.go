// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package conv computes batched 2D cross-correlation ("convolution") and
// pooling over image batches.
//
// # Overview
//
// This package provides:
//   - Correlate: rank-driven entry point for every variant
//   - CorrelateValid, CorrelateSame, CorrelatePadded: grayscale, stride (1, 1)
//   - CorrelateGrayscale: grayscale with any padding and stride
//   - CorrelateChannels: (m, h, w, c) images with one (kh, kw, c) kernel
//   - CorrelateKernels: (kh, kw, c, nk) kernel stack, one output channel per kernel
//   - Pool: max or average pooling with the same window geometry
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/xcorr/conv"
//	    "github.com/born-ml/xcorr/tensor"
//	)
//
//	func main() {
//	    images := tensor.MustNew(tensor.Shape{2, 5, 5})
//	    kernel, _ := tensor.Full(tensor.Shape{3, 3}, 1)
//
//	    out, err := conv.Correlate(images, kernel, conv.Valid(), conv.DefaultStride)
//	    // out.Shape() == (2, 3, 3)
//	}
//
// # Geometry
//
// For padding (ph, pw) and stride (sh, sw):
//
//	out_h = (h + 2*ph - kh) / sh + 1
//	out_w = (w + 2*pw - kw) / sw + 1
//
// Same padding is (k-1)/2 per side on every stride, so odd kernels give
// ceil(in/stride) outputs per axis.
//
// # Errors
//
// Shape problems wrap ErrShape; unknown modes, negative padding and
// non-positive strides wrap ErrInvalidArgument. Use errors.Is to test.
//
// # Concurrency
//
// Output cells are independent and are spread across goroutines by the
// Engine's Config. Engines are safe for concurrent use; inputs are never
// modified.
package conv
