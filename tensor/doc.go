// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense array type consumed and produced by
// the conv package.
//
// # Overview
//
// Arrays are row-major and always hold float64 values. Image batches are
// (m, h, w) or (m, h, w, c); kernels are (kh, kw), (kh, kw, c) or
// (kh, kw, c, nk).
//
// # Basic Usage
//
//	import "github.com/born-ml/xcorr/tensor"
//
//	func main() {
//	    images, err := tensor.FromSlice(pixels, tensor.Shape{2, 28, 28})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    kernel := tensor.MustNew(tensor.Shape{3, 3})
//	    _ = kernel.Set(1, 1, 1)
//	}
//
// FromSlice accepts float32, float64, int, int32, int64 and uint8 data and
// converts it to float64 on copy.
package tensor
