package conv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/xcorr/internal/parallel"
	"github.com/born-ml/xcorr/internal/tensor"
)

// sequentialEngine runs every cell on the test goroutine.
func sequentialEngine() *Engine {
	return NewEngine(Config{Parallel: parallel.Sequential()})
}

// eagerEngine splits even tiny grids across goroutines.
func eagerEngine() *Engine {
	return NewEngine(Config{Parallel: parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}})
}

func fromSlice(t *testing.T, data []float64, shape ...int) *tensor.Array {
	t.Helper()
	a, err := tensor.FromSlice(data, tensor.Shape(shape))
	require.NoError(t, err)
	return a
}

// arange returns an array holding 1, 2, 3, ... in row-major order.
func arange(t *testing.T, shape ...int) *tensor.Array {
	t.Helper()
	a, err := tensor.New(tensor.Shape(shape))
	require.NoError(t, err)
	for i := range a.Data() {
		a.Data()[i] = float64(i + 1)
	}
	return a
}

// pattern returns small signed integers so sums stay exact in float64.
func pattern(t *testing.T, seed int, shape ...int) *tensor.Array {
	t.Helper()
	a, err := tensor.New(tensor.Shape(shape))
	require.NoError(t, err)
	for i := range a.Data() {
		a.Data()[i] = float64((i*7+seed*3)%11 - 5)
	}
	return a
}

func filled(t *testing.T, v float64, shape ...int) *tensor.Array {
	t.Helper()
	a, err := tensor.Full(tensor.Shape(shape), v)
	require.NoError(t, err)
	return a
}

// naiveCorrelate is a bounds-checked direct correlation used as an oracle.
// Grayscale inputs are treated as one channel; kernel is (kh, kw) or (kh, kw, c).
func naiveCorrelate(images, kernel *tensor.Array, ph, pw int, s Stride) *tensor.Array {
	m, h, w := images.Dim(0), images.Dim(1), images.Dim(2)
	c := 1
	if images.Rank() == 4 {
		c = images.Dim(3)
	}
	kh, kw := kernel.Dim(0), kernel.Dim(1)
	outH := (h+2*ph-kh)/s.H + 1
	outW := (w+2*pw-kw)/s.W + 1

	out := tensor.MustNew(tensor.Shape{m, outH, outW})
	img, ker, od := images.Data(), kernel.Data(), out.Data()

	for b := 0; b < m; b++ {
		for i := 0; i < outH; i++ {
			for j := 0; j < outW; j++ {
				sum := 0.0
				for y := 0; y < kh; y++ {
					r := i*s.H + y - ph
					if r < 0 || r >= h {
						continue
					}
					for x := 0; x < kw; x++ {
						col := j*s.W + x - pw
						if col < 0 || col >= w {
							continue
						}
						for ch := 0; ch < c; ch++ {
							sum += img[((b*h+r)*w+col)*c+ch] * ker[(y*kw+x)*c+ch]
						}
					}
				}
				od[(b*outH+i)*outW+j] = sum
			}
		}
	}
	return out
}
