package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/xcorr/internal/tensor"
)

func TestWindow_Grayscale(t *testing.T) {
	// 1  2  3  4
	// 5  6  7  8
	// 9  10 11 12
	// 13 14 15 16
	images := arange(t, 1, 4, 4)

	win, err := Window(images, 1, 0, Stride{H: 2, W: 2}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 2, 3}, win.Shape())
	assert.Equal(t, []float64{9, 10, 11, 13, 14, 15}, win.Data())
}

func TestWindow_SpansBatch(t *testing.T) {
	images := arange(t, 2, 3, 3)

	win, err := Window(images, 1, 1, DefaultStride, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 2}, win.Shape())
	assert.Equal(t, []float64{
		5, 6, 8, 9,
		14, 15, 17, 18,
	}, win.Data())
}

func TestWindow_Channels(t *testing.T) {
	// 2x2 image, 2 channels: pixel (r, c) holds (2*(2r+c)+1, 2*(2r+c)+2).
	images := arange(t, 1, 2, 2, 2)

	win, err := Window(images, 0, 1, DefaultStride, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 2, 1, 2}, win.Shape())
	assert.Equal(t, []float64{3, 4, 7, 8}, win.Data())
}

func TestWindow_IsPure(t *testing.T) {
	images := pattern(t, 3, 2, 5, 5)
	before := images.Clone()

	first, err := Window(images, 1, 2, DefaultStride, 3, 3)
	require.NoError(t, err)
	first.Data()[0] = 99

	second, err := Window(images, 1, 2, DefaultStride, 3, 3)
	require.NoError(t, err)

	assert.Equal(t, before.Data(), images.Data())
	assert.NotEqual(t, first.Data()[0], second.Data()[0])
}

func TestWindow_Errors(t *testing.T) {
	images := arange(t, 1, 4, 4)

	tests := []struct {
		name    string
		row     int
		col     int
		stride  Stride
		kh      int
		kw      int
		wantErr error
	}{
		{"past bottom edge", 2, 0, Stride{H: 2, W: 1}, 2, 2, ErrShape},
		{"past right edge", 0, 3, DefaultStride, 2, 2, ErrShape},
		{"negative cell", -1, 0, DefaultStride, 2, 2, ErrShape},
		{"empty kernel", 0, 0, DefaultStride, 0, 2, ErrShape},
		{"bad stride", 0, 0, Stride{H: 1, W: 0}, 2, 2, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Window(images, tt.row, tt.col, tt.stride, tt.kh, tt.kw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Window(arange(t, 4, 4), 0, 0, DefaultStride, 1, 1)
	assert.ErrorIs(t, err, ErrShape)
}
