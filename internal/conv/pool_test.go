package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/xcorr/internal/tensor"
)

func TestPool_Max(t *testing.T) {
	// 1  2  3  4
	// 5  6  7  8
	// 9  10 11 12
	// 13 14 15 16
	images := arange(t, 1, 4, 4)

	output, err := sequentialEngine().Pool(images, 2, 2, Valid(), Stride{H: 2, W: 2}, MaxPool)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 2, 2}, output.Shape())
	assert.Equal(t, []float64{6, 8, 14, 16}, output.Data())
}

func TestPool_Avg(t *testing.T) {
	images := arange(t, 1, 4, 4)

	output, err := sequentialEngine().Pool(images, 2, 2, Valid(), Stride{H: 2, W: 2}, AvgPool)
	require.NoError(t, err)
	// (1+2+5+6)/4, (3+4+7+8)/4, (9+10+13+14)/4, (11+12+15+16)/4
	assert.Equal(t, []float64{3.5, 5.5, 11.5, 13.5}, output.Data())
}

func TestPool_OverlappingWindows(t *testing.T) {
	images := arange(t, 2, 3, 3)

	output, err := eagerEngine().Pool(images, 2, 2, Valid(), DefaultStride, MaxPool)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 2}, output.Shape())
	assert.Equal(t, []float64{
		5, 6, 8, 9,
		14, 15, 17, 18,
	}, output.Data())
}

func TestPool_Channels(t *testing.T) {
	// 2x2 image, 2 channels:
	// channel 0: 1 3    channel 1: 2 4
	//            5 7               6 8
	images := arange(t, 1, 2, 2, 2)

	maxOut, err := Pool(images, 2, 2, Valid(), DefaultStride, MaxPool)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 1, 1, 2}, maxOut.Shape())
	assert.Equal(t, []float64{7, 8}, maxOut.Data())

	avgOut, err := Pool(images, 2, 2, Valid(), DefaultStride, AvgPool)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, avgOut.Data())
}

func TestPool_SamePaddingCountsZeros(t *testing.T) {
	images := filled(t, -1, 1, 3, 3)

	output, err := Pool(images, 3, 3, Same(), DefaultStride, MaxPool)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3, 3}, output.Shape())
	// Every window reaches the zero border except the center one.
	assert.Equal(t, []float64{
		0, 0, 0,
		0, -1, 0,
		0, 0, 0,
	}, output.Data())

	avg, err := Pool(filled(t, 9, 1, 3, 3), 3, 3, Same(), DefaultStride, AvgPool)
	require.NoError(t, err)
	// Corner windows cover 4 pixels out of 9.
	assert.Equal(t, 4.0, avg.Data()[0])
	assert.Equal(t, 9.0, avg.Data()[4])
}

func TestPool_ParallelMatchesSequential(t *testing.T) {
	images := pattern(t, 21, 2, 11, 9, 3)

	for _, mode := range []PoolMode{MaxPool, AvgPool} {
		seq, err := sequentialEngine().Pool(images, 3, 2, Explicit(1, 1), Stride{H: 2, W: 2}, mode)
		require.NoError(t, err)
		par, err := eagerEngine().Pool(images, 3, 2, Explicit(1, 1), Stride{H: 2, W: 2}, mode)
		require.NoError(t, err)

		// (11 + 2 - 3) / 2 + 1 = 6, (9 + 2 - 2) / 2 + 1 = 5
		assert.Equal(t, tensor.Shape{2, 6, 5, 3}, par.Shape(), "mode %v", mode)
		assert.Equal(t, seq.Data(), par.Data(), "mode %v", mode)
	}
}

func TestParsePoolMode(t *testing.T) {
	mode, err := ParsePoolMode("MAX")
	require.NoError(t, err)
	assert.Equal(t, MaxPool, mode)

	mode, err = ParsePoolMode("avg")
	require.NoError(t, err)
	assert.Equal(t, AvgPool, mode)
	assert.Equal(t, "avg", mode.String())

	_, err = ParsePoolMode("min")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPool_Errors(t *testing.T) {
	images := arange(t, 1, 4, 4)

	_, err := Pool(nil, 2, 2, Valid(), DefaultStride, MaxPool)
	assert.ErrorIs(t, err, ErrShape)

	_, err = Pool(arange(t, 4, 4), 2, 2, Valid(), DefaultStride, MaxPool)
	assert.ErrorIs(t, err, ErrShape)

	_, err = Pool(images, 5, 2, Valid(), DefaultStride, MaxPool)
	assert.ErrorIs(t, err, ErrShape)

	_, err = Pool(images, 2, 2, Valid(), Stride{H: 2, W: 0}, MaxPool)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Pool(images, 2, 2, Valid(), DefaultStride, PoolMode(9))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
