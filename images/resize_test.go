package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

// TestResizeSquare validates square resampling across filters and error
// cases.
func TestResizeSquare(t *testing.T) {
	src := getTestImage(100, 100)

	for _, filter := range []ResampleFilter{
		NearestNeighborFilter, BilinearFilter, BicubicFilter,
		LanczosFilter, MitchellNetravaliFilter, CatmullRomFilter,
	} {
		out, err := ResizeSquare(src, 50, filter)
		require.NoError(t, err, "ResizeSquare should not error for valid input")
		assert.Equal(t, 50, out.Bounds().Dx(), "output should have requested width")
		assert.Equal(t, 50, out.Bounds().Dy(), "output should have requested height")
	}

	// Invalid parameters fail fast.
	_, err := ResizeSquare(src, 0, LanczosFilter)
	assert.Error(t, err, "ResizeSquare should error for zero size")
	_, err = ResizeSquare(src, -32, LanczosFilter)
	assert.Error(t, err, "ResizeSquare should error for negative size")
	_, err = ResizeSquare(nil, 32, LanczosFilter)
	assert.Error(t, err, "ResizeSquare should error for nil source")
	_, err = ResizeSquare(src, 32, ResampleFilter(99))
	assert.Error(t, err, "ResizeSquare should error for unknown filter")
}

// TestResizeSquare_Identity verifies that re-resizing an output to the same
// size keeps its dimensions stable.
func TestResizeSquare_Identity(t *testing.T) {
	src := getTestImage(256, 256)

	once, err := ResizeSquare(src, 128, LanczosFilter)
	require.NoError(t, err)
	twice, err := ResizeSquare(once, 128, LanczosFilter)
	require.NoError(t, err)

	assert.Equal(t, once.Bounds().Dx(), twice.Bounds().Dx(), "identity resize should not change width")
	assert.Equal(t, once.Bounds().Dy(), twice.Bounds().Dy(), "identity resize should not change height")
}

// TestResizeSquare_NonSquareSource verifies fit-and-center behavior: the
// scaled content is centered with transparent margins.
func TestResizeSquare_NonSquareSource(t *testing.T) {
	src := getTestImage(200, 100)

	out, err := ResizeSquare(src, 100, NearestNeighborFilter)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 100, out.Bounds().Dy())

	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok, "square output should be NRGBA")
	assert.EqualValues(t, 0, nrgba.NRGBAAt(50, 5).A, "top margin should be transparent")
	assert.EqualValues(t, 255, nrgba.NRGBAAt(50, 50).A, "centered content should be opaque")
}
