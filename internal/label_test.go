package internal

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel_DiagonalTouches(t *testing.T) {
	mask := RasterFromRows(
		"100",
		"010",
		"001",
	)

	t.Run("4-connectivity keeps diagonals apart", func(t *testing.T) {
		labels, count := Label(mask, Connectivity4)
		assert.Equal(t, 3, count)
		assert.Equal(t, RasterFromRows(
			"100",
			"020",
			"003",
		), labels)
	})

	t.Run("8-connectivity merges diagonals", func(t *testing.T) {
		labels, count := Label(mask, Connectivity8)
		assert.Equal(t, 1, count)
		assert.Equal(t, mask, labels)
	})
}

func TestLabel_ScanOrder(t *testing.T) {
	mask := RasterFromRows(
		"00011",
		"11001",
		"01001",
		"00000",
		"10110",
	)
	labels, count := Label(mask, Connectivity4)
	assert.Equal(t, 4, count)
	assert.Equal(t, RasterFromRows(
		"00011",
		"22001",
		"02001",
		"00000",
		"30440",
	), labels)
	assert.Equal(t, 4, labels.Max())
}

func TestLabel_AnyNonzeroIsForeground(t *testing.T) {
	// Existing label values are treated as a plain mask
	mask := RasterFromRows(
		"12",
		"34",
	)
	labels, count := Label(mask, Connectivity4)
	assert.Equal(t, 1, count)
	assert.Equal(t, RasterFromRows("11", "11"), labels)
}

func TestLabel_Empty(t *testing.T) {
	labels, count := Label(LabelRaster{}, Connectivity8)
	assert.Equal(t, 0, count)
	assert.Empty(t, labels)

	labels, count = Label(NewLabelRaster(4, 3), Connectivity8)
	assert.Equal(t, 0, count)
	assert.Equal(t, NewLabelRaster(4, 3), labels)
}

func TestLabel_InvalidInput(t *testing.T) {
	assertInvalid := func(t *testing.T, fn func()) {
		defer func() {
			err := HandleSimplifyPanicRecover(recover())
			require.Error(t, err)
			assert.Equal(t, ErrInvalidInput, errors.Cause(err))
		}()
		fn()
	}

	t.Run("ragged rows", func(t *testing.T) {
		assertInvalid(t, func() {
			Label(LabelRaster{{1, 0}, {1}}, Connectivity4)
		})
	})

	t.Run("bad connectivity", func(t *testing.T) {
		assertInvalid(t, func() {
			Label(RasterFromRows("1"), Connectivity(6))
		})
	})
}

func TestLabelImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 6, 4))
	// Two bright blocks touching at a corner, on black
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}, {3, 2}, {3, 3}} {
		img.SetGray(p.X, p.Y, color.Gray{Y: 255})
	}
	// Too dark to pass the threshold
	img.SetGray(5, 0, color.Gray{Y: 40})

	labels, count := LabelImage(img, 128, Connectivity4)
	assert.Equal(t, 2, count)
	assert.Equal(t, RasterFromRows(
		"110000",
		"110000",
		"002200",
		"000200",
	), labels)

	_, count = LabelImage(img, 128, Connectivity8)
	assert.Equal(t, 1, count)
}

func TestBinaryRaster_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 13, 22))
	img.SetGray(11, 21, color.Gray{Y: 1})
	assert.Equal(t, RasterFromRows("000", "010"), BinaryRaster(img))
}

func TestLabelRaster_At(t *testing.T) {
	raster := RasterFromRows("12", "34")
	assert.Equal(t, 4, raster.At(1, 1))
	assert.Equal(t, 0, raster.At(-1, 0))
	assert.Equal(t, 0, raster.At(2, 0))
	assert.Equal(t, 0, raster.At(0, 2))
	assert.Equal(t, 2, raster.Width())
	assert.Equal(t, 2, raster.Height())
}
