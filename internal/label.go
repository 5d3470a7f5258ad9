package internal

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/pkg/errors"
)

// Row-major label image: raster[y][x]. Zero is background, positive values are
// labels. Rows must all have the same length.
type LabelRaster [][]int

type Connectivity int

const (
	// Pixels touching along an edge are connected.
	Connectivity4 Connectivity = 4
	// Pixels touching along an edge or at a corner are connected.
	Connectivity8 Connectivity = 8
)

func (c Connectivity) Validate() error {
	if c != Connectivity4 && c != Connectivity8 {
		return errors.Wrapf(ErrInvalidInput, "connectivity must be 4 or 8, got %d", int(c))
	}
	return nil
}

var (
	neighbors4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	neighbors8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

func (c Connectivity) offsets() [][2]int {
	if c == Connectivity8 {
		return neighbors8
	}
	return neighbors4
}

func NewLabelRaster(width, height int) LabelRaster {
	raster := make(LabelRaster, height)
	for y := range raster {
		raster[y] = make([]int, width)
	}
	return raster
}

func (raster LabelRaster) Width() int {
	if len(raster) == 0 {
		return 0
	}
	return len(raster[0])
}

func (raster LabelRaster) Height() int {
	return len(raster)
}

func (raster LabelRaster) Validate() error {
	width := raster.Width()
	for y, row := range raster {
		if len(row) != width {
			return errors.Wrapf(ErrInvalidInput, "raster row %d has %d pixels, expected %d", y, len(row), width)
		}
	}
	return nil
}

func (raster LabelRaster) Max() int {
	var max int
	for _, row := range raster {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Label at (x, y), or 0 outside the raster.
func (raster LabelRaster) At(x, y int) int {
	if y < 0 || y >= len(raster) || x < 0 || x >= len(raster[y]) {
		return 0
	}
	return raster[y][x]
}

// Number the connected components of the nonzero pixels 1..n, in the order
// their first pixel appears in a row-major scan. Returns the labels and n.
func Label(raster LabelRaster, connectivity Connectivity) (LabelRaster, int) {
	throwIf(raster.Validate())
	throwIf(connectivity.Validate())

	width, height := raster.Width(), raster.Height()
	labels := NewLabelRaster(width, height)
	offsets := connectivity.offsets()

	count := 0
	var stack []pixel
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if raster[y][x] == 0 || labels[y][x] != 0 {
				continue
			}
			count++

			// Iterative flood fill, so large components can't overflow the stack
			stack = append(stack[:0], pixel{x, y})
			labels[y][x] = count
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, offset := range offsets {
					nx, ny := p.x+offset[0], p.y+offset[1]
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					if raster[ny][nx] == 0 || labels[ny][nx] != 0 {
						continue
					}
					labels[ny][nx] = count
					stack = append(stack, pixel{nx, ny})
				}
			}
		}
	}
	return labels, count
}

type pixel struct {
	x, y int
}

// Binary raster from a grayscale image: 1 where the pixel is nonzero.
func BinaryRaster(img *image.Gray) LabelRaster {
	bounds := img.Bounds()
	raster := NewLabelRaster(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if img.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y != 0 {
				raster[y][x] = 1
			}
		}
	}
	return raster
}

// Threshold an image (luminance at or above level is foreground) and label the
// foreground components. The image must already be decoded.
func LabelImage(img image.Image, level uint8, connectivity Connectivity) (LabelRaster, int) {
	mask := segment.Threshold(img, level)
	return Label(BinaryRaster(mask), connectivity)
}
