package internal

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shapes so outlines on the bounding box stay visible
const drawPadding = 20

// Render polygons filled (even-odd, so holes show) and stroked. Coordinates are
// drawn as-is with y pointing down, matching raster coordinates.
func DrawPolygons(list PolygonList, scale float64) image.Image {
	c := newCanvas([]PolygonList{list}, scale)
	tracePaths(c, list)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
	return c.Image()
}

// Render traced contours, one palette color per label.
func DrawContours(contours []Contour, scale float64) image.Image {
	lists := make([]PolygonList, len(contours))
	for i, contour := range contours {
		lists[i] = contour.Rings
	}
	c := newCanvas(lists, scale)

	palette := colorful.FastHappyPalette(len(contours))
	for i, list := range lists {
		tracePaths(c, list)
		c.SetColor(palette[i])
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}
	return c.Image()
}

func newCanvas(lists []PolygonList, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, list := range lists {
		for _, poly := range list {
			for _, p := range poly.Points {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if math.IsInf(minX, 1) {
		// Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	return c
}

func tracePaths(c *gg.Context, list PolygonList) {
	for _, poly := range list {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
}

// Save the image as a PNG at path, then print it inline to the terminal (iTerm
// only).
func ShowInTerminal(img image.Image, path string) error {
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
