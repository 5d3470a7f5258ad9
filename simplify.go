// Polygon simplification and raster contour tracing for Go.
//
// Simplification removes polygon points cheapest first, using Visvalingam's
// effective area, until the next point would move the outline by more than a
// given distance. Tracing turns a raster of integer labels into one outline
// (possibly with several rings and holes) per label. The two are usually used
// together: label a mask, trace the labels, simplify the traced rings.
package simplify

import (
	"image"
	"io"

	"github.com/osuushi/simplify/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList
type Simplifier = internal.Simplifier
type Removal = internal.Removal
type LabelRaster = internal.LabelRaster
type Connectivity = internal.Connectivity
type Contour = internal.Contour
type TraceOptions = internal.TraceOptions

const (
	Connectivity4 = internal.Connectivity4
	Connectivity8 = internal.Connectivity8
)

// Wrapped by every error caused by unusable input. Compare with errors.Cause.
var ErrInvalidInput = internal.ErrInvalidInput

// Simplify a closed polygon given as a point list. The slice is modified in
// place: surviving points are compacted to the front, in order, and the
// shortened slice is returned. Points themselves are never modified, so
// pointer identity can be used to match output to input.
//
// Polygons with 3 or fewer points are returned unchanged, and the result
// never has fewer than max(len(points)/100, 3) points.
func SimplifyPoints(points []*Point, altitudeThreshold float64) []*Point {
	return internal.Simplify(points, altitudeThreshold)
}

// Simplify a copy of the polygon, leaving the input untouched.
func SimplifyPolygon(polygon Polygon, altitudeThreshold float64) Polygon {
	return internal.SimplifyPolygon(polygon, altitudeThreshold)
}

// Number the connected components of the raster's nonzero pixels 1..n.
func Label(raster LabelRaster, connectivity Connectivity) (labels LabelRaster, count int, err error) {
	defer func() {
		recoveredErr := internal.HandleSimplifyPanicRecover(recover())
		if recoveredErr != nil {
			labels, count, err = nil, 0, recoveredErr
		}
	}()
	labels, count = internal.Label(raster, connectivity)
	return labels, count, nil
}

// Threshold an already decoded image (luminance >= level is foreground) and
// label its foreground components.
func LabelImage(img image.Image, level uint8, connectivity Connectivity) (labels LabelRaster, count int, err error) {
	defer func() {
		recoveredErr := internal.HandleSimplifyPanicRecover(recover())
		if recoveredErr != nil {
			labels, count, err = nil, 0, recoveredErr
		}
	}()
	labels, count = internal.LabelImage(img, level, connectivity)
	return labels, count, nil
}

// Read the <polygon> elements of an SVG document.
func ReadSVGPolygons(r io.Reader) (PolygonList, error) {
	return internal.ReadSVGPolygons(r)
}

// Trace the labels of a raster into contours, one per positive label, sorted by
// label. The raster must be rectangular and the connectivity 4 or 8.
func TraceContours(raster LabelRaster, opts TraceOptions) (result []Contour, err error) {
	defer func() {
		recoveredErr := internal.HandleSimplifyPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Trace(raster, opts), nil
}

// Trace the raster and key the contours by label.
func TraceContourMap(raster LabelRaster, connectivity Connectivity) (result map[int]Contour, err error) {
	defer func() {
		recoveredErr := internal.HandleSimplifyPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.TraceMap(raster, TraceOptions{Connectivity: connectivity}), nil
}
