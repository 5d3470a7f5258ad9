package internal

// This contains no actual tests. It is just a helper for testing simplification
// and tracing validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a simplification is valid. The rules are:
// 1. Every output point is one of the input points.
// 2. Output points keep their input order.
// 3. The output has between max(n/100, 3) and n points, or is the input
//    itself when that has 3 points or fewer.
func AssertValidSimplification(t *testing.T, input, output []*Point) {
	if len(input) <= 3 {
		require.Equal(t, input, output, "small polygons are returned unchanged")
		return
	}
	require.GreaterOrEqual(t, len(output), MinSize(len(input)))
	require.LessOrEqual(t, len(output), len(input))

	inputPoints := make(PointSet)
	inputIndex := make(map[*Point]int)
	for i, p := range input {
		inputPoints.Add(p)
		inputIndex[p] = i
	}

	for i, p := range output {
		require.True(t, inputPoints.Contains(p), "output point %v is not an input point", p)
		if i > 0 {
			require.Less(t, inputIndex[output[i-1]], inputIndex[p], "output point %v is out of order", p)
		}
	}
}

// Check a contour against the raster it was traced from by sampling every
// pixel center: it must be inside the contour exactly when the pixel has the
// contour's label.
func validateContourBySampling(t *testing.T, contour Contour, raster LabelRaster) {
	for y, row := range raster {
		for x, label := range row {
			center := &Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if label == contour.Label {
				require.True(t, contour.Contains(center), "pixel (%d, %d) should be in contour %d", x, y, contour.Label)
			} else {
				require.False(t, contour.Contains(center), "pixel (%d, %d) should not be in contour %d", x, y, contour.Label)
			}
		}
	}
}
