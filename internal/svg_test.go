package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVGPolygons(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <g>
    <polygon points="0,0 10,0 10,10" />
    <rect x="0" y="0" width="5" height="5" />
    <polygon points="1 2 3 4
      5,6 7 8" />
  </g>
</svg>`

	list, err := ReadSVGPolygons(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, [][2]float64{{0, 0}, {10, 0}, {10, 10}}, pointsOf(list[0]))
	assert.Equal(t, [][2]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}, pointsOf(list[1]))
}

func TestReadSVGPolygons_NoPolygons(t *testing.T) {
	list, err := ReadSVGPolygons(strings.NewReader(`<svg><circle r="3"/></svg>`))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReadSVGPolygons_BadPoints(t *testing.T) {
	_, err := ReadSVGPolygons(strings.NewReader(`<svg><polygon points="0,0 1,0 1"/></svg>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odd number of coordinates")

	_, err = ReadSVGPolygons(strings.NewReader(`<svg><polygon points="0,0 1,x"/></svg>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid y value "x"`)
}

func TestReadSVGPolygons_Fixtures(t *testing.T) {
	assert.Len(t, LoadFixture("octagon").Points, 8)
	assert.Len(t, LoadFixture("wobbly").Points, 400)
}
