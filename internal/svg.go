package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read every <polygon> element in an SVG document. This is not a full SVG
// reader: transforms, paths and other shapes are ignored, and only the points
// attribute is read. Points may be separated by spaces, commas or both
// ("1,2 3,4" and "1 2 3 4" both work). Coordinates are checked here rather
// than by svgparser's validation, so errors name the bad value.
func ReadSVGPolygons(r io.Reader) (PolygonList, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var list PolygonList
	for i, el := range root.FindAll("polygon") {
		poly, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		list = append(list, poly)
	}
	return list, nil
}

func parseSVGPoints(attr string) (Polygon, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return Polygon{}, errors.Errorf("odd number of coordinates (%d) in points %q", len(fields), attr)
	}

	points := make([]*Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, &Point{X: x, Y: y})
	}
	return Polygon{Points: points}, nil
}
