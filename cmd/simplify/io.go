package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/simplify"
	"github.com/pkg/errors"
)

// Polygons are read as newline separated points in the form "x y", with each
// polygon separated by an extra newline. Lines starting with # are comments,
// so the output of the trace command can be fed back in.
func readPolygons(in io.Reader) (simplify.PolygonList, error) {
	polygons := simplify.PolygonList{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []*simplify.Point{}
	lineNumber := 0
	for scanner.Scan() {
		// Read the next line
		line := strings.TrimSpace(scanner.Text())
		lineNumber++

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, simplify.Polygon{Points: points})
				points = []*simplify.Point{}
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, &point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, simplify.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (simplify.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return simplify.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return simplify.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return simplify.Point{}, errors.Wrap(err, "parsing y")
	}
	return simplify.Point{X: x, Y: y}, nil
}

// A raster is one row per line of whitespace separated integers. Blank lines
// are skipped. Row lengths aren't checked here; the tracer rejects ragged
// rasters.
func readRaster(in io.Reader) (simplify.LabelRaster, error) {
	var raster simplify.LabelRaster
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, field := range fields {
			value, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", lineNumber, i+1)
			}
			row[i] = value
		}
		raster = append(raster, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading raster")
	}
	return raster, nil
}

func writePolygons(out io.Writer, polygons simplify.PolygonList) error {
	for i, poly := range polygons {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := writePoints(out, poly); err != nil {
			return err
		}
	}
	return nil
}

func writePoints(out io.Writer, poly simplify.Polygon) error {
	for _, p := range poly.Points {
		if _, err := fmt.Fprintf(out, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// One block per ring, headed by a comment naming the label and whether the
// ring is an outer boundary or a hole.
func writeContours(out io.Writer, contours []simplify.Contour) error {
	first := true
	for _, contour := range contours {
		for _, ring := range contour.Rings {
			if !first {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			first = false

			kind := "outer"
			if ring.IsHole() {
				kind = "hole"
			}
			if _, err := fmt.Fprintf(out, "# label %d %s\n", contour.Label, kind); err != nil {
				return err
			}
			if err := writePoints(out, ring); err != nil {
				return err
			}
		}
	}
	return nil
}
