package internal

import (
	"fmt"
	"strings"
)

// Shoelace area. Positive when the points wind clockwise on screen (y pointing
// down), which is the winding the tracer gives outer boundaries. Holes come out
// negative.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

// Even-odd containment, counting crossings of a ray from p toward +x.
func (poly Polygon) ContainsPointByEvenOdd(p *Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p *Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		segment := Segment{vertex, nextVertex}
		if segment.CrossesRayFrom(p) {
			crossingCount++
		}
	}
	return crossingCount
}

// Rings of a contour are tested together, so holes cancel out the outer ring
// around them.
func (list PolygonList) ContainsPointByEvenOdd(p *Point) bool {
	crossingCount := 0
	for _, poly := range list {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

func (poly Polygon) IsHole() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shallow copy: the point pointers are shared, the slice is not. Simplifying
// the copy leaves the original polygon untouched.
func (poly Polygon) Copy() Polygon {
	points := make([]*Point, len(poly.Points))
	copy(points, poly.Points)
	return Polygon{Points: points}
}

func (poly Polygon) String() string {
	parts := make([]string, 0, len(poly.Points))
	for _, p := range poly.Points {
		parts = append(parts, fmt.Sprintf("(%g, %g)", p.X, p.Y))
	}
	return "Polygon[" + strings.Join(parts, " ") + "]"
}

func (list PolygonList) PointCount() int {
	var n int
	for _, poly := range list {
		n += len(poly.Points)
	}
	return n
}
