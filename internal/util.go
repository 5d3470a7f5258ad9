package internal

import "math"

const Epsilon = 1e-9

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Area of the triangle formed by three points. This is the removal cost of the
// middle point: how much area the polygon gains or loses if b is cut out and a
// is joined directly to c. It is never negative, and is zero for colinear
// points.
func TriangleArea(a, b, c *Point) float64 {
	return math.Abs(0.5 * (a.X*(b.Y-c.Y) +
		b.X*(c.Y-a.Y) +
		c.X*(a.Y-b.Y)))
}

func (p *Point) DistanceTo(other *Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Altitude of b over the chord a-c, derived from the triangle area. This turns
// an area into a length, so a single threshold works for both long and short
// edges. Coincident chord ends give +Inf, which no finite threshold accepts.
func Altitude(area float64, a, c *Point) float64 {
	chord := a.DistanceTo(c)
	if chord == 0 {
		return math.Inf(1)
	}
	return 2 * area / chord
}
