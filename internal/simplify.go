package internal

import (
	"math"

	"github.com/osuushi/simplify/internal/dbg"
	"github.com/sirupsen/logrus"
)

// Polygon simplification based on Visvalingam's algorithm. Points are removed
// one at a time, cheapest first, where the cost of a point is the area of the
// triangle it forms with its current neighbors. After each removal the two
// neighbors are re-costed, since their triangles just changed.
//
// The stopping rule is an altitude rather than an area: the height of the
// point above the chord joining its neighbors. That makes the threshold a
// distance, comparable across long and short edges. The sweep stops at the
// first point whose altitude exceeds the threshold. Every point still queued
// at that moment costs at least as much, so all of them are kept.
//
// The polygon is never reduced below max(n/100, 3) points.
//
// References:
// https://hydra.hull.ac.uk/resources/hull:8338
// https://bost.ocks.org/mike/simplify/

type Simplifier struct {
	AltitudeThreshold float64
	// Optional. Removals and the stopping reason are logged at debug level.
	Log logrus.FieldLogger
	// Optional. Called for every removed point, in removal order.
	OnRemove func(Removal)
}

type Removal struct {
	Point *Point
	// Triangle area at the moment of removal.
	Cost float64
	// Cost raised to the largest cost removed so far. This sequence is
	// non-decreasing over a run even though raw costs aren't: re-costed
	// neighbors can come out cheaper than points already removed.
	EffectiveCost float64
	Altitude      float64
}

// Simplify a closed polygon. The backing array of points is reused: survivors
// are compacted to the front in their original order and the shortened slice
// is returned. Callers that need the original intact should pass a copy.
// Polygons of 3 points or fewer are returned unchanged.
func Simplify(points []*Point, altitudeThreshold float64) []*Point {
	s := Simplifier{AltitudeThreshold: altitudeThreshold}
	return s.Run(points)
}

func MinSize(n int) int {
	minSize := n / 100
	if minSize < 3 {
		minSize = 3
	}
	return minSize
}

func (s *Simplifier) Run(points []*Point) []*Point {
	if len(points) <= 3 {
		return points
	}

	n := len(points)
	ring, err := NewRing(points)
	if err != nil {
		// Unreachable with more than 3 points.
		return points
	}
	queue := NewCostQueue(ring)
	minSize := MinSize(n)

	var maxCost float64
	for queue.Len() > minSize {
		i, ok := queue.PopMin()
		if !ok {
			break
		}
		node := &ring.Nodes[i]
		prev, next := node.Prev, node.Next

		altitude := Altitude(node.Cost, ring.Nodes[prev].Point, ring.Nodes[next].Point)
		if math.IsNaN(altitude) || altitude > s.AltitudeThreshold {
			s.debug(node, altitude, "stopping at point above threshold")
			break
		}

		effectiveCost := node.Cost
		if effectiveCost < maxCost {
			effectiveCost = maxCost
		} else {
			maxCost = effectiveCost
		}

		ring.Unlink(i)
		ring.Recompute(prev)
		ring.Recompute(next)
		queue.Update(prev)
		queue.Update(next)

		s.debug(node, altitude, "removed point")
		if s.OnRemove != nil {
			s.OnRemove(Removal{
				Point:         node.Point,
				Cost:          node.Cost,
				EffectiveCost: effectiveCost,
				Altitude:      altitude,
			})
		}
	}

	kept := ring.Points()
	copy(points, kept)
	for i := len(kept); i < n; i++ {
		points[i] = nil
	}
	return points[:len(kept)]
}

func (s *Simplifier) debug(node *RingNode, altitude float64, msg string) {
	if s.Log == nil {
		return
	}
	s.Log.WithFields(logrus.Fields{
		"point":    dbg.Name(node.Point),
		"x":        node.Point.X,
		"y":        node.Point.Y,
		"cost":     node.Cost,
		"altitude": altitude,
	}).Debug(msg)
}

// Simplify a copy of the polygon. The input polygon is left untouched.
func SimplifyPolygon(poly Polygon, altitudeThreshold float64) Polygon {
	result := poly.Copy()
	result.Points = Simplify(result.Points, altitudeThreshold)
	return result
}

// Simplify every polygon in the list independently. Each one works on its own
// copy, so callers may run separate lists on separate goroutines.
func (list PolygonList) Simplify(altitudeThreshold float64) PolygonList {
	result := make(PolygonList, len(list))
	for i, poly := range list {
		result[i] = SimplifyPolygon(poly, altitudeThreshold)
	}
	return result
}
