package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonSignedArea(t *testing.T) {
	square := Square(2)
	// Clockwise on screen (y down) is positive
	assert.InDelta(t, 4, square.SignedArea(), Epsilon)
	assert.False(t, square.IsHole())

	reversed := square.Reverse()
	assert.InDelta(t, -4, reversed.SignedArea(), Epsilon)
	assert.True(t, reversed.IsHole())
}

func TestPolygonCopy(t *testing.T) {
	original := SimpleStar()
	copied := original.Copy()
	copied.Points[0] = &Point{100, 100}
	copied.Points = copied.Points[:3]

	assert.Len(t, original.Points, 10)
	assert.NotEqual(t, copied.Points[0], original.Points[0])
	assert.Same(t, copied.Points[1], original.Points[1])
}

func TestPolygonListPointCount(t *testing.T) {
	list := PolygonList{Square(1), SimpleStar(), {}}
	assert.Equal(t, 14, list.PointCount())
}

func TestPolygonString(t *testing.T) {
	assert.Equal(t, "Polygon[(0, 0) (1, 0) (1, 1) (0, 1)]", Square(1).String())
}

func TestPolygonContainsPointByEvenOdd(t *testing.T) {
	square := Square(4)
	assert.True(t, square.ContainsPointByEvenOdd(&Point{2, 2}))
	assert.False(t, square.ContainsPointByEvenOdd(&Point{5, 2}))
	assert.False(t, square.ContainsPointByEvenOdd(&Point{-1, 2}))
	// A ray passing exactly through the corners at y=0 is counted once
	assert.False(t, square.ContainsPointByEvenOdd(&Point{-1, 0}))

	hole := Polygon{[]*Point{{1, 1}, {1, 3}, {3, 3}, {3, 1}}}
	withHole := PolygonList{square, hole}
	assert.False(t, withHole.ContainsPointByEvenOdd(&Point{2, 2}))
	assert.True(t, withHole.ContainsPointByEvenOdd(&Point{0.5, 2}))
}

func TestSegmentCrossesRayFrom(t *testing.T) {
	segment := Segment{&Point{2, 0}, &Point{2, 4}}
	assert.True(t, segment.CrossesRayFrom(&Point{0, 1}))
	assert.False(t, segment.CrossesRayFrom(&Point{3, 1}))
	assert.False(t, segment.CrossesRayFrom(&Point{0, 5}))

	horizontal := Segment{&Point{0, 1}, &Point{4, 1}}
	assert.False(t, horizontal.CrossesRayFrom(&Point{-1, 1}))
}
