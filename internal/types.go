package internal

type Point struct {
	X float64
	Y float64
}

// Points are always handled by pointer. Simplification never modifies a point
// value; it only decides which pointers survive, so callers can rely on
// identity to match output points back to their input.
type Polygon struct {
	Points []*Point
}

type PolygonList []Polygon

type Segment struct {
	Start *Point
	End   *Point
}

// Whether a ray from p toward +x crosses the segment. The segment is half open
// in y, so a ray through a vertex shared by two segments counts once.
func (s Segment) CrossesRayFrom(p *Point) bool {
	if (s.Start.Y > p.Y) == (s.End.Y > p.Y) {
		return false
	}
	x := s.Start.X + (p.Y-s.Start.Y)*(s.End.X-s.Start.X)/(s.End.Y-s.Start.Y)
	return x > p.X
}

type PointSet map[*Point]struct{}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p *Point) bool {
	_, ok := s[p]
	return ok
}
