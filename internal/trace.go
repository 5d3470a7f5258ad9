package internal

import (
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"
)

// Contour tracing turns a label raster into polygons that follow pixel edges.
// Pixel (x, y) covers the square [x, x+1] x [y, y+1], so a single pixel traces
// to the four corners of that square.
//
// For each label, every pixel side that faces a different label (or the
// outside of the raster) becomes a directed unit edge, oriented so the pixel
// is on the right when walking it in screen coordinates. Those edges are then
// chained into closed rings. Outer boundaries come out with positive signed
// area and holes with negative, and runs of colinear unit edges are collapsed
// so only the corners remain.
//
// The only place chaining is ambiguous is a vertex where two pixels of the
// label touch diagonally and the other two pixels around it don't belong. Such
// a vertex has two incoming and two outgoing edges. With 4-connectivity each
// incoming edge continues along the same pixel, keeping the two pixels on
// separate rings. With 8-connectivity it crosses over to the other pixel,
// joining them into one ring that touches itself at the vertex.

type Contour struct {
	Label int
	// Outer rings and holes, in the order they were found in a row-major scan.
	Rings []Polygon
}

type TraceOptions struct {
	Connectivity Connectivity
	// Labels below MinLabel are skipped. Values below 1 mean 1: background is
	// never traced.
	MinLabel int
	// Labels above MaxLabel are skipped. Zero or negative means no limit.
	MaxLabel int
	// If positive, every traced ring is simplified with this altitude
	// threshold.
	SimplifyThreshold float64
}

type direction int

const (
	dirRight direction = iota
	dirDown
	dirLeft
	dirUp
)

type traceEdge struct {
	from, to int // vertex ids
	dir      direction
	owner    int // pixel id
}

// All boundary edges for one label, and an index from each vertex to the edges
// leaving it. A vertex has either one outgoing edge or, at a diagonal pinch,
// two.
type labelBoundary struct {
	label    int
	edges    []traceEdge
	outgoing map[int][]int
}

func (b *labelBoundary) add(e traceEdge) {
	b.outgoing[e.from] = append(b.outgoing[e.from], len(b.edges))
	b.edges = append(b.edges, e)
}

// Trace one contour per label present in the raster (and in the option's label
// range), sorted by label.
func Trace(raster LabelRaster, opts TraceOptions) []Contour {
	throwIf(raster.Validate())
	throwIf(opts.Connectivity.Validate())

	width, height := raster.Width(), raster.Height()
	vertexID := func(x, y int) int {
		return y*(width+1) + x
	}
	minLabel := opts.MinLabel
	if minLabel < 1 {
		minLabel = 1
	}

	boundaries := make(map[int]*labelBoundary)
	var labels []int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			label := raster[y][x]
			if label < minLabel || (opts.MaxLabel > 0 && label > opts.MaxLabel) {
				continue
			}
			b, ok := boundaries[label]
			if !ok {
				b = &labelBoundary{label: label, outgoing: make(map[int][]int)}
				boundaries[label] = b
				labels = append(labels, label)
			}

			owner := y*width + x
			if raster.At(x, y-1) != label {
				b.add(traceEdge{vertexID(x, y), vertexID(x+1, y), dirRight, owner})
			}
			if raster.At(x+1, y) != label {
				b.add(traceEdge{vertexID(x+1, y), vertexID(x+1, y+1), dirDown, owner})
			}
			if raster.At(x, y+1) != label {
				b.add(traceEdge{vertexID(x+1, y+1), vertexID(x, y+1), dirLeft, owner})
			}
			if raster.At(x-1, y) != label {
				b.add(traceEdge{vertexID(x, y+1), vertexID(x, y), dirUp, owner})
			}
		}
	}

	sort.Ints(labels)
	contours := make([]Contour, 0, len(labels))
	for _, label := range labels {
		contour := boundaries[label].trace(opts.Connectivity, width)
		if opts.SimplifyThreshold > 0 {
			for i := range contour.Rings {
				contour.Rings[i].Points = Simplify(contour.Rings[i].Points, opts.SimplifyThreshold)
			}
		}
		contours = append(contours, contour)
	}
	return contours
}

// Same as Trace, keyed by label.
func TraceMap(raster LabelRaster, opts TraceOptions) map[int]Contour {
	contours := Trace(raster, opts)
	result := make(map[int]Contour, len(contours))
	for _, contour := range contours {
		result[contour.Label] = contour
	}
	return result
}

func (b *labelBoundary) trace(connectivity Connectivity, width int) Contour {
	contour := Contour{Label: b.label}
	visited := make([]bool, len(b.edges))
	for start := range b.edges {
		if visited[start] {
			continue
		}
		var loop []int
		e := start
		for !visited[e] {
			visited[e] = true
			loop = append(loop, e)
			e = b.next(e, connectivity)
		}
		if e != start {
			fatalf("boundary of label %d did not close: edge %d rejoined at edge %d", b.label, start, e)
		}
		contour.Rings = append(contour.Rings, b.polygon(loop, width))
	}
	return contour
}

// The edge that continues the ring after edge e.
func (b *labelBoundary) next(e int, connectivity Connectivity) int {
	edge := b.edges[e]
	candidates := b.outgoing[edge.to]
	switch len(candidates) {
	case 1:
		return candidates[0]
	case 2:
		for _, c := range candidates {
			sameOwner := b.edges[c].owner == edge.owner
			if sameOwner == (connectivity == Connectivity4) {
				return c
			}
		}
	}
	fatalf("label %d has %d edges leaving vertex %d", b.label, len(candidates), edge.to)
	return -1
}

// Corners of a loop of edges: the start of every edge that turns relative to
// the edge before it.
func (b *labelBoundary) polygon(loop []int, width int) Polygon {
	var poly Polygon
	for i, e := range loop {
		prev := loop[CircularIndex(i-1, len(loop))]
		if b.edges[prev].dir == b.edges[e].dir {
			continue
		}
		v := b.edges[e].from
		poly.Points = append(poly.Points, &Point{
			X: float64(v % (width + 1)),
			Y: float64(v / (width + 1)),
		})
	}
	return poly
}

func (c Contour) Outers() PolygonList {
	var list PolygonList
	for _, ring := range c.Rings {
		if !ring.IsHole() {
			list = append(list, ring)
		}
	}
	return list
}

func (c Contour) Holes() PolygonList {
	var list PolygonList
	for _, ring := range c.Rings {
		if ring.IsHole() {
			list = append(list, ring)
		}
	}
	return list
}

// Whether p is inside the contour, holes excluded. Pixel centers inside are
// exactly the pixels carrying the contour's label.
func (c Contour) Contains(p *Point) bool {
	return PolygonList(c.Rings).ContainsPointByEvenOdd(p)
}

// Net enclosed area: outer rings minus holes. Before simplification this is
// exactly the label's pixel count.
func (c Contour) Area() float64 {
	var area float64
	for _, ring := range c.Rings {
		area += ring.SignedArea()
	}
	return area
}

func (c Contour) String() string {
	return fmt.Sprintf("Contour %s { outer: %d, holes: %d, points: %d }",
		aurora.Cyan(fmt.Sprint(c.Label)),
		len(c.Outers()),
		len(c.Holes()),
		PolygonList(c.Rings).PointCount(),
	)
}
