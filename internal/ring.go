package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/simplify/internal/dbg"
	"github.com/pkg/errors"
)

// A closed polygon stored as a circular doubly linked list. The nodes live in
// a single slice and link to each other by index, so unlinking a node is two
// index writes and nothing is ever freed until the whole ring is dropped.
//
// Each node caches its removal cost: the area of the triangle it forms with
// its current neighbors. The ring never recomputes costs on its own. After an
// Unlink, the caller recomputes the two nodes that just became adjacent, since
// those are the only costs that went stale.
type Ring struct {
	Nodes []RingNode
	// Index of some live node, used as the starting point for walks.
	Head int
	live int
}

type RingNode struct {
	Point      *Point
	Prev, Next int
	Cost       float64
	Removed    bool
	// Bumped whenever Cost changes, so that queue entries pushed for an older
	// cost can be recognized as stale.
	Generation int
}

// Build a ring over the points, in order, and compute every node's initial
// cost. The last point links back to the first.
func NewRing(points []*Point) (*Ring, error) {
	n := len(points)
	if n < 3 {
		return nil, errors.Wrapf(ErrInvalidInput, "ring needs at least 3 points, got %d", n)
	}

	ring := &Ring{
		Nodes: make([]RingNode, n),
		live:  n,
	}
	for i, p := range points {
		ring.Nodes[i] = RingNode{
			Point: p,
			Prev:  CircularIndex(i-1, n),
			Next:  CircularIndex(i+1, n),
		}
	}
	for i := range ring.Nodes {
		ring.Recompute(i)
	}
	return ring, nil
}

func (r *Ring) Len() int {
	return r.live
}

func (r *Ring) Cost(i int) float64 {
	return r.Nodes[i].Cost
}

func (r *Ring) PrevPoint(i int) *Point {
	return r.Nodes[r.Nodes[i].Prev].Point
}

func (r *Ring) NextPoint(i int) *Point {
	return r.Nodes[r.Nodes[i].Next].Point
}

// Reassign the node's cost from its current neighbors.
func (r *Ring) Recompute(i int) {
	node := &r.Nodes[i]
	node.Cost = TriangleArea(r.Nodes[node.Prev].Point, node.Point, r.Nodes[node.Next].Point)
	node.Generation++
}

// Splice the node out by joining its neighbors to each other. Neighbor costs
// are left stale.
func (r *Ring) Unlink(i int) {
	node := &r.Nodes[i]
	if node.Removed {
		fatalf("ring node %d unlinked twice", i)
	}
	r.Nodes[node.Prev].Next = node.Next
	r.Nodes[node.Next].Prev = node.Prev
	node.Removed = true
	r.live--
	if r.Head == i {
		r.Head = node.Next
	}
}

// Visit each live node once, following Next links from start. Stops early if
// fn returns false.
func (r *Ring) Walk(start int, fn func(i int) bool) {
	i := start
	for count := 0; count < r.live; count++ {
		if !fn(i) {
			return
		}
		i = r.Nodes[i].Next
	}
}

// The live points in ring order, starting from the lowest surviving input
// index so that the output keeps the input's starting point when it can.
func (r *Ring) Points() []*Point {
	points := make([]*Point, 0, r.live)
	start := r.Head
	for i := range r.Nodes {
		if !r.Nodes[i].Removed {
			start = i
			break
		}
	}
	r.Walk(start, func(i int) bool {
		points = append(points, r.Nodes[i].Point)
		return true
	})
	return points
}

// True if following Next links exactly Len() times from Head returns to Head,
// and every Prev link mirrors a Next link along the way.
func (r *Ring) IsClosed() bool {
	i := r.Head
	for count := 0; count < r.live; count++ {
		node := r.Nodes[i]
		if node.Removed || r.Nodes[node.Next].Prev != i {
			return false
		}
		i = node.Next
	}
	return i == r.Head
}

func (n *RingNode) String() string {
	name := dbg.Name(n.Point)
	if n.Removed {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("RingNode %s (%g, %g) cost=%g gen=%d", name, n.Point.X, n.Point.Y, n.Cost, n.Generation)
}
