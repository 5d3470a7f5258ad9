package internal

import "container/heap"

// Min-queue of ring nodes keyed by removal cost. Rather than supporting removal
// of arbitrary entries, it tolerates stale ones: when a node's cost changes, a
// fresh entry is pushed and the old one is recognized and skipped on pop
// because its generation no longer matches the node's. Every node gets at most
// one entry per cost change, so the heap stays O(n) over a whole run.
//
// Equal costs pop in push order. Seeding pushes in ring order, so among equal
// initial costs the earliest input point goes first.
type CostQueue struct {
	ring    *Ring
	entries costHeap
	seq     int
	live    int
}

type costEntry struct {
	node       int
	cost       float64
	generation int
	seq        int
}

func NewCostQueue(ring *Ring) *CostQueue {
	q := &CostQueue{
		ring:    ring,
		entries: make(costHeap, 0, len(ring.Nodes)),
	}
	for i := range ring.Nodes {
		if ring.Nodes[i].Removed {
			continue
		}
		q.entries = append(q.entries, q.entryFor(i))
		q.live++
	}
	heap.Init(&q.entries)
	return q
}

// Number of nodes with a current entry. Stale entries don't count.
func (q *CostQueue) Len() int {
	return q.live
}

// Re-key a node that is already queued after its cost was recomputed.
func (q *CostQueue) Update(i int) {
	heap.Push(&q.entries, q.entryFor(i))
}

// Pop the live node with the lowest cost. Returns false once no current
// entries remain.
func (q *CostQueue) PopMin() (int, bool) {
	for q.entries.Len() > 0 {
		entry := heap.Pop(&q.entries).(costEntry)
		if q.isStale(entry) {
			continue
		}
		q.live--
		return entry.node, true
	}
	return -1, false
}

func (q *CostQueue) isStale(entry costEntry) bool {
	node := &q.ring.Nodes[entry.node]
	return node.Removed || node.Generation != entry.generation
}

func (q *CostQueue) entryFor(i int) costEntry {
	node := &q.ring.Nodes[i]
	q.seq++
	return costEntry{
		node:       i,
		cost:       node.Cost,
		generation: node.Generation,
		seq:        q.seq,
	}
}

type costHeap []costEntry

func (h costHeap) Len() int { return len(h) }
func (h costHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h costHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(costEntry)) }

func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
