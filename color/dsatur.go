package color

import (
	"container/heap"

	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/graph"
)

// dsaturItem is a snapshot of one vertex's priority record at the moment it
// was pushed onto the heap: (saturation, degreeUncolored, vertex). Records
// are ordered lexicographically on the first two fields, descending, with
// ties broken in favor of the smaller vertex id. Because every update to a
// vertex's saturation or degreeUncolored pushes a new snapshot rather than
// mutating one in place, the heap can carry stale entries for a vertex
// already colored or already superseded by a fresher snapshot; the main
// loop of ColorDSATUR discards those after popping them.
type dsaturItem struct {
	vertex          int
	saturation      int
	degreeUncolored int
}

// higherPriority reports whether a should be colored before b.
func (a dsaturItem) higherPriority(b dsaturItem) bool {
	if a.saturation != b.saturation {
		return a.saturation > b.saturation
	}
	if a.degreeUncolored != b.degreeUncolored {
		return a.degreeUncolored > b.degreeUncolored
	}
	return a.vertex < b.vertex
}

// dsaturHeap is a container/heap max-heap (by higherPriority) of
// dsaturItem snapshots, used with lazy deletion: a popped item is only
// acted on if it still matches the vertex's authoritative current record.
type dsaturHeap []dsaturItem

func (h dsaturHeap) Len() int            { return len(h) }
func (h dsaturHeap) Less(i, j int) bool  { return h[i].higherPriority(h[j]) }
func (h dsaturHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *dsaturHeap) Push(x interface{}) { *h = append(*h, x.(dsaturItem)) }
func (h *dsaturHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ColorDSATUR colors the graph by repeatedly selecting, among still
// uncolored vertices, the one with the greatest (saturation,
// degreeUncolored, -id) priority record and assigning it the smallest free
// color. Saturation is tracked directly per vertex via neighborUsed, so the
// kernel need not rescan neighbors; degreeUncolored and saturation are
// updated incrementally as each neighbor is colored.
//
// On a graph with no edges, every vertex is isolated and DSATUR yields all
// zeros.
//
// Complexity: O((n+m) log n) with this lazy-deletion binary heap.
func ColorDSATUR(g graph.Graph) coloring.Coloring {
	n := g.NumVertices()
	c := make(coloring.Coloring, n)
	for i := range c {
		c[i] = coloring.Uncolored
	}
	if n == 0 {
		return c
	}

	neighborUsed := make([][]bool, n)
	saturation := make([]int, n)
	degreeUncolored := make([]int, n)
	colored := make([]bool, n)

	h := make(dsaturHeap, 0, n)
	for v := 0; v < n; v++ {
		degreeUncolored[v] = graph.Degree(g, v)
		h = append(h, dsaturItem{vertex: v, saturation: 0, degreeUncolored: degreeUncolored[v]})
	}
	heap.Init(&h)

	for h.Len() > 0 {
		item := heap.Pop(&h).(dsaturItem)
		v := item.vertex
		if colored[v] || item.saturation != saturation[v] || item.degreeUncolored != degreeUncolored[v] {
			continue // stale snapshot: superseded or already colored
		}

		cv := smallestFreeFromUsed(neighborUsed[v])
		c[v] = cv
		colored[v] = true

		for _, u := range g.Neighbors(v) {
			if colored[u] {
				continue
			}
			markUsed(&neighborUsed[u], cv, &saturation[u])
			degreeUncolored[u]--
			heap.Push(&h, dsaturItem{vertex: u, saturation: saturation[u], degreeUncolored: degreeUncolored[u]})
		}
	}
	return c
}

// smallestFreeFromUsed is the DSATUR specialization of the smallest-free-
// color kernel: it reads a vertex's already-materialized neighborUsed
// vector directly instead of rescanning neighbors.
func smallestFreeFromUsed(used []bool) uint32 {
	for c := 0; ; c++ {
		if c >= len(used) || !used[c] {
			return uint32(c)
		}
	}
}

// markUsed sets used[c] = true, growing the slice on demand, and bumps
// *saturation the first time c is newly recorded.
func markUsed(used *[]bool, c uint32, saturation *int) {
	ic := int(c)
	if ic >= len(*used) {
		grown := make([]bool, ic+1)
		copy(grown, *used)
		*used = grown
	}
	if !(*used)[ic] {
		(*used)[ic] = true
		*saturation++
	}
}
