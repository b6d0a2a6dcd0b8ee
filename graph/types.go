package graph

// CSR is an immutable, compressed-sparse-row Graph: two flat arrays instead
// of one slice-of-slices per vertex. Built once from any Graph in O(n+m)
// time; read-only for the rest of its life. The contiguous edge array gives
// better locality than AdjacencyList for algorithms that rescan neighbors
// repeatedly, such as DSATUR and RLF, at the cost of never being able to
// add an edge afterward.
type CSR struct {
	// offsets[v] is the exclusive end index of vertex v's neighbors within
	// flat. The start index is 0 for v == 0, else offsets[v-1].
	offsets []int
	flat    []int
}

// NewCSR copies g into a CSR representation. g is read via NumVertices and
// Neighbors only; it is never mutated.
func NewCSR(g Graph) *CSR {
	n := g.NumVertices()
	c := &CSR{
		offsets: make([]int, n),
		flat:    make([]int, 0, n),
	}
	running := 0
	for v := 0; v < n; v++ {
		c.flat = append(c.flat, g.Neighbors(v)...)
		running += len(g.Neighbors(v))
		c.offsets[v] = running
	}
	return c
}

// NumVertices implements Graph.
func (c *CSR) NumVertices() int { return len(c.offsets) }

// Neighbors implements Graph.
func (c *CSR) Neighbors(v int) []int {
	checkVertex("Neighbors", v, len(c.offsets))
	start := 0
	if v > 0 {
		start = c.offsets[v-1]
	}
	return c.flat[start:c.offsets[v]]
}
