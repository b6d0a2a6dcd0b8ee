package graph

// AdjacencyList is a mutable Graph builder: n fixed at construction, then
// grown edge by edge via AddEdge. Once coloring begins, the graph is used
// read-only; nothing in this package stops a caller from calling AddEdge
// again mid-coloring, but doing so is a misuse the contract does not
// defend against (see package doc).
type AdjacencyList struct {
	n         int
	neighbors [][]int
}

// NewAdjacencyList returns an AdjacencyList with n vertices and no edges.
func NewAdjacencyList(n int) *AdjacencyList {
	return &AdjacencyList{
		n:         n,
		neighbors: make([][]int, n),
	}
}

// AddEdge appends v to neighbors(u) and u to neighbors(v). It does not
// deduplicate and does not reject u == v (a self-loop): the caller must not
// add either, per the simple-graph invariant. Duplicate edges inflate
// neighbor lists and degrees (DSATUR then decrements a vertex's uncolored-
// neighbor count once per copy; its saturation counts each color once);
// they are never silently collapsed.
func (g *AdjacencyList) AddEdge(u, v int) {
	checkVertex("AddEdge", u, g.n)
	checkVertex("AddEdge", v, g.n)
	g.neighbors[u] = append(g.neighbors[u], v)
	g.neighbors[v] = append(g.neighbors[v], u)
}

// NumVertices implements Graph.
func (g *AdjacencyList) NumVertices() int { return g.n }

// Neighbors implements Graph.
func (g *AdjacencyList) Neighbors(v int) []int {
	checkVertex("Neighbors", v, g.n)
	return g.neighbors[v]
}
