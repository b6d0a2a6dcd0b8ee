package color

import (
	"sort"

	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/graph"
)

// colorByOrder assigns every vertex in order the smallest free color, using
// one shared scratch vector across the whole pass. order must yield every
// vertex in [0, g.NumVertices()) exactly once; behavior is undefined
// otherwise (no defensive check is performed).
func colorByOrder(g graph.Graph, order []int) coloring.Coloring {
	n := g.NumVertices()
	c := make(coloring.Coloring, n)
	for i := range c {
		c[i] = coloring.Uncolored
	}

	var s scratch
	for _, v := range order {
		c[v] = smallestFreeColor(g, v, c, &s)
	}
	return c
}

// ColorNaive colors vertices in id order 0, 1, ..., n-1. Vertex 0 always
// receives color 0.
//
// Complexity: O(n + m) time (m = number of edges), O(Δ) scratch.
func ColorNaive(g graph.Graph) coloring.Coloring {
	n := g.NumVertices()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return colorByOrder(g, order)
}

// ColorByDegree colors vertices sorted by non-increasing degree, ties
// broken by ascending vertex id: some vertex of maximum degree (the first
// such in id order) always receives color 0.
//
// Complexity: O(n log n + m) time, O(n + Δ) scratch.
func ColorByDegree(g graph.Graph) coloring.Coloring {
	n := g.NumVertices()
	degree := make([]int, n)
	order := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = graph.Degree(g, v)
		order[v] = v
	}
	// Stable sort on the reverse-degree key: order already lists vertices
	// in ascending id, so equal-degree ties keep that relative order.
	sort.SliceStable(order, func(i, j int) bool {
		return degree[order[i]] > degree[order[j]]
	})
	return colorByOrder(g, order)
}
