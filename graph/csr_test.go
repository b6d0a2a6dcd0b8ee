package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vcolor/graph"
)

func triangle() *graph.AdjacencyList {
	g := graph.NewAdjacencyList(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	return g
}

func TestCSR_MatchesAdjacencyList(t *testing.T) {
	g := triangle()
	csr := graph.NewCSR(g)

	assert.Equal(t, g.NumVertices(), csr.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		assert.ElementsMatch(t, g.Neighbors(v), csr.Neighbors(v), "vertex %d", v)
	}
}

func TestCSR_Empty(t *testing.T) {
	csr := graph.NewCSR(graph.NewAdjacencyList(0))
	assert.Equal(t, 0, csr.NumVertices())
	assert.Equal(t, 0, graph.MaxDegree(csr))
}

func TestCSR_OutOfRangePanics(t *testing.T) {
	csr := graph.NewCSR(triangle())
	assert.Panics(t, func() { csr.Neighbors(3) })
}

// TestCSR_RoundTrip builds a CSR from an AdjacencyList and an AdjacencyList
// back from that CSR, and checks that every vertex's neighbor set
// (order-insensitive) survives both conversions.
func TestCSR_RoundTrip(t *testing.T) {
	g := graph.NewAdjacencyList(5)
	g.AddEdge(0, 1)
	g.AddEdge(0, 4)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	csr := graph.NewCSR(g)
	back := graph.NewAdjacencyList(csr.NumVertices())
	for v := 0; v < csr.NumVertices(); v++ {
		for _, u := range csr.Neighbors(v) {
			if v < u {
				back.AddEdge(v, u)
			}
		}
	}
	for v := 0; v < g.NumVertices(); v++ {
		assert.ElementsMatch(t, g.Neighbors(v), csr.Neighbors(v))
		assert.ElementsMatch(t, g.Neighbors(v), back.Neighbors(v))
	}
}
