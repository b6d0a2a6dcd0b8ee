package color_test

import "github.com/katalvlaran/vcolor/graph"

// buildFromEdges returns a graph.AdjacencyList with exactly n vertices and
// the given edges.
func buildFromEdges(n int, edges [][2]int) *graph.AdjacencyList {
	g := graph.NewAdjacencyList(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func triangle() *graph.AdjacencyList {
	return buildFromEdges(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
}

func path4() *graph.AdjacencyList {
	return buildFromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
}

func star5() *graph.AdjacencyList {
	return buildFromEdges(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
}

func cycle5() *graph.AdjacencyList {
	return buildFromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
}

func completeK4() *graph.AdjacencyList {
	return buildFromEdges(4, [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	})
}

func twoTriangles() *graph.AdjacencyList {
	return buildFromEdges(6, [][2]int{
		{0, 1}, {0, 2}, {1, 2},
		{3, 4}, {3, 5}, {4, 5},
	})
}

func emptyGraph() *graph.AdjacencyList {
	return graph.NewAdjacencyList(0)
}

func isolatedVertices(n int) *graph.AdjacencyList {
	return graph.NewAdjacencyList(n)
}
