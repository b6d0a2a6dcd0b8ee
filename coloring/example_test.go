package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/graph"
)

// ExampleCountColors shows the relationship between a coloring's highest
// color and the count of distinct colors it uses.
func ExampleCountColors() {
	fmt.Println(coloring.CountColors(coloring.Coloring{0, 1, 0, 2}))
	// Output:
	// 3
}

// ExampleValidateColoring validates a proper 2-coloring of a path graph.
func ExampleValidateColoring() {
	g := graph.NewAdjacencyList(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	c := coloring.Coloring{0, 1, 0, 1}
	coloring.ValidateColoring(g, c)
	fmt.Println("valid")
	// Output:
	// valid
}
