package color_test

import (
	"fmt"

	"github.com/katalvlaran/vcolor/color"
	"github.com/katalvlaran/vcolor/graph"
)

func ExampleColorNaive() {
	g := graph.NewAdjacencyList(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)

	c := color.ColorNaive(g)
	fmt.Println(c)
	// Output: [0 1 2]
}

func ExampleColorDSATUR() {
	g := graph.NewAdjacencyList(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 0)

	c := color.ColorDSATUR(g)
	fmt.Println(len(c))
	// Output: 5
}
