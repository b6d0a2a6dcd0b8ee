package coloring

import "github.com/katalvlaran/vcolor/graph"

// ValidateColoring checks that c is a complete, proper coloring of g: every
// vertex has a color, and no edge has both endpoints the same color.
//
// This is a post-condition assertion, not a recoverable error path (see
// package doc): it panics with *UncoloredVertexError or
// *MonochromaticEdgeError on the first violation found, and returns
// normally otherwise.
func ValidateColoring(g graph.Graph, c Coloring) {
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		cv := c[v]
		if cv == Uncolored {
			panic(&UncoloredVertexError{Vertex: v})
		}
		for _, u := range g.Neighbors(v) {
			if c[u] == cv {
				panic(&MonochromaticEdgeError{U: v, V: u, Color: cv})
			}
		}
	}
}
