package coloring

import (
	"fmt"
	"math"
)

// Coloring is a dense vector of colors, one per vertex, indexed by vertex
// id. Entries equal to Uncolored are not yet assigned a color.
type Coloring []uint32

// Uncolored is the sentinel value marking a vertex that has not yet been
// assigned a color. It is distinct from any valid color: valid colors are
// always small (at most Δ+1, where Δ is the graph's max degree), while
// Uncolored is the maximum value of the underlying unsigned type.
const Uncolored uint32 = math.MaxUint32

// UncoloredVertexError reports that ValidateColoring found a vertex with no
// assigned color.
type UncoloredVertexError struct {
	Vertex int
}

func (e *UncoloredVertexError) Error() string {
	return fmt.Sprintf("coloring: no color for vertex %d", e.Vertex)
}

// MonochromaticEdgeError reports that ValidateColoring found an edge whose
// endpoints share a color, violating the proper-coloring invariant.
type MonochromaticEdgeError struct {
	U, V  int
	Color uint32
}

func (e *MonochromaticEdgeError) Error() string {
	return fmt.Sprintf("coloring: vertex %d and neighbor %d both have color %d", e.U, e.V, e.Color)
}
