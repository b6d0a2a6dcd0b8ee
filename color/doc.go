// Package color implements four greedy heuristics for proper vertex
// coloring, of increasing sophistication and cost: ColorNaive, ColorByDegree,
// ColorDSATUR, and ColorRLF. All four are total, deterministic functions of
// a graph.Graph: given the same graph (as either a graph.AdjacencyList or a
// graph.CSR), each always returns the same coloring.Coloring, and none of
// them mutate the graph they are given.
//
// ColorNaive and ColorByDegree share one fixed-order greedy pass built on
// the "smallest free color" kernel (smallestFreeColor): each assigns every
// vertex, in turn, the lowest color no already-colored neighbor uses. They
// differ only in the order vertices are visited.
//
// ColorDSATUR instead recomputes, after every assignment, which uncolored
// vertex is most constrained (highest saturation, i.e. the most distinct
// colors already forced onto it by colored neighbors) and colors that one
// next. ColorRLF builds one color class at a time, growing each into a
// maximal independent set before moving to the next color.
//
// All four use at most Δ+1 colors, where Δ is the graph's max degree; none
// of them attempt to find a minimum coloring (that problem is NP-hard) or
// offer a proved approximation ratio beyond what the textbook heuristic
// guarantees.
package color
