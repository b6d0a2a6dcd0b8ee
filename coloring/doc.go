// Package coloring defines the Coloring vector produced by every heuristic
// in package color, and the two pure functions that operate on it:
// CountColors and ValidateColoring.
//
// A Coloring is a dense slice of nonnegative integers indexed by vertex id.
// During construction an entry may hold the sentinel Uncolored; on return
// from any of package color's algorithms every entry holds a valid color in
// [0, k) for some k <= Δ+1, where Δ is the graph's max degree.
//
// ValidateColoring is a post-condition check, not a recoverable runtime
// error path: an uncolored vertex or a monochromatic edge can only result
// from a bug in the caller or in a coloring algorithm, so it panics rather
// than returning an error (see UncoloredVertexError, MonochromaticEdgeError).
package coloring
