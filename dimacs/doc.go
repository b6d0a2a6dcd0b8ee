// Package dimacs reads graphs from the DIMACS second challenge "edge"
// format, the de facto exchange format for graph-coloring benchmark
// instances (the .col files published for DSJC, flat, le450, school, and
// similar families).
//
// # Format
//
// Each line's first token selects its kind:
//
//	c ...          comment, ignored
//	p edge N M     problem line: N vertices, M edges (M is advisory only)
//	e U V          an edge between 1-based vertices U and V
//
// Lines starting with n, x, d, or v are also accepted and ignored, per
// the format's optional coordinate/aux-data extensions, and so are blank
// lines. The p line must appear exactly once, before any e line. Vertex
// numbers in e lines are 1-based in the file and converted to 0-based in
// the returned graph.
// A self-loop edge (U == V) is accepted and silently dropped rather than
// added, matching how the reference instances encode isolated self-edges.
//
// # Errors
//
// On malformed input Parse returns a *ParseError carrying the 1-based line
// number and wrapping ErrMalformedLine or ErrDuplicateProblemLine (test with
// errors.Is). Input with no problem line at all yields ErrNoProblemLine
// itself, with no line number; a read failure from r is returned as is.
package dimacs
