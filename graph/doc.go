// Package graph defines the read-only neighbor-lookup contract shared by the
// coloring heuristics in package color, plus the two concrete storage
// representations that satisfy it.
//
// A Graph is a simple undirected graph over vertex ids [0, NumVertices()).
// The contract makes no promise about self-loops or parallel edges: callers
// building a Graph must not introduce either (see AdjacencyList.AddEdge);
// doing so silently inflates neighbor lists rather than failing, since the
// contract is advisory on this point, not enforced.
//
// Two implementations are provided:
//
//   - AdjacencyList: a mutable builder, appended to via AddEdge, then used
//     read-only for the remainder of its life.
//   - CSR: an immutable, cache-friendly copy of any Graph, built once in
//     O(n+m) time and read-only thereafter.
//
// Both satisfy Graph identically; coloring algorithms never know which one
// they were handed (see color.ColorNaive and friends), and per the
// representation-invariance property, coloring either yields the same result.
//
// generate.go adds a handful of synthetic AdjacencyList generators (Cycle,
// Wheel, Complete, RandomSparse, RandomRegular) for producing benchmark
// instances without a DIMACS file on disk.
package graph
