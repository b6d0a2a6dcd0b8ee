// Package vcolor is a library of heuristic algorithms for the graph vertex
// coloring problem: given an undirected simple graph, assign a nonnegative
// integer color to every vertex so that no two adjacent vertices share a
// color, using as few distinct colors as possible.
//
// Computing a minimum coloring is NP-hard. vcolor instead offers four
// polynomial-time heuristics of increasing sophistication and compute cost,
// organized under four subpackages:
//
//	graph/    — the read-only neighbor-lookup contract, the adjacency-list
//	            and CSR storage representations that satisfy it, and
//	            generators (Cycle, Wheel, Complete, RandomSparse,
//	            RandomRegular) for synthetic benchmark instances
//	coloring/ — the Coloring vector type, its sentinels, and
//	            CountColors/ValidateColoring
//	color/    — the four heuristics: ColorNaive, ColorByDegree, ColorDSATUR,
//	            ColorRLF, and the shared smallest-free-color kernel
//	dimacs/   — a parser for the DIMACS .col benchmark interchange format
//
// Quick example:
//
//	g := graph.NewAdjacencyList(3)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 0)
//	c := color.ColorDSATUR(g) // []uint32{0, 1, 2} (up to relabeling)
//	coloring.ValidateColoring(g, c)
//
// vcolor is single-threaded and synchronous: no algorithm here suspends,
// blocks, or performs I/O, and none of them mutate the graph they are given.
// Multiple coloring calls against the same Graph, writing to distinct
// Coloring vectors, may run on independent goroutines without any
// synchronization internal to this module.
//
//	go get github.com/katalvlaran/vcolor
package vcolor
