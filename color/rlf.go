package color

import (
	"math"

	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/graph"
)

// ColorRLF implements Recursive Largest First: it colors one color class at
// a time, growing each class into a maximal independent set before moving
// to the next color.
//
// Within one outer iteration c, every vertex still in the uncolored pool
// gets fresh degreeNext/degreeOther counters: degreeNext counts neighbors
// already barred from this class (because a selected vertex forced them
// out), degreeOther counts neighbors still eligible. The seed maximizing
// degreeOther (ties to the smaller id) starts the class; each subsequent
// pick maximizes degreeNext, then minimizes degreeOther, then the id,
// among vertices not yet barred from this class.
//
// Two transient sentinel values, locally called noColor and nextColor,
// rotate roles every outer iteration: vertices barred from class c become
// exactly the uncolored pool for class c+1, with no separate sweep needed.
//
// Complexity: O(n * (n+m)) worst case.
func ColorRLF(g graph.Graph) coloring.Coloring {
	n := g.NumVertices()
	c := make(coloring.Coloring, n)
	if n == 0 {
		return c
	}

	noColor := uint32(math.MaxUint32)
	nextColor := uint32(math.MaxUint32 - 1)
	for i := range c {
		c[i] = noColor
	}

	degreeNext := make([]int, n)
	degreeOther := make([]int, n)

	for class := uint32(0); ; class++ {
		for v := 0; v < n; v++ {
			if c[v] != noColor {
				continue
			}
			degreeNext[v] = 0
			other := 0
			for _, u := range g.Neighbors(v) {
				if c[u] == noColor {
					other++
				}
			}
			degreeOther[v] = other
		}

		seed := rlfSeed(c, noColor, degreeOther)
		if seed < 0 {
			break
		}

		for current := seed; current >= 0; {
			c[current] = class
			for _, u := range g.Neighbors(current) {
				if c[u] != noColor {
					continue
				}
				c[u] = nextColor
				for _, w := range g.Neighbors(u) {
					if c[w] != noColor {
						continue
					}
					degreeNext[w]++
					degreeOther[w]--
				}
			}
			current = rlfNextCandidate(c, noColor, degreeNext, degreeOther)
		}

		noColor, nextColor = nextColor, noColor
	}
	return c
}

// rlfSeed picks the uncolored vertex maximizing (degreeOther, -id), i.e.
// preferring the vertex with the most still-eligible neighbors, breaking
// ties toward the smaller id. Returns -1 if no uncolored vertex remains.
func rlfSeed(c coloring.Coloring, noColor uint32, degreeOther []int) int {
	best := -1
	for v := range c {
		if c[v] != noColor {
			continue
		}
		if best == -1 || degreeOther[v] > degreeOther[best] {
			best = v
		}
	}
	return best
}

// rlfNextCandidate picks the uncolored vertex maximizing degreeNext, then
// minimizing degreeOther, then minimizing id. Returns -1 if no candidate
// remains.
func rlfNextCandidate(c coloring.Coloring, noColor uint32, degreeNext, degreeOther []int) int {
	best := -1
	for v := range c {
		if c[v] != noColor {
			continue
		}
		if best == -1 {
			best = v
			continue
		}
		switch {
		case degreeNext[v] != degreeNext[best]:
			if degreeNext[v] > degreeNext[best] {
				best = v
			}
		case degreeOther[v] != degreeOther[best]:
			if degreeOther[v] < degreeOther[best] {
				best = v
			}
		}
		// equal on both keys: keep best, the smaller id (we scan ascending).
	}
	return best
}
