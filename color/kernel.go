package color

import (
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/graph"
)

// scratch is a reusable boolean vector recording which colors are already
// used by a vertex's colored neighbors. Per the library's scratch-reuse
// discipline, one scratch is shared across every vertex colorByOrder visits
// rather than allocated fresh each time; reset clears only the indices the
// previous call actually touched, not the whole backing array.
type scratch struct {
	used    []bool
	touched []int
}

func (s *scratch) mark(c uint32) {
	ic := int(c)
	if ic >= len(s.used) {
		grown := make([]bool, ic+1)
		copy(grown, s.used)
		s.used = grown
	}
	if !s.used[ic] {
		s.used[ic] = true
		s.touched = append(s.touched, ic)
	}
}

// smallestFree returns the least c >= 0 with c >= len(s.used) or !s.used[c].
func (s *scratch) smallestFree() uint32 {
	for c := 0; ; c++ {
		if c >= len(s.used) || !s.used[c] {
			return uint32(c)
		}
	}
}

func (s *scratch) reset() {
	for _, c := range s.touched {
		s.used[c] = false
	}
	s.touched = s.touched[:0]
}

// smallestFreeColor is the shared "smallest free color" kernel: the lowest
// color not used by any already-colored neighbor of v under the partial
// coloring c. It is deterministic, total, and returns 0 for an isolated
// vertex. s is scratch space owned by the caller, reset before returning so
// it is ready for the next vertex.
func smallestFreeColor(g graph.Graph, v int, c coloring.Coloring, s *scratch) uint32 {
	for _, u := range g.Neighbors(v) {
		if nc := c[u]; nc != coloring.Uncolored {
			s.mark(nc)
		}
	}
	free := s.smallestFree()
	s.reset()
	return free
}
