package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vcolor/color"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/graph"
)

func TestColorByDegree_Star5(t *testing.T) {
	g := star5()
	c := color.ColorByDegree(g)
	// vertex 0 has max degree and is first in id order among max-degree
	// vertices, so it is colored first and receives color 0.
	assert.EqualValues(t, 0, c[0])
	for _, leaf := range c[1:] {
		assert.EqualValues(t, 1, leaf)
	}
}

func TestColorByDegree_MaxDegreeVertexColoredZero(t *testing.T) {
	for _, f := range fixtures {
		n := f.g.NumVertices()
		if n == 0 {
			continue
		}
		c := color.ColorByDegree(f.g)
		maxDeg := -1
		firstMax := -1
		for v := 0; v < n; v++ {
			d := graph.Degree(f.g, v)
			if d > maxDeg {
				maxDeg = d
				firstMax = v
			}
		}
		assert.EqualValues(t, 0, c[firstMax], "fixture %s: first max-degree vertex should get color 0", f.name)
	}
}

func TestColorByDegree_K4IsPermutation(t *testing.T) {
	c := color.ColorByDegree(completeK4())
	assertIsPermutationOf4(t, c)
}

func assertIsPermutationOf4(t *testing.T, c coloring.Coloring) {
	t.Helper()
	seen := make(map[uint32]bool)
	for _, v := range c {
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	for i := uint32(0); i < 4; i++ {
		assert.True(t, seen[i], "missing color %d", i)
	}
}
