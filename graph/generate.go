package graph

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidParameters indicates a generator received a parameter outside
// its documented domain (too few vertices, degree out of range, probability
// outside [0,1]).
var ErrInvalidParameters = errors.New("graph: invalid generator parameters")

// ErrConstructFailed indicates a stochastic generator exhausted its bounded
// retry budget without reaching a valid realization.
var ErrConstructFailed = errors.New("graph: construction failed")

// GenOption customizes a stochastic generator's randomness source.
type GenOption func(*genConfig)

type genConfig struct {
	rng *rand.Rand
}

func newGenConfig(opts ...GenOption) genConfig {
	cfg := genConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}
	return cfg
}

// WithRand supplies an explicit RNG for stochastic generators.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("graph: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand from seed for stochastic generators.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Cycle builds the n-vertex simple cycle C_n: edges i -- (i+1)%n for every i.
func Cycle(n int) (*AdjacencyList, error) {
	const minCycleVertices = 3
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleVertices, ErrInvalidParameters)
	}
	g := NewAdjacencyList(n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}
	return g, nil
}

// Wheel builds the wheel graph W_n: a hub vertex (n-1) connected to every
// rim vertex 0..n-2, with the rim forming a cycle C_(n-1).
func Wheel(n int) (*AdjacencyList, error) {
	const minWheelVertices = 4
	if n < minWheelVertices {
		return nil, fmt.Errorf("Wheel: n=%d < %d: %w", n, minWheelVertices, ErrInvalidParameters)
	}
	rim := n - 1
	g := NewAdjacencyList(n)
	hub := n - 1
	for i := 0; i < rim; i++ {
		g.AddEdge(i, (i+1)%rim)
		g.AddEdge(i, hub)
	}
	return g, nil
}

// Complete builds the complete graph K_n.
func Complete(n int) (*AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d < 1: %w", n, ErrInvalidParameters)
	}
	g := NewAdjacencyList(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	return g, nil
}

// RandomSparse builds an Erdos-Renyi-like graph on n vertices, including
// each unordered pair {i,j}, i<j, independently with probability p.
// Edge-trial order is i ascending, then j ascending, so the result is
// deterministic for a fixed RNG stream.
func RandomSparse(n int, p float64, opts ...GenOption) (*AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrInvalidParameters)
	}
	if p < 0.0 || p > 1.0 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidParameters)
	}
	cfg := newGenConfig(opts...)
	g := NewAdjacencyList(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				g.AddEdge(i, j)
			}
		}
	}
	return g, nil
}

// RandomRegular builds an undirected d-regular simple graph on n vertices
// via stub-matching: a random pairing of n*d half-edges, retried (with a
// fresh shuffle) whenever it would create a self-loop or a parallel edge,
// up to a small bounded number of attempts.
func RandomRegular(n, d int, opts ...GenOption) (*AdjacencyList, error) {
	const maxAttempts = 8
	if n < 1 || d < 0 || d >= n {
		return nil, fmt.Errorf("RandomRegular: n=%d, d=%d out of domain: %w", n, d, ErrInvalidParameters)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("RandomRegular: n*d=%d is odd: %w", n*d, ErrInvalidParameters)
	}
	cfg := newGenConfig(opts...)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if g, ok := tryRandomRegular(n, d, cfg.rng); ok {
			return g, nil
		}
	}
	return nil, fmt.Errorf("RandomRegular: n=%d d=%d: %w", n, d, ErrConstructFailed)
}

// tryRandomRegular attempts one stub-matching realization; ok is false if
// the random pairing produced a self-loop or a repeated edge.
func tryRandomRegular(n, d int, rng *rand.Rand) (*AdjacencyList, bool) {
	stubs := make([]int, 0, n*d)
	for v := 0; v < n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}
	rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	seen := make(map[[2]int]bool, len(stubs)/2)
	g := NewAdjacencyList(n)
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, false
		}
		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if seen[key] {
			return nil, false
		}
		seen[key] = true
		g.AddEdge(u, v)
	}
	return g, true
}
