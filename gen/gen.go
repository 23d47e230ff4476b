package gen

import (
	"errors"
	"math/rand"

	"github.com/grafik-go/grafik/attrgraph"
	"github.com/grafik-go/grafik/core"
)

// Sentinel errors for generator parameters.
var (
	// ErrTooFewVertices is returned when a topology needs more vertices
	// than requested (a cycle needs at least 3).
	ErrTooFewVertices = errors.New("gen: too few vertices for topology")

	// ErrInvalidProbability is returned when an edge probability is
	// outside [0, 1].
	ErrInvalidProbability = errors.New("gen: edge probability outside [0,1]")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("gen: graph is nil")
)

// Path returns the path graph 0-1-...-(n-1).
func Path(n int) (*core.Graph, error) {
	g, err := core.New(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v+1 < n; v++ {
		if _, err = g.AddEdge(v, v+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle returns the cycle graph over n >= 3 vertices.
func Cycle(n int) (*core.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	g, err := Path(n)
	if err != nil {
		return nil, err
	}
	if _, err = g.AddEdge(n-1, 0); err != nil {
		return nil, err
	}

	return g, nil
}

// Star returns the star graph with center 0 and n-1 leaves.
func Star(n int) (*core.Graph, error) {
	g, err := core.New(n)
	if err != nil {
		return nil, err
	}
	for leaf := 1; leaf < n; leaf++ {
		if _, err = g.AddEdge(0, leaf); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Clique returns the complete graph over n vertices.
func Clique(n int) (*core.Graph, error) {
	g, err := core.New(n)
	if err != nil {
		return nil, err
	}
	if err = addClique(g, 0, n); err != nil {
		return nil, err
	}

	return g, nil
}

// DisjointCliques returns count disconnected cliques of the given size,
// clique k covering vertices [k*size, (k+1)*size).
func DisjointCliques(count, size int) (*core.Graph, error) {
	if count < 0 || size < 0 {
		return nil, core.ErrVertexCount
	}
	g, err := core.New(count * size)
	if err != nil {
		return nil, err
	}
	for k := 0; k < count; k++ {
		if err = addClique(g, k*size, size); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// addClique connects all pairs of the size vertices starting at base.
func addClique(g *core.Graph, base, size int) error {
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			if _, err := g.AddEdge(base+i, base+j); err != nil {
				return err
			}
		}
	}

	return nil
}

// RandomSparse returns a graph over n vertices where each of the n·(n-1)/2
// possible edges is present independently with probability p. The same seed
// always yields the same graph.
func RandomSparse(n int, p float64, seed int64) (*core.Graph, error) {
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	g, err := core.New(n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				if _, err = g.AddEdge(u, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// UnitWeights returns an attributed copy of g with weight 1.0 stamped on
// every edge, ready for community detection. The input graph is not
// modified.
func UnitWeights(g *core.Graph) (*attrgraph.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := attrgraph.FromGraph(g.Clone())
	for u := 0; u < out.VertexCount(); u++ {
		for _, v := range out.Neighbors(u) {
			if !out.Directed() && v < u {
				continue
			}
			if _, err := out.SetEdgeAttr(u, v, attrgraph.KeyWeight, attrgraph.Float(1)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
