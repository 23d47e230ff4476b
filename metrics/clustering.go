package metrics

import (
	"fmt"
	"math"

	"github.com/grafik-go/grafik/core"
)

// ClusteringCoefficients returns the local clustering coefficient of every
// vertex, indexed by vertex.
//
// For a vertex v of degree d < 2 the coefficient is 0.0. Otherwise it is the
// number of adjacency entries among v's neighbors divided by d·(d-1). In an
// undirected graph each edge between two neighbors appears in both their
// adjacency lists, so the count matches the ordered-pair denominator without
// explicit doubling; in a directed graph each stored arc counts once.
//
// Complexity: O(V + Σ deg(v)²).
func ClusteringCoefficients(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	coeffs := make([]float64, n)
	scratch := make([]bool, n)

	for v := 0; v < n; v++ {
		nbrs := g.Neighbors(v)
		d := len(nbrs)
		if d < 2 {
			continue
		}

		for _, u := range nbrs {
			scratch[u] = true
		}
		links := 0
		for _, u := range nbrs {
			for _, w := range g.Neighbors(u) {
				if scratch[w] {
					links++
				}
			}
		}
		for _, u := range nbrs {
			scratch[u] = false
		}

		c := float64(links) / float64(d*(d-1))
		if math.IsNaN(c) {
			return nil, fmt.Errorf("%w: NaN coefficient at vertex %d", ErrInternal, v)
		}
		coeffs[v] = c
	}

	return coeffs, nil
}

// AverageClusteringCoefficient returns the mean of the local clustering
// coefficients over all vertices, or 0.0 for an empty graph.
func AverageClusteringCoefficient(g *core.Graph) (float64, error) {
	coeffs, err := ClusteringCoefficients(g)
	if err != nil {
		return 0, err
	}
	if len(coeffs) == 0 {
		return 0, nil
	}

	var sum float64
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}
