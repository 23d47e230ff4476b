package core

// Contract folds vertices together according to mapping: original vertex i
// becomes vertex mapping[i] of the new graph, whose vertex count is
// max(mapping)+1. Every original edge (u, v) yields the contracted edge
// (mapping[u], mapping[v]); multiple originals collapsing to the same pair
// fold idempotently, and adjacent originals contracting to the same target
// produce a self-loop. Labels do not carry over (the contracted index space
// is new).
//
// Returns ErrEmptyContraction for an empty mapping, ErrContractionLength if
// len(mapping) != VertexCount(), and ErrContractionTarget for a negative
// entry.
// Complexity: O(V + E · max contracted degree).
func (g *Graph) Contract(mapping []int) (*Graph, error) {
	if len(mapping) == 0 {
		return nil, ErrEmptyContraction
	}
	if len(mapping) != len(g.edges) {
		return nil, ErrContractionLength
	}
	max := 0
	for _, t := range mapping {
		if t < 0 {
			return nil, ErrContractionTarget
		}
		if t > max {
			max = t
		}
	}

	c, err := New(max+1, g.options()...)
	if err != nil {
		return nil, err
	}
	for u, row := range g.edges {
		for _, w := range row {
			// AddEdge no-ops on duplicates, which also absorbs the
			// mirrored occurrence of each undirected edge.
			if _, err = c.AddEdge(mapping[u], mapping[w]); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}
