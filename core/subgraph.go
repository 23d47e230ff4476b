package core

// Subgraph builds the induced subgraph containing exactly the given vertices.
// New indices are assigned consecutively from 0 in the enumeration order of
// the input (duplicates ignored). Only edges with both endpoints in the input
// are copied, remapped to the new index space. Labels of included vertices
// carry over. The returned map translates old indices to new ones and has
// only the input vertices as keys.
// Returns ErrVertexRange if any input index is invalid.
// Complexity: O(|vertices| · max degree).
func (g *Graph) Subgraph(vertices []int) (*Graph, map[int]int, error) {
	remap := make(map[int]int, len(vertices))
	order := make([]int, 0, len(vertices))
	for _, v := range vertices {
		if !g.valid(v) {
			return nil, nil, ErrVertexRange
		}
		if _, seen := remap[v]; seen {
			continue
		}
		remap[v] = len(order)
		order = append(order, v)
	}

	sub, err := New(len(order), g.options()...)
	if err != nil {
		return nil, nil, err
	}
	for _, u := range order {
		nu := remap[u]
		if name, ok := g.labels[u]; ok {
			sub.labels[nu] = name
		}
		for _, w := range g.edges[u] {
			if nw, ok := remap[w]; ok {
				if _, err = sub.AddEdge(nu, nw); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return sub, remap, nil
}
