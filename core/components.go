package core

import "sort"

// collectComponent appends every vertex reachable from root to a fresh
// component slice, marking them in seen. Traversal follows outgoing
// adjacency only, so on a directed graph this is the forward-reachable set.
func (g *Graph) collectComponent(root int, seen []bool) []int {
	seen[root] = true
	comp := []int{root}
	for qi := 0; qi < len(comp); qi++ {
		for _, w := range g.edges[comp[qi]] {
			if !seen[w] {
				seen[w] = true
				comp = append(comp, w)
			}
		}
	}

	return comp
}

// ComponentVertices returns every vertex reachable from v, v included, in
// BFS discovery order. Returns ErrVertexRange for an invalid index.
// Complexity: O(V + E).
func (g *Graph) ComponentVertices(v int) ([]int, error) {
	if !g.valid(v) {
		return nil, ErrVertexRange
	}

	return g.collectComponent(v, make([]bool, len(g.edges))), nil
}

// LargestComponentVertices returns the vertices of the largest connected
// component, nil for an empty graph. The scan short-circuits as soon as the
// best component found is at least as large as the number of vertices not
// yet assigned to any component, since no strictly larger component can
// remain among them.
// Complexity: O(V + E), often less due to the short-circuit.
func (g *Graph) LargestComponentVertices() []int {
	seen := make([]bool, len(g.edges))
	remaining := len(g.edges)
	var best []int
	for root := range g.edges {
		if seen[root] {
			continue
		}
		comp := g.collectComponent(root, seen)
		remaining -= len(comp)
		if len(comp) > len(best) {
			best = comp
		}
		if len(best) >= remaining {
			break
		}
	}

	return best
}

// ComponentsVertices returns all connected components, sorted by descending
// size. Equal-size components keep their discovery order (ascending smallest
// root), making the result deterministic.
// Complexity: O(V + E + C log C) for C components.
func (g *Graph) ComponentsVertices() [][]int {
	seen := make([]bool, len(g.edges))
	var comps [][]int
	for root := range g.edges {
		if !seen[root] {
			comps = append(comps, g.collectComponent(root, seen))
		}
	}
	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })

	return comps
}

// Component returns the induced subgraph of the component containing v,
// along with the old→new index map.
func (g *Graph) Component(v int) (*Graph, map[int]int, error) {
	vs, err := g.ComponentVertices(v)
	if err != nil {
		return nil, nil, err
	}

	return g.Subgraph(vs)
}

// LargestComponent returns the induced subgraph of the largest component,
// along with the old→new index map. For an empty graph the result is an
// empty graph and an empty map.
func (g *Graph) LargestComponent() (*Graph, map[int]int, error) {
	return g.Subgraph(g.LargestComponentVertices())
}

// Components returns the induced subgraph of every component, largest first,
// with the matching old→new index maps.
func (g *Graph) Components() ([]*Graph, []map[int]int, error) {
	comps := g.ComponentsVertices()
	graphs := make([]*Graph, 0, len(comps))
	remaps := make([]map[int]int, 0, len(comps))
	for _, vs := range comps {
		sub, remap, err := g.Subgraph(vs)
		if err != nil {
			return nil, nil, err
		}
		graphs = append(graphs, sub)
		remaps = append(remaps, remap)
	}

	return graphs, remaps, nil
}
