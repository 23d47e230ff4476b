package core

// bfsDepths runs a plain BFS from root and returns the depth of every
// reached vertex (-1 for unreached), the number of reached vertices, and the
// last vertex discovered at maximum depth.
func (g *Graph) bfsDepths(root int) (depths []int, reached, farthest int) {
	depths = make([]int, len(g.edges))
	for i := range depths {
		depths[i] = -1
	}
	depths[root] = 0
	queue := []int{root}
	farthest = root
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, w := range g.edges[u] {
			if depths[w] < 0 {
				depths[w] = depths[u] + 1
				if depths[w] >= depths[farthest] {
					farthest = w
				}
				queue = append(queue, w)
			}
		}
	}

	return depths, len(queue), farthest
}

// Diameter estimates the graph diameter with two BFS sweeps: the first, from
// vertex 0, finds a farthest vertex F; the second returns F's eccentricity.
// The estimate is exact for trees and a lower bound in general.
//
// Sentinels: DiameterUnsupported for directed graphs, DiameterUndefined for
// an empty graph, DiameterInfinite for a disconnected undirected graph.
// Complexity: O(V + E).
func (g *Graph) Diameter() int {
	if g.directed {
		return DiameterUnsupported
	}
	if len(g.edges) == 0 {
		return DiameterUndefined
	}
	_, reached, farthest := g.bfsDepths(0)
	if reached < len(g.edges) {
		return DiameterInfinite
	}
	depths, _, peak := g.bfsDepths(farthest)

	return depths[peak]
}
