package core

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int { return len(g.edges) }

// EdgeCount returns the number of edges. Mirrored undirected entries and
// self-loops each count once. O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// valid reports whether v is a usable vertex index.
func (g *Graph) valid(v int) bool { return v >= 0 && v < len(g.edges) }

// AddVertex appends one isolated vertex and returns its index. O(1) amortized.
func (g *Graph) AddVertex() int {
	g.edges = append(g.edges, nil)

	return len(g.edges) - 1
}

// RemoveVertex deletes vertex v, all its incident edges, and renumbers every
// index greater than v down by one so the index space stays dense.
// Returns ErrVertexRange for an invalid index.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(v int) error {
	if !g.valid(v) {
		return ErrVertexRange
	}
	// Edges stored in v's own row disappear with the row: for undirected
	// graphs that is every incident edge, for directed ones the out-edges
	// and any self-loop.
	removed := len(g.edges[v])
	g.edges = append(g.edges[:v], g.edges[v+1:]...)

	for u := range g.edges {
		row := g.edges[u]
		w := 0
		for _, n := range row {
			if n == v {
				if g.directed {
					removed++ // directed in-edge, not counted above
				}
				continue
			}
			if n > v {
				n--
			}
			row[w] = n
			w++
		}
		g.edges[u] = row[:w]
	}
	g.edgeCount -= removed

	// Shift the sparse label map alongside the index space.
	delete(g.labels, v)
	shifted := make(map[int]string, len(g.labels))
	for idx, name := range g.labels {
		if idx > v {
			idx--
		}
		shifted[idx] = name
	}
	g.labels = shifted

	return nil
}

// AddEdge inserts the edge (from, to). For undirected graphs with from != to
// both mirrored adjacency entries are created; a self-loop is stored once.
// Returns (false, nil) without mutation if the edge already exists, and
// ErrVertexRange for invalid endpoints. O(min(deg(from), deg(to))).
func (g *Graph) AddEdge(from, to int) (bool, error) {
	if !g.valid(from) || !g.valid(to) {
		return false, ErrVertexRange
	}
	if g.Adjacent(from, to) {
		return false, nil
	}
	g.edges[from] = append(g.edges[from], to)
	if !g.directed && from != to {
		g.edges[to] = append(g.edges[to], from)
	}
	g.edgeCount++

	return true, nil
}

// RemoveEdge deletes the edge (from, to) and, for undirected graphs, its
// mirror. Returns (false, nil) if the edge does not exist. If the adjacency
// check reports the edge present but the removal scan cannot find it, the
// inconsistency is logged and ErrAdjacencyDesync returned with the graph
// untouched. O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(from, to int) (bool, error) {
	if !g.valid(from) || !g.valid(to) {
		return false, ErrVertexRange
	}
	if !g.Adjacent(from, to) {
		return false, nil
	}
	i := indexOf(g.edges[from], to)
	j := -1
	if !g.directed && from != to {
		j = indexOf(g.edges[to], from)
	}
	if i < 0 || (!g.directed && from != to && j < 0) {
		g.log.WithFields(map[string]interface{}{
			"from": from,
			"to":   to,
		}).Error("core: edge present in adjacency check but missing from list")

		return false, ErrAdjacencyDesync
	}
	g.edges[from] = append(g.edges[from][:i], g.edges[from][i+1:]...)
	if j >= 0 {
		g.edges[to] = append(g.edges[to][:j], g.edges[to][j+1:]...)
	}
	g.edgeCount--

	return true, nil
}

// Adjacent reports whether the edge (u, v) exists. For undirected graphs the
// endpoint with the smaller adjacency list is scanned, bounding the cost by
// min(deg(u), deg(v)). Out-of-range indices are reported as not adjacent.
func (g *Graph) Adjacent(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	if g.directed {
		return indexOf(g.edges[u], v) >= 0
	}
	if len(g.edges[v]) < len(g.edges[u]) {
		u, v = v, u
	}

	return indexOf(g.edges[u], v) >= 0
}

// Degree returns the adjacency-list length of v (out-degree for directed
// graphs; self-loops count once). Out-of-range indices report 0. O(1).
func (g *Graph) Degree(v int) int {
	if !g.valid(v) {
		return 0
	}

	return len(g.edges[v])
}

// Neighbors returns v's adjacency list as a read-only view. The slice is
// shared with the graph and must not be mutated; it is invalidated by any
// structural change. Out-of-range indices yield nil. O(1).
func (g *Graph) Neighbors(v int) []int {
	if !g.valid(v) {
		return nil
	}

	return g.edges[v]
}

// MaxDegree returns the largest adjacency-list length, 0 for an empty graph.
// O(V).
func (g *Graph) MaxDegree() int {
	max := 0
	for _, row := range g.edges {
		if len(row) > max {
			max = len(row)
		}
	}

	return max
}

// AvgDegree returns the mean adjacency-list length, 0 for an empty graph.
// O(V).
func (g *Graph) AvgDegree() float64 {
	if len(g.edges) == 0 {
		return 0
	}
	sum := 0
	for _, row := range g.edges {
		sum += len(row)
	}

	return float64(sum) / float64(len(g.edges))
}

// Label returns the external name of v, if one was assigned.
func (g *Graph) Label(v int) (string, bool) {
	name, ok := g.labels[v]

	return name, ok
}

// SetLabel assigns an external name to v, used only for I/O round-trips.
// Returns ErrVertexRange for an invalid index.
func (g *Graph) SetLabel(v int, name string) error {
	if !g.valid(v) {
		return ErrVertexRange
	}
	g.labels[v] = name

	return nil
}

// Clone returns a deep copy of the graph. O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:  g.directed,
		edges:     make([][]int, len(g.edges)),
		edgeCount: g.edgeCount,
		labels:    make(map[int]string, len(g.labels)),
		log:       g.log,
	}
	for v, row := range g.edges {
		c.edges[v] = append([]int(nil), row...)
	}
	for v, name := range g.labels {
		c.labels[v] = name
	}

	return c
}

// indexOf returns the position of the first occurrence of x in row, or -1.
func indexOf(row []int, x int) int {
	for i, n := range row {
		if n == x {
			return i
		}
	}

	return -1
}
