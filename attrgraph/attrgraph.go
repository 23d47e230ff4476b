package attrgraph

import (
	"errors"
	"sort"

	"github.com/grafik-go/grafik/core"
)

// ErrMirrorSlot indicates an undirected edge whose mirrored adjacency slot
// could not be located; the attribute tables are out of sync with the
// structure.
var ErrMirrorSlot = errors.New("attrgraph: mirrored adjacency slot not found")

// Graph is a core.Graph with per-vertex and per-edge-slot attribute maps.
// All read-only core methods are promoted unchanged; structural mutators are
// shadowed to keep the overlay aligned.
type Graph struct {
	*core.Graph

	// vertexAttrs[v] maps attribute name to value; nil until first write.
	vertexAttrs []map[string]Value

	// edgeAttrs[v][k] describes the edge from v to Neighbors(v)[k].
	edgeAttrs [][]map[string]Value
}

// New creates an attributed graph with vertexCount isolated vertices.
func New(vertexCount int, opts ...core.Option) (*Graph, error) {
	g, err := core.New(vertexCount, opts...)
	if err != nil {
		return nil, err
	}

	return FromGraph(g), nil
}

// FromGraph wraps an existing core.Graph with empty, structurally aligned
// attribute tables. The wrapped graph must not be mutated directly
// afterwards.
func FromGraph(g *core.Graph) *Graph {
	n := g.VertexCount()
	ag := &Graph{
		Graph:       g,
		vertexAttrs: make([]map[string]Value, n),
		edgeAttrs:   make([][]map[string]Value, n),
	}
	for v := 0; v < n; v++ {
		ag.edgeAttrs[v] = make([]map[string]Value, g.Degree(v))
	}

	return ag
}

// AddVertex appends one isolated vertex with empty attribute rows.
func (g *Graph) AddVertex() int {
	v := g.Graph.AddVertex()
	g.vertexAttrs = append(g.vertexAttrs, nil)
	g.edgeAttrs = append(g.edgeAttrs, nil)

	return v
}

// RemoveVertex deletes v and realigns both attribute tables with the
// renumbered index space: v's rows are dropped and the edge-attribute slot
// matching each removed adjacency occurrence is cut.
func (g *Graph) RemoveVertex(v int) error {
	n := g.VertexCount()
	if v < 0 || v >= n {
		return core.ErrVertexRange
	}

	// Record, per vertex, the slot that will disappear. The structural
	// removal drops the same first occurrence the scan finds here.
	type cut struct{ u, slot int }
	var cuts []cut
	for u := 0; u < n; u++ {
		if u == v {
			continue
		}
		if slot := slotOf(g.Graph.Neighbors(u), v); slot >= 0 {
			cuts = append(cuts, cut{u: u, slot: slot})
		}
	}

	if err := g.Graph.RemoveVertex(v); err != nil {
		return err
	}
	g.vertexAttrs = append(g.vertexAttrs[:v], g.vertexAttrs[v+1:]...)
	g.edgeAttrs = append(g.edgeAttrs[:v], g.edgeAttrs[v+1:]...)
	for _, c := range cuts {
		u := c.u
		if u > v {
			u--
		}
		row := g.edgeAttrs[u]
		g.edgeAttrs[u] = append(row[:c.slot], row[c.slot+1:]...)
	}

	return nil
}

// AddEdge inserts the edge (from, to) and appends one empty attribute slot
// per created adjacency entry (two for a mirrored undirected edge, one for
// a self-loop).
func (g *Graph) AddEdge(from, to int) (bool, error) {
	added, err := g.Graph.AddEdge(from, to)
	if err != nil || !added {
		return added, err
	}
	g.edgeAttrs[from] = append(g.edgeAttrs[from], nil)
	if !g.Directed() && from != to {
		g.edgeAttrs[to] = append(g.edgeAttrs[to], nil)
	}

	return true, nil
}

// RemoveEdge deletes the edge (from, to) and the attribute slot(s) at the
// removed adjacency position(s).
func (g *Graph) RemoveEdge(from, to int) (bool, error) {
	var i, j int = -1, -1
	if from >= 0 && from < g.VertexCount() {
		i = slotOf(g.Graph.Neighbors(from), to)
	}
	if !g.Directed() && from != to && to >= 0 && to < g.VertexCount() {
		j = slotOf(g.Graph.Neighbors(to), from)
	}

	removed, err := g.Graph.RemoveEdge(from, to)
	if err != nil || !removed {
		return removed, err
	}
	row := g.edgeAttrs[from]
	g.edgeAttrs[from] = append(row[:i], row[i+1:]...)
	if j >= 0 {
		row = g.edgeAttrs[to]
		g.edgeAttrs[to] = append(row[:j], row[j+1:]...)
	}

	return true, nil
}

// VertexAttr returns the named attribute of v.
func (g *Graph) VertexAttr(v int, name string) (Value, bool) {
	if v < 0 || v >= len(g.vertexAttrs) || g.vertexAttrs[v] == nil {
		return Value{}, false
	}
	val, ok := g.vertexAttrs[v][name]

	return val, ok
}

// VertexAttrNames returns the attribute names set on v, sorted.
func (g *Graph) VertexAttrNames(v int) []string {
	if v < 0 || v >= len(g.vertexAttrs) {
		return nil
	}

	return sortedKeys(g.vertexAttrs[v])
}

// SetVertexAttr sets the named attribute of v.
// Returns core.ErrVertexRange for an invalid index.
func (g *Graph) SetVertexAttr(v int, name string, val Value) error {
	if v < 0 || v >= len(g.vertexAttrs) {
		return core.ErrVertexRange
	}
	if g.vertexAttrs[v] == nil {
		g.vertexAttrs[v] = make(map[string]Value, 1)
	}
	g.vertexAttrs[v][name] = val

	return nil
}

// EdgeAttr returns the named attribute of the edge (from, to).
// Cost is O(deg(from)) for the slot lookup.
func (g *Graph) EdgeAttr(from, to int, name string) (Value, bool) {
	if from < 0 || from >= len(g.edgeAttrs) {
		return Value{}, false
	}
	slot := slotOf(g.Graph.Neighbors(from), to)
	if slot < 0 {
		return Value{}, false
	}

	return g.EdgeAttrAt(from, slot, name)
}

// EdgeAttrAt returns the named attribute of the edge at the given adjacency
// slot of from, i.e. the edge from→Neighbors(from)[slot]. O(1).
func (g *Graph) EdgeAttrAt(from, slot int, name string) (Value, bool) {
	if from < 0 || from >= len(g.edgeAttrs) || slot < 0 || slot >= len(g.edgeAttrs[from]) {
		return Value{}, false
	}
	m := g.edgeAttrs[from][slot]
	if m == nil {
		return Value{}, false
	}
	val, ok := m[name]

	return val, ok
}

// EdgeAttrNamesAt returns the attribute names set on the edge at the given
// adjacency slot of from, sorted.
func (g *Graph) EdgeAttrNamesAt(from, slot int) []string {
	if from < 0 || from >= len(g.edgeAttrs) || slot < 0 || slot >= len(g.edgeAttrs[from]) {
		return nil
	}

	return sortedKeys(g.edgeAttrs[from][slot])
}

// SetEdgeAttr sets the named attribute of the edge (from, to), updating the
// mirrored slot as well for undirected graphs so both endpoints agree.
// Returns (false, nil) if the edge does not exist and ErrMirrorSlot if the
// structure has the edge but the mirror slot cannot be located; in both
// cases nothing is written.
func (g *Graph) SetEdgeAttr(from, to int, name string, val Value) (bool, error) {
	if from < 0 || from >= len(g.edgeAttrs) {
		return false, nil
	}
	slot := slotOf(g.Graph.Neighbors(from), to)
	if slot < 0 {
		return false, nil
	}
	mirror := -1
	if !g.Directed() && from != to {
		if mirror = slotOf(g.Graph.Neighbors(to), from); mirror < 0 {
			return false, ErrMirrorSlot
		}
	}

	g.setAt(from, slot, name, val)
	if mirror >= 0 {
		g.setAt(to, mirror, name, val)
	}

	return true, nil
}

// setAt writes into the slot map, allocating it on first use.
func (g *Graph) setAt(v, slot int, name string, val Value) {
	if g.edgeAttrs[v][slot] == nil {
		g.edgeAttrs[v][slot] = make(map[string]Value, 1)
	}
	g.edgeAttrs[v][slot][name] = val
}

// Clone returns a deep copy of the graph and both attribute tables.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Graph:       g.Graph.Clone(),
		vertexAttrs: make([]map[string]Value, len(g.vertexAttrs)),
		edgeAttrs:   make([][]map[string]Value, len(g.edgeAttrs)),
	}
	for v, m := range g.vertexAttrs {
		c.vertexAttrs[v] = cloneAttrs(m)
	}
	for v, row := range g.edgeAttrs {
		c.edgeAttrs[v] = make([]map[string]Value, len(row))
		for k, m := range row {
			c.edgeAttrs[v][k] = cloneAttrs(m)
		}
	}

	return c
}

func cloneAttrs(m map[string]Value) map[string]Value {
	if m == nil {
		return nil
	}
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// sortedKeys returns the keys of m in ascending order, nil for an empty map.
func sortedKeys(m map[string]Value) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// slotOf returns the position of the first occurrence of x in row, or -1.
func slotOf(row []int, x int) int {
	for i, n := range row {
		if n == x {
			return i
		}
	}

	return -1
}
