package attrgraph_test

import (
	"testing"

	"github.com/grafik-go/grafik/attrgraph"
	"github.com/grafik-go/grafik/core"
	"github.com/stretchr/testify/require"
)

func TestVertexAttrs(t *testing.T) {
	g, err := attrgraph.New(3)
	require.NoError(t, err)

	_, ok := g.VertexAttr(0, attrgraph.KeyWeight)
	require.False(t, ok)

	require.NoError(t, g.SetVertexAttr(0, attrgraph.KeyWeight, attrgraph.Float(2.5)))
	val, ok := g.VertexAttr(0, attrgraph.KeyWeight)
	require.True(t, ok)
	f, ok := val.AsFloat()
	require.True(t, ok)
	require.Equal(t, 2.5, f)

	require.ErrorIs(t, g.SetVertexAttr(9, "x", attrgraph.Int(1)), core.ErrVertexRange)
}

func TestEdgeAttrs_MirrorConsistency(t *testing.T) {
	g, _ := attrgraph.New(3)
	_, _ = g.AddEdge(0, 1)

	set, err := g.SetEdgeAttr(0, 1, attrgraph.KeyWeight, attrgraph.Float(4.0))
	require.NoError(t, err)
	require.True(t, set)

	// readable from either endpoint of an undirected edge
	for _, pair := range [][2]int{{0, 1}, {1, 0}} {
		val, ok := g.EdgeAttr(pair[0], pair[1], attrgraph.KeyWeight)
		require.True(t, ok, "edge (%d,%d)", pair[0], pair[1])
		f, _ := val.AsFloat()
		require.Equal(t, 4.0, f)
	}

	// absent edge: reported failure, no error
	set, err = g.SetEdgeAttr(0, 2, attrgraph.KeyWeight, attrgraph.Float(1))
	require.NoError(t, err)
	require.False(t, set)
}

func TestEdgeAttrs_SelfLoopSingleSlot(t *testing.T) {
	g, _ := attrgraph.New(2)
	_, _ = g.AddEdge(1, 1)

	set, err := g.SetEdgeAttr(1, 1, attrgraph.KeyWeight, attrgraph.Float(3))
	require.NoError(t, err)
	require.True(t, set)

	val, ok := g.EdgeAttrAt(1, 0, attrgraph.KeyWeight)
	require.True(t, ok)
	f, _ := val.AsFloat()
	require.Equal(t, 3.0, f)
}

func TestRemoveEdge_CutsSlots(t *testing.T) {
	g, _ := attrgraph.New(3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(0, 2)
	_, _ = g.SetEdgeAttr(0, 1, "tag", attrgraph.String("a"))
	_, _ = g.SetEdgeAttr(0, 2, "tag", attrgraph.String("b"))

	removed, err := g.RemoveEdge(0, 1)
	require.NoError(t, err)
	require.True(t, removed)

	// the surviving edge keeps its attribute, now at the shifted slot
	val, ok := g.EdgeAttr(0, 2, "tag")
	require.True(t, ok)
	s, _ := val.AsString()
	require.Equal(t, "b", s)
	_, ok = g.EdgeAttr(0, 1, "tag")
	require.False(t, ok)
}

func TestRemoveVertex_RealignsRows(t *testing.T) {
	g, _ := attrgraph.New(4)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)
	require.NoError(t, g.SetVertexAttr(3, "name", attrgraph.String("tail")))
	_, _ = g.SetEdgeAttr(2, 3, attrgraph.KeyWeight, attrgraph.Float(7))

	require.NoError(t, g.RemoveVertex(1))
	require.Equal(t, 3, g.VertexCount())

	// former vertices 2,3 are now 1,2 and keep their overlay data
	val, ok := g.VertexAttr(2, "name")
	require.True(t, ok)
	s, _ := val.AsString()
	require.Equal(t, "tail", s)

	val, ok = g.EdgeAttr(1, 2, attrgraph.KeyWeight)
	require.True(t, ok)
	f, _ := val.AsFloat()
	require.Equal(t, 7.0, f)

	require.ErrorIs(t, g.RemoveVertex(7), core.ErrVertexRange)
}

func TestAddVertex_ExtendsRows(t *testing.T) {
	g, _ := attrgraph.New(1)
	v := g.AddVertex()
	require.Equal(t, 1, v)
	require.NoError(t, g.SetVertexAttr(v, "k", attrgraph.Int(5)))
	_, _ = g.AddEdge(0, v)
	set, err := g.SetEdgeAttr(v, 0, "k", attrgraph.Int(6))
	require.NoError(t, err)
	require.True(t, set)
}

func TestFromGraph_AlignsExistingStructure(t *testing.T) {
	g, _ := core.New(3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)

	ag := attrgraph.FromGraph(g)
	set, err := ag.SetEdgeAttr(1, 2, attrgraph.KeyWeight, attrgraph.Float(1))
	require.NoError(t, err)
	require.True(t, set)
	val, ok := ag.EdgeAttr(2, 1, attrgraph.KeyWeight)
	require.True(t, ok)
	f, _ := val.AsFloat()
	require.Equal(t, 1.0, f)
}

func TestClone_DeepCopiesOverlay(t *testing.T) {
	g, _ := attrgraph.New(2)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.SetEdgeAttr(0, 1, attrgraph.KeyWeight, attrgraph.Float(1))

	c := g.Clone()
	_, _ = c.SetEdgeAttr(0, 1, attrgraph.KeyWeight, attrgraph.Float(9))

	val, _ := g.EdgeAttr(0, 1, attrgraph.KeyWeight)
	f, _ := val.AsFloat()
	require.Equal(t, 1.0, f, "clone writes must not leak back")
}

func TestValueKinds(t *testing.T) {
	v := attrgraph.VertexSet([]int{2, 0, 1})
	require.Equal(t, attrgraph.KindVertexSet, v.Kind())
	vs, ok := v.AsVertexSet()
	require.True(t, ok)
	require.Equal(t, []int{2, 0, 1}, vs)

	_, ok = v.AsFloat()
	require.False(t, ok, "kind mismatch must be reported, not coerced")

	var zero attrgraph.Value
	require.Equal(t, attrgraph.KindInvalid, zero.Kind())
}
