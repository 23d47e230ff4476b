package louvain_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/grafik-go/grafik/attrgraph"
	"github.com/grafik-go/grafik/core"
	"github.com/grafik-go/grafik/louvain"
)

// weightedGraph builds an undirected attributed graph with unit weight on
// every listed edge.
func weightedGraph(t *testing.T, n int, edges [][2]int) *attrgraph.Graph {
	t.Helper()
	g, err := attrgraph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
		_, err = g.SetEdgeAttr(e[0], e[1], attrgraph.KeyWeight, attrgraph.Float(1))
		require.NoError(t, err)
	}

	return g
}

// clique appends all edges of a complete graph over vs.
func clique(edges [][2]int, vs ...int) [][2]int {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			edges = append(edges, [2]int{vs[i], vs[j]})
		}
	}

	return edges
}

func TestDetect_NilGraph(t *testing.T) {
	_, err := louvain.Detect(nil)
	require.ErrorIs(t, err, louvain.ErrGraphNil)
}

func TestDetect_DirectedGraph(t *testing.T) {
	g, err := attrgraph.New(2, core.WithDirected(true))
	require.NoError(t, err)

	_, err = louvain.Detect(g)
	require.ErrorIs(t, err, louvain.ErrDirectedGraph)
}

func TestDetect_MissingWeight(t *testing.T) {
	g, err := attrgraph.New(2)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)

	_, err = louvain.Detect(g)
	require.ErrorIs(t, err, louvain.ErrMissingWeight)
}

func TestDetect_NonFloatWeight(t *testing.T) {
	g, err := attrgraph.New(2)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.SetEdgeAttr(0, 1, attrgraph.KeyWeight, attrgraph.String("heavy"))
	require.NoError(t, err)

	_, err = louvain.Detect(g)
	require.ErrorIs(t, err, louvain.ErrMissingWeight)
}

func TestDetect_EmptyGraph(t *testing.T) {
	g, err := attrgraph.New(4)
	require.NoError(t, err)

	res, err := louvain.Detect(g)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, res.Communities)
	require.Zero(t, res.Modularity)
}

func TestDetect_BridgedCliques(t *testing.T) {
	var edges [][2]int
	edges = clique(edges, 0, 1, 2, 3)
	edges = clique(edges, 4, 5, 6, 7)
	edges = append(edges, [2]int{3, 4})
	g := weightedGraph(t, 8, edges)

	res, err := louvain.Detect(g)
	require.NoError(t, err)

	require.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, res.Communities)
	require.Greater(t, res.Modularity, 0.0)
}

func TestDetect_DisjointCliques(t *testing.T) {
	var edges [][2]int
	edges = clique(edges, 0, 1, 2)
	edges = clique(edges, 3, 4, 5)
	edges = clique(edges, 6, 7, 8)
	g := weightedGraph(t, 9, edges)

	res, err := louvain.Detect(g)
	require.NoError(t, err)

	require.Len(t, res.Communities, 9)
	for c := 0; c < 3; c++ {
		base := res.Communities[3*c]
		require.Equal(t, base, res.Communities[3*c+1])
		require.Equal(t, base, res.Communities[3*c+2])
	}
	require.NotEqual(t, res.Communities[0], res.Communities[3])
	require.NotEqual(t, res.Communities[3], res.Communities[6])
	require.NotEqual(t, res.Communities[0], res.Communities[6])
}

func TestDetect_Deterministic(t *testing.T) {
	var edges [][2]int
	edges = clique(edges, 0, 1, 2, 3)
	edges = clique(edges, 4, 5, 6)
	edges = append(edges, [2]int{0, 4}, [2]int{2, 6})

	first, err := louvain.Detect(weightedGraph(t, 7, edges))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := louvain.Detect(weightedGraph(t, 7, edges))
		require.NoError(t, err)
		require.Equal(t, first.Communities, again.Communities)
		require.InDelta(t, first.Modularity, again.Modularity, 1e-12)
	}
}

func TestDetect_CommunitiesNumberedBySize(t *testing.T) {
	// A 4-clique and a 3-clique: the larger one must get label 0 even
	// though both contain low vertex indices.
	var edges [][2]int
	edges = clique(edges, 0, 1, 2)
	edges = clique(edges, 3, 4, 5, 6)
	g := weightedGraph(t, 7, edges)

	res, err := louvain.Detect(g)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 0, 0, 0, 0}, res.Communities)
}

func TestDetect_MaxPassesCap(t *testing.T) {
	var edges [][2]int
	edges = clique(edges, 0, 1, 2, 3)
	edges = clique(edges, 4, 5, 6, 7)
	edges = append(edges, [2]int{3, 4})
	g := weightedGraph(t, 8, edges)

	res, err := louvain.Detect(g, louvain.WithMaxPasses(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, res.Communities)
}

func TestDetect_InputNotModified(t *testing.T) {
	g := weightedGraph(t, 3, clique(nil, 0, 1, 2))

	_, err := louvain.Detect(g)
	require.NoError(t, err)

	for v := 0; v < 3; v++ {
		_, ok := g.VertexAttr(v, attrgraph.KeyCommunity)
		require.False(t, ok)
		_, ok = g.VertexAttr(v, attrgraph.KeyContained)
		require.False(t, ok)
	}
	require.Equal(t, 3, g.EdgeCount())
}

func TestDetect_PassDiagnostics(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	g := weightedGraph(t, 3, clique(nil, 0, 1, 2))
	_, err := louvain.Detect(g, louvain.WithLogger(log))
	require.NoError(t, err)

	require.NotEmpty(t, hook.Entries)
	require.Contains(t, hook.Entries[0].Data, "modularity")
}

func TestAnnotate(t *testing.T) {
	g := weightedGraph(t, 3, clique(nil, 0, 1, 2))

	res, err := louvain.Detect(g)
	require.NoError(t, err)
	require.NoError(t, louvain.Annotate(g, res))

	for v := 0; v < 3; v++ {
		val, ok := g.VertexAttr(v, attrgraph.KeyCommunity)
		require.True(t, ok)
		c, ok := val.AsInt()
		require.True(t, ok)
		require.Equal(t, res.Communities[v], c)
	}
}
