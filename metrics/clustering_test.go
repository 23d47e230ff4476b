package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafik-go/grafik/core"
	"github.com/grafik-go/grafik/metrics"
)

func TestClusteringCoefficients_NilGraph(t *testing.T) {
	_, err := metrics.ClusteringCoefficients(nil)
	require.ErrorIs(t, err, metrics.ErrGraphNil)
}

func TestClusteringCoefficients_Triangle(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	coeffs, err := metrics.ClusteringCoefficients(g)
	require.NoError(t, err)
	require.Equal(t, []float64{1.0, 1.0, 1.0}, coeffs)
}

func TestClusteringCoefficients_ClosedPair(t *testing.T) {
	// The two neighbors of vertex 0 are themselves adjacent, so vertex 0
	// has coefficient 1.0; the leaves have degree 2 with one closed pair
	// as well (it is a triangle plus a pendant).
	g, err := core.New(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	coeffs, err := metrics.ClusteringCoefficients(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, coeffs[0], 1e-12)
	require.InDelta(t, 1.0, coeffs[1], 1e-12)
	// Vertex 2 has degree 3 but only the {0,1} pair is closed: 2/(3*2).
	require.InDelta(t, 1.0/3.0, coeffs[2], 1e-12)
	// Degree 1.
	require.Zero(t, coeffs[3])
}

func TestClusteringCoefficients_StarIsZero(t *testing.T) {
	g, err := core.New(5)
	require.NoError(t, err)
	for leaf := 1; leaf < 5; leaf++ {
		_, err = g.AddEdge(0, leaf)
		require.NoError(t, err)
	}

	coeffs, err := metrics.ClusteringCoefficients(g)
	require.NoError(t, err)
	for v, c := range coeffs {
		require.Zerof(t, c, "vertex %d", v)
	}
}

func TestClusteringCoefficients_LowDegree(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)

	coeffs, err := metrics.ClusteringCoefficients(g)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, coeffs)
}

func TestClusteringCoefficients_Directed(t *testing.T) {
	// 0 -> 1, 0 -> 2, 1 -> 2: of the two ordered pairs among vertex 0's
	// out-neighbors only (1,2) carries an arc.
	g, err := core.New(3, core.WithDirected(true))
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	coeffs, err := metrics.ClusteringCoefficients(g)
	require.NoError(t, err)
	require.InDelta(t, 0.5, coeffs[0], 1e-12)
	require.Zero(t, coeffs[1])
	require.Zero(t, coeffs[2])
}

func TestAverageClusteringCoefficient(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	avg, err := metrics.AverageClusteringCoefficient(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, avg, 1e-12)
}

func TestAverageClusteringCoefficient_EmptyGraph(t *testing.T) {
	g, err := core.New(0)
	require.NoError(t, err)

	avg, err := metrics.AverageClusteringCoefficient(g)
	require.NoError(t, err)
	require.Zero(t, avg)
}
