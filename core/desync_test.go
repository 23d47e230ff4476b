package core

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// TestRemoveEdge_Desync corrupts the adjacency table directly to exercise
// the internal-consistency path: the membership check scans vertex 1's
// shorter list and still sees the edge, while the removal scan over vertex
// 0's list does not.
func TestRemoveEdge_Desync(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	g, err := New(4, WithLogger(logger))
	require.NoError(t, err)
	for to := 1; to < 4; to++ {
		_, err = g.AddEdge(0, to)
		require.NoError(t, err)
	}

	// Drop 1 from vertex 0's list but keep the mirror entry; vertex 0
	// stays the higher-degree endpoint, so Adjacent still reports true.
	g.edges[0] = []int{2, 3}

	removed, err := g.RemoveEdge(0, 1)
	require.ErrorIs(t, err, ErrAdjacencyDesync)
	require.False(t, removed)

	require.Len(t, hook.Entries, 1)
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	require.Contains(t, hook.LastEntry().Message, "missing from list")

	// The failed removal must leave the structure untouched.
	require.Equal(t, []int{2, 3}, g.edges[0])
	require.Equal(t, []int{0}, g.edges[1])
}
