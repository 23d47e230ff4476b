// Package core types, options, and sentinel errors.
package core

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexCount indicates a negative vertex count passed to New.
	ErrVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrAdjacencyDesync indicates the adjacency check reported an edge
	// present that the removal scan could not find. The operation is
	// aborted and the graph left untouched.
	ErrAdjacencyDesync = errors.New("core: adjacency list out of sync")

	// ErrEmptyContraction indicates an empty contraction mapping.
	ErrEmptyContraction = errors.New("core: contraction mapping is empty")

	// ErrContractionLength indicates a contraction mapping whose length
	// differs from the vertex count.
	ErrContractionLength = errors.New("core: contraction mapping length mismatch")

	// ErrContractionTarget indicates a negative contraction target.
	ErrContractionTarget = errors.New("core: contraction target out of range")
)

// Diameter sentinels. All three are distinct from any real diameter.
const (
	// DiameterUnsupported is returned for directed graphs.
	DiameterUnsupported = -1

	// DiameterUndefined is returned for graphs with no vertices.
	DiameterUndefined = math.MinInt

	// DiameterInfinite is returned for disconnected undirected graphs.
	DiameterInfinite = math.MaxInt
)

// Graph is a dense integer-indexed adjacency-list graph.
//
// edges[v] holds the ordered neighbor indices of v: outgoing edges for a
// directed graph, all incident edges for an undirected one (mirrored at the
// other endpoint). Directedness is fixed at construction.
type Graph struct {
	directed  bool
	edges     [][]int
	edgeCount int

	// labels is a sparse index→name mapping used only for I/O round-trips.
	labels map[int]string

	log *logrus.Logger
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected sets the directedness of the graph (fixed for its lifetime).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithLogger injects the logger used to report internal-consistency
// diagnostics. Defaults to logrus.StandardLogger().
func WithLogger(log *logrus.Logger) Option {
	return func(g *Graph) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a graph with vertexCount isolated vertices.
// Returns ErrVertexCount if vertexCount is negative.
// Complexity: O(V).
func New(vertexCount int, opts ...Option) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrVertexCount
	}
	g := &Graph{
		edges:  make([][]int, vertexCount),
		labels: make(map[int]string),
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// options reconstructs the Option slice reproducing this graph's
// configuration, for derived-graph constructors.
func (g *Graph) options() []Option {
	return []Option{WithDirected(g.directed), WithLogger(g.log)}
}
