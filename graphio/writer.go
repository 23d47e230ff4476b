package graphio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/grafik-go/grafik/core"
)

// vertexName renders v for output: its label under WithLabels when one is
// set, otherwise the index.
func vertexName(g *core.Graph, v int, labels bool) string {
	if labels {
		if name, ok := g.Label(v); ok {
			return name
		}
	}

	return strconv.Itoa(v)
}

// emitEdges invokes fn once per stored edge: every adjacency occurrence for
// directed graphs, mirrored occurrences with to < from skipped for
// undirected ones (self-loops are stored once and emitted once).
func emitEdges(g *core.Graph, fn func(from, to int) error) error {
	for from := 0; from < g.VertexCount(); from++ {
		for _, to := range g.Neighbors(from) {
			if !g.Directed() && to < from {
				continue
			}
			if err := fn(from, to); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteEdgeList writes g as a tab-separated edge list, one edge per line.
// Undirected edges appear once with the smaller endpoint first; WithLabels
// substitutes vertex labels for indices.
func WriteEdgeList(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return emitEdges(g, func(from, to int) error {
		_, err := fmt.Fprintf(w, "%s\t%s\n",
			vertexName(g, from, o.Labels), vertexName(g, to, o.Labels))

		return err
	})
}

// WriteDL writes g in the UCINET DL edge-list format: a header with the
// vertex count followed by one edge per line.
func WriteDL(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := fmt.Fprintf(w, "DL n=%d\nformat = edgelist1\nlabels embedded:\ndata:\n", g.VertexCount()); err != nil {
		return err
	}

	return emitEdges(g, func(from, to int) error {
		_, err := fmt.Fprintf(w, "%s %s\n",
			vertexName(g, from, o.Labels), vertexName(g, to, o.Labels))

		return err
	})
}
