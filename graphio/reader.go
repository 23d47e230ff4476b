package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/grafik-go/grafik/core"
)

// ReadEdgeList parses a whitespace-separated edge list from r into a graph.
// Each non-empty line holds exactly two tokens naming the edge endpoints;
// lines starting with # or % are comments. Tokens are assigned dense vertex
// indices in order of first appearance and stored as labels. Duplicate edges
// are ignored.
// Returns ErrBadLine (with the 1-based line number) for malformed lines.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	index := make(map[string]int)
	var edges [][2]int
	var tokens []string

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNo, line)
		}

		var e [2]int
		for i, tok := range fields {
			idx, ok := index[tok]
			if !ok {
				idx = len(index)
				index[tok] = idx
				tokens = append(tokens, tok)
			}
			e[i] = idx
		}
		edges = append(edges, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read edge list: %w", err)
	}

	g, err := core.New(len(index), core.WithDirected(o.Directed))
	if err != nil {
		return nil, err
	}
	for v, tok := range tokens {
		if err = g.SetLabel(v, tok); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if _, err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ParseEdgeList is ReadEdgeList over an in-memory string.
func ParseEdgeList(s string, opts ...Option) (*core.Graph, error) {
	return ReadEdgeList(strings.NewReader(s), opts...)
}
