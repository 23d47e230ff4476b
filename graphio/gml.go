package graphio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grafik-go/grafik/attrgraph"
)

// gmlValue renders an attribute value as a GML scalar: floats and ints
// verbatim, strings quoted, vertex sets as a quoted space-separated list.
func gmlValue(v attrgraph.Value) string {
	switch v.Kind() {
	case attrgraph.KindFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case attrgraph.KindInt:
		n, _ := v.AsInt()
		return strconv.Itoa(n)
	case attrgraph.KindString:
		s, _ := v.AsString()
		return strconv.Quote(s)
	case attrgraph.KindVertexSet:
		vs, _ := v.AsVertexSet()
		parts := make([]string, len(vs))
		for i, x := range vs {
			parts[i] = strconv.Itoa(x)
		}
		return strconv.Quote(strings.Join(parts, " "))
	default:
		return `""`
	}
}

// WriteGML writes g in the GML nested-block format, including vertex labels
// and all vertex and edge attributes (attribute names sorted for stable
// output). Undirected edges appear once with the smaller endpoint first.
func WriteGML(w io.Writer, g *attrgraph.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	directed := 0
	if g.Directed() {
		directed = 1
	}
	if _, err := fmt.Fprintf(w, "graph [\n  directed %d\n", directed); err != nil {
		return err
	}

	for v := 0; v < g.VertexCount(); v++ {
		if _, err := fmt.Fprintf(w, "  node [\n    id %d\n", v); err != nil {
			return err
		}
		if name, ok := g.Label(v); ok {
			if _, err := fmt.Fprintf(w, "    label %s\n", strconv.Quote(name)); err != nil {
				return err
			}
		}
		for _, name := range g.VertexAttrNames(v) {
			val, _ := g.VertexAttr(v, name)
			if _, err := fmt.Fprintf(w, "    %s %s\n", name, gmlValue(val)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "  ]\n"); err != nil {
			return err
		}
	}

	for from := 0; from < g.VertexCount(); from++ {
		for slot, to := range g.Neighbors(from) {
			if !g.Directed() && to < from {
				continue
			}
			if _, err := fmt.Fprintf(w, "  edge [\n    source %d\n    target %d\n", from, to); err != nil {
				return err
			}
			for _, name := range g.EdgeAttrNamesAt(from, slot) {
				val, _ := g.EdgeAttrAt(from, slot, name)
				if _, err := fmt.Fprintf(w, "    %s %s\n", name, gmlValue(val)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprint(w, "  ]\n"); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprint(w, "]\n")

	return err
}
