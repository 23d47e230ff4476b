package attrgraph

import "sort"

// FoldEvent records one adjacency occurrence folded by Contract: the
// original edge endpoints, the slot of ToOrig within FromOrig's adjacency
// list (usable with EdgeAttrAt on the source graph), and the contracted
// endpoints. For an undirected source graph each edge between distinct
// vertices produces two events, one per stored direction; a self-loop
// produces one.
type FoldEvent struct {
	FromOrig, ToOrig int
	Slot             int
	From, To         int
}

// Contract folds vertices per mapping, like core.Graph.Contract, and
// additionally:
//
//   - returns the full fold-event list so callers can reduce per-edge data
//     (weights, counts) onto the contracted graph themselves, and
//   - propagates the KeyContained vertex attribute: each contracted vertex
//     records the sorted set of original vertices folded into it, chaining
//     through the source graph's own KeyContained sets when present (a
//     source vertex without one contributes itself).
//
// Edge attributes are NOT carried over; only structure, fold events, and
// the containment sets. Errors are those of core.Graph.Contract.
func (g *Graph) Contract(mapping []int) (*Graph, []FoldEvent, error) {
	contracted, err := g.Graph.Contract(mapping)
	if err != nil {
		return nil, nil, err
	}
	out := FromGraph(contracted)

	var events []FoldEvent
	for u := 0; u < g.VertexCount(); u++ {
		for slot, w := range g.Graph.Neighbors(u) {
			events = append(events, FoldEvent{
				FromOrig: u,
				ToOrig:   w,
				Slot:     slot,
				From:     mapping[u],
				To:       mapping[w],
			})
		}
	}

	contained := make([][]int, out.VertexCount())
	for v, target := range mapping {
		if set, ok := g.VertexAttr(v, KeyContained); ok {
			if vs, ok := set.AsVertexSet(); ok {
				contained[target] = append(contained[target], vs...)
				continue
			}
		}
		contained[target] = append(contained[target], v)
	}
	for target, vs := range contained {
		sort.Ints(vs)
		if err = out.SetVertexAttr(target, KeyContained, VertexSet(vs)); err != nil {
			return nil, nil, err
		}
	}

	return out, events, nil
}
