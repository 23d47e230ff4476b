package louvain

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/grafik-go/grafik/attrgraph"
)

// weightEps bounds the tolerated total-weight drift across a contraction.
const weightEps = 1e-9

// Detect runs Louvain community detection on g, applying any number of
// functional Options. The input graph is not modified.
//
// Every edge of g must carry a float attrgraph.KeyWeight attribute. Returns
// ErrGraphNil, ErrDirectedGraph, or ErrMissingWeight for invalid input, and
// ErrWeightMismatch if weight bookkeeping drifts across a contraction.
//
// A graph with zero total weight yields singleton communities and
// modularity 0.
func Detect(g *attrgraph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	origN := g.VertexCount()
	work := g
	best := &Result{Modularity: math.Inf(-1)}

	for pass := 1; ; pass++ {
		k, adjW, twoM, err := buildWeights(work)
		if err != nil {
			return nil, err
		}
		if pass == 1 && twoM == 0 {
			return identityResult(origN), nil
		}

		comm, tot := localMove(work, k, adjW, twoM)
		q := modularity(work, comm, tot, adjW, twoM)
		comm, commCount := renumber(comm)

		o.Log.WithFields(logrus.Fields{
			"pass":        pass,
			"modularity":  q,
			"communities": commCount,
			"vertices":    work.VertexCount(),
		}).Debug("louvain: pass complete")

		if q <= best.Modularity {
			break
		}
		best = &Result{
			Communities: mapToOriginal(work, comm, origN),
			Modularity:  q,
		}

		if commCount == work.VertexCount() {
			// No vertex moved; contracting would reproduce this graph.
			break
		}
		if o.MaxPasses > 0 && pass >= o.MaxPasses {
			break
		}

		work, err = contractWeighted(work, comm, adjW, twoM)
		if err != nil {
			return nil, err
		}
	}

	return best, nil
}

// Annotate writes res.Communities onto g as the per-vertex
// attrgraph.KeyCommunity attribute.
func Annotate(g *attrgraph.Graph, res *Result) error {
	if g == nil {
		return ErrGraphNil
	}
	for v, c := range res.Communities {
		if err := g.SetVertexAttr(v, attrgraph.KeyCommunity, attrgraph.Int(c)); err != nil {
			return err
		}
	}

	return nil
}

// buildWeights extracts per-slot edge weights aligned with the adjacency
// table, per-vertex weights (sum of incident slot weights, self-loops once),
// and the total weight 2m (sum of vertex weights).
func buildWeights(g *attrgraph.Graph) (k []float64, adjW [][]float64, twoM float64, err error) {
	n := g.VertexCount()
	k = make([]float64, n)
	adjW = make([][]float64, n)
	for u := 0; u < n; u++ {
		nbrs := g.Neighbors(u)
		adjW[u] = make([]float64, len(nbrs))
		for slot, v := range nbrs {
			val, ok := g.EdgeAttrAt(u, slot, attrgraph.KeyWeight)
			if !ok {
				return nil, nil, 0, fmt.Errorf("%w: edge %d-%d", ErrMissingWeight, u, v)
			}
			w, ok := val.AsFloat()
			if !ok {
				return nil, nil, 0, fmt.Errorf("%w: edge %d-%d", ErrMissingWeight, u, v)
			}
			adjW[u][slot] = w
			k[u] += w
		}
		twoM += k[u]
	}

	return k, adjW, twoM, nil
}

// localMove runs greedy single-vertex moves until a full sweep yields no
// improvement. Returns the community of each vertex and the total vertex
// weight per community label (indexed by community, stale entries zero).
func localMove(g *attrgraph.Graph, k []float64, adjW [][]float64, twoM float64) (comm []int, tot []float64) {
	n := g.VertexCount()
	comm = make([]int, n)
	tot = make([]float64, n)
	for v := 0; v < n; v++ {
		comm[v] = v
		tot[v] = k[v]
	}

	links := make([]float64, n)
	var touched []int

	for moved := true; moved; {
		moved = false
		for v := 0; v < n; v++ {
			// Weight of v's edges into each adjacent community,
			// self-loops excluded. touched keeps the candidate order
			// deterministic.
			touched = touched[:0]
			for slot, u := range g.Neighbors(v) {
				if u == v {
					continue
				}
				c := comm[u]
				if links[c] == 0 {
					touched = append(touched, c)
				}
				links[c] += adjW[v][slot]
			}

			cur := comm[v]
			tot[cur] -= k[v]

			bestC := cur
			bestGain := links[cur] - k[v]*tot[cur]/twoM
			for _, c := range touched {
				if c == cur {
					continue
				}
				if gain := links[c] - k[v]*tot[c]/twoM; gain > bestGain {
					bestGain = gain
					bestC = c
				}
			}

			tot[bestC] += k[v]
			if bestC != cur {
				comm[v] = bestC
				moved = true
			}

			for _, c := range touched {
				links[c] = 0
			}
			links[cur] = 0
		}
	}

	return comm, tot
}

// modularity computes Q = intra/2m - Σ_c (tot_c/2m)² for the given
// assignment, where intra sums every adjacency occurrence whose endpoints
// share a community (self-loops once).
func modularity(g *attrgraph.Graph, comm []int, tot []float64, adjW [][]float64, twoM float64) float64 {
	var intra float64
	for u := 0; u < g.VertexCount(); u++ {
		for slot, v := range g.Neighbors(u) {
			if comm[u] == comm[v] {
				intra += adjW[u][slot]
			}
		}
	}

	q := intra / twoM
	for _, t := range tot {
		frac := t / twoM
		q -= frac * frac
	}

	return q
}

// renumber relabels communities densely from 0, largest first, ties broken
// by smallest member index. Returns the relabeled assignment and the
// community count.
func renumber(comm []int) ([]int, int) {
	sizes := make(map[int]int)
	var order []int
	for _, c := range comm {
		if sizes[c] == 0 {
			order = append(order, c)
		}
		sizes[c]++
	}
	// Ascending vertex scan put each community's smallest member first in
	// order, so a stable sort keeps that tie-break.
	sort.SliceStable(order, func(i, j int) bool {
		return sizes[order[i]] > sizes[order[j]]
	})

	relabel := make(map[int]int, len(order))
	for dense, c := range order {
		relabel[c] = dense
	}
	out := make([]int, len(comm))
	for v, c := range comm {
		out[v] = relabel[c]
	}

	return out, len(order)
}

// mapToOriginal projects a working-graph assignment onto the original vertex
// indices through each working vertex's KeyContained set. A working vertex
// without one maps to itself.
func mapToOriginal(g *attrgraph.Graph, comm []int, origN int) []int {
	out := make([]int, origN)
	for wv, c := range comm {
		if val, ok := g.VertexAttr(wv, attrgraph.KeyContained); ok {
			if vs, ok := val.AsVertexSet(); ok {
				for _, orig := range vs {
					out[orig] = c
				}
				continue
			}
		}
		out[wv] = c
	}

	return out
}

// contractWeighted folds communities into single vertices and reduces edge
// weights onto the contracted graph: inter-community edges sum their weights
// once per undirected edge, intra-community edges fold into a self-loop that
// accumulates once per stored direction, doubling the folded sum so the
// total weight 2m is preserved. The preserved total is verified against the
// source graph.
func contractWeighted(g *attrgraph.Graph, comm []int, adjW [][]float64, twoM float64) (*attrgraph.Graph, error) {
	contracted, events, err := g.Contract(comm)
	if err != nil {
		return nil, err
	}

	selfW := make([]float64, contracted.VertexCount())
	interW := make(map[[2]int]float64)
	for _, ev := range events {
		w := adjW[ev.FromOrig][ev.Slot]
		switch {
		case ev.From == ev.To:
			selfW[ev.From] += w
		case ev.FromOrig < ev.ToOrig:
			lo, hi := ev.From, ev.To
			if lo > hi {
				lo, hi = hi, lo
			}
			interW[[2]int{lo, hi}] += w
		}
	}

	// SetEdgeAttr no-ops for communities without a self-loop, so a zero
	// entry is safe to write unconditionally.
	for c, w := range selfW {
		if _, err = contracted.SetEdgeAttr(c, c, attrgraph.KeyWeight, attrgraph.Float(w)); err != nil {
			return nil, err
		}
	}
	for pair, w := range interW {
		if _, err = contracted.SetEdgeAttr(pair[0], pair[1], attrgraph.KeyWeight, attrgraph.Float(w)); err != nil {
			return nil, err
		}
	}

	_, _, twoMAfter, err := buildWeights(contracted)
	if err != nil {
		return nil, err
	}
	if math.Abs(twoMAfter-twoM) > weightEps*math.Max(1, math.Abs(twoM)) {
		return nil, fmt.Errorf("%w: %g before, %g after", ErrWeightMismatch, twoM, twoMAfter)
	}

	return contracted, nil
}

// identityResult assigns every vertex its own community with modularity 0.
func identityResult(n int) *Result {
	comm := make([]int, n)
	for v := range comm {
		comm[v] = v
	}

	return &Result{Communities: comm, Modularity: 0}
}
