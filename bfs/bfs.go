package bfs

import (
	"github.com/grafik-go/grafik/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	seen  []bool
	res   *Result
}

// BFS runs breadth-first traversal on g from start, applying any number of
// functional Options. The start vertex is marked seen immediately and not
// passed to the callback; unseen neighbors are passed to OnVisit as they are
// discovered and enqueued only when it returns true.
// Returns ErrGraphNil or ErrStartRange for invalid input, the context error
// on cancellation, or any callback error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, ErrStartRange
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		seen:  make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Parent: fill(n, -1),
			Depth:  fill(n, -1),
		},
	}
	w.seen[start] = true
	w.res.Depth[start] = 0
	w.res.Order = append(w.res.Order, start)
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop drains the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[qi]
		for _, nbr := range w.graph.Neighbors(u) {
			if w.seen[nbr] {
				continue
			}
			w.seen[nbr] = true
			w.res.Parent[nbr] = u
			w.res.Depth[nbr] = w.res.Depth[u] + 1
			w.res.Order = append(w.res.Order, nbr)

			explore, err := w.opts.OnVisit(nbr, u)
			if err != nil {
				return err
			}
			if explore {
				w.queue = append(w.queue, nbr)
			}
		}
	}

	return nil
}

// fill allocates an int slice of length n with every element set to v.
func fill(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
