package dfs

import (
	"github.com/grafik-go/grafik/core"
)

// frame pairs a stacked vertex with the vertex that discovered it.
type frame struct {
	v, parent int
}

// DFS runs iterative depth-first traversal on g from start, applying any
// number of functional Options. The start vertex is marked processed
// immediately and not passed to the callback; its neighbors seed the stack.
// Each vertex is visited at most once; a callback returning false records
// the vertex without expanding it.
// Returns ErrGraphNil or ErrStartRange for invalid input, the context error
// on cancellation, or any callback error.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
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

	res := &Result{
		Order:  make([]int, 0, n),
		Parent: make([]int, n),
	}
	for i := range res.Parent {
		res.Parent[i] = -1
	}
	seen := make([]bool, n)
	seen[start] = true

	stack := make([]frame, 0, n)
	for _, nbr := range g.Neighbors(start) {
		stack = append(stack, frame{v: nbr, parent: start})
	}

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[top.v] {
			continue
		}
		seen[top.v] = true
		res.Parent[top.v] = top.parent
		res.Order = append(res.Order, top.v)

		explore, err := o.OnVisit(top.v, top.parent)
		if err != nil {
			return res, err
		}
		if !explore {
			continue
		}
		for _, nbr := range g.Neighbors(top.v) {
			if !seen[nbr] {
				stack = append(stack, frame{v: nbr, parent: top.v})
			}
		}
	}

	return res, nil
}
