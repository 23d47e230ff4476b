// Package dfs options and error definitions.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartRange is returned when the start index is out of range.
	ErrStartRange = errors.New("dfs: start vertex out of range")
)

// VisitFunc is invoked once per discovered vertex with the vertex and its
// traversal parent. Returning false records the vertex as seen without
// expanding its neighbors; an error aborts the traversal.
type VisitFunc func(v, parent int) (explore bool, err error)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit gates expansion of each discovered vertex. The default
	// explores everything.
	OnVisit VisitFunc
}

// DefaultOptions returns Options with a background context and an
// explore-everything callback.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) (bool, error) { return true, nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit-gating callback.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists vertices in the order their callback fired; the start
	// vertex is not included.
	Order []int

	// Parent maps each visited vertex to its traversal parent, -1 for
	// the start vertex and for vertices never reached.
	Parent []int
}
