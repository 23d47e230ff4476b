// Package graphio options and error definitions.
package graphio

import "errors"

// Sentinel errors for graph I/O.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to a
	// writer.
	ErrGraphNil = errors.New("graphio: graph is nil")

	// ErrBadLine is returned when an edge-list line does not hold exactly
	// two whitespace-separated tokens.
	ErrBadLine = errors.New("graphio: malformed edge-list line")
)

// Option configures reading and writing via functional arguments.
type Option func(*Options)

// Options holds parameters shared by readers and writers.
type Options struct {
	// Directed makes the reader build a directed graph.
	Directed bool

	// Labels makes writers emit vertex labels instead of indices;
	// unlabeled vertices fall back to their index.
	Labels bool
}

// DefaultOptions returns Options for undirected graphs with index output.
func DefaultOptions() Options {
	return Options{}
}

// WithDirected selects directed or undirected reading.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithLabels makes writers emit vertex labels.
func WithLabels() Option {
	return func(o *Options) { o.Labels = true }
}
