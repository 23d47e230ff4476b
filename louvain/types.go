// Package louvain options, result, and error definitions.
package louvain

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for community detection.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("louvain: graph is nil")

	// ErrDirectedGraph is returned when the input graph is directed;
	// modularity is defined on undirected graphs only.
	ErrDirectedGraph = errors.New("louvain: directed graph not supported")

	// ErrMissingWeight is returned when an edge has no float weight
	// attribute.
	ErrMissingWeight = errors.New("louvain: edge weight missing or not a float")

	// ErrWeightMismatch reports a total-weight drift across contraction,
	// which indicates corrupted weight bookkeeping.
	ErrWeightMismatch = errors.New("louvain: total weight changed across contraction")
)

// Option configures Detect behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a detection run.
type Options struct {
	// MaxPasses caps the number of contraction passes; 0 means unlimited.
	MaxPasses int

	// Log receives per-pass diagnostics at debug level.
	Log *logrus.Logger
}

// DefaultOptions returns Options with unlimited passes and the standard
// logger.
func DefaultOptions() Options {
	return Options{
		MaxPasses: 0,
		Log:       logrus.StandardLogger(),
	}
}

// WithMaxPasses caps the number of contraction passes; 0 restores the
// unlimited default.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxPasses = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log *logrus.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Log = log
		}
	}
}

// Result holds the outcome of a detection run.
type Result struct {
	// Communities maps each vertex of the input graph to its community,
	// numbered densely from 0 with the largest community first.
	Communities []int

	// Modularity is the achieved modularity of the assignment.
	Modularity float64
}
