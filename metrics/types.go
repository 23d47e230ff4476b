// Package metrics error definitions.
package metrics

import "errors"

// Sentinel errors for metric computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrInternal reports an impossible intermediate value, such as a NaN
	// coefficient for a vertex of degree two or more.
	ErrInternal = errors.New("metrics: internal computation error")
)
