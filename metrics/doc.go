// Package metrics computes structural graph metrics over a core.Graph.
//
// Currently it provides local clustering coefficients: for each vertex the
// fraction of ordered neighbor pairs that are themselves adjacent. Membership
// among a vertex's neighbors is tested with a boolean scratch array sized to
// the vertex count, so the per-vertex cost is O(deg²) rather than O(deg³),
// and the full distribution costs O(V + Σ deg(v)²).
package metrics
