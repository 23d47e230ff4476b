// Package louvain implements Louvain community detection by modularity
// optimization over a weighted, undirected attrgraph.Graph.
//
// The algorithm alternates two phases until modularity stops improving:
// a local-move phase that greedily reassigns single vertices to the
// neighboring community with the strictly largest positive modularity gain,
// and a contraction phase that folds each community into one vertex of a
// smaller weighted graph via attrgraph fold events. Community labels are
// renumbered densely after every phase (largest community first, stable), so
// repeated runs on the same input produce identical assignments.
//
// Every edge must carry a float weight attribute; total weight is recomputed
// after each contraction and checked against the previous level, so weight
// bookkeeping errors surface as ErrWeightMismatch instead of silently wrong
// modularity.
package louvain
