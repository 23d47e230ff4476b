// Package gen builds common deterministic graph topologies for tests,
// benchmarks, and the command-line tools: paths, cycles, stars, cliques,
// disjoint clique unions, and seeded sparse random graphs.
//
// All generators return an undirected core.Graph with vertices 0..n-1 and
// never panic; the same arguments (and seed) always produce the same graph.
// UnitWeights wraps a generated graph for community detection by stamping
// weight 1.0 on every edge.
package gen
