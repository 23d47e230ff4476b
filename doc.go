// Package grafik is an in-memory graph toolkit built around a dense
// integer-indexed adjacency-list representation.
//
// Everything is organized under focused subpackages:
//
//	core/      — the Graph type: mutation, adjacency queries, subgraphs,
//	             connected components, vertex contraction, diameter
//	attrgraph/ — attribute overlay keeping per-vertex and per-edge values
//	             aligned with the structure under every mutation
//	bfs/, dfs/ — traversal drivers with a visit-gating callback
//	metrics/   — local clustering coefficients
//	louvain/   — community detection by modularity optimization
//	graphio/   — edge-list, GML, and DL text formats
//	gen/       — deterministic topology generators for tests and tools
//	cmd/grafik — command-line front end over edge-list files
//
// Vertices are always the dense range [0, n); removing a vertex renumbers
// the higher indices. Derived graphs (subgraphs, components, contractions)
// are independent copies with their own index space plus a mapping back to
// the source.
package grafik
