// Package core implements a dense integer-indexed, adjacency-list graph
// with structural mutation, substructure derivation, and basic metrics.
//
// Vertices are identified by indices in the contiguous range [0, VertexCount()).
// RemoveVertex keeps that range dense by renumbering every higher index down
// by one; the O(V+E) cost of that repacking is part of the documented
// contract. Undirected edges are mirrored in both endpoint lists; self-loops
// occupy a single slot.
//
// Derived graphs (Subgraph, Component, Contract, Clone) are independent
// copies with their own index space starting at 0. Subgraph-producing
// operations return a partial old→new index map so results can be translated
// back to the source graph.
//
// Policy decisions:
//
//   - Self-loops are first-class edges: Adjacent(v, v) reports true exactly
//     when a self-loop edge exists.
//   - Mutating and derivation operations validate indices and return sentinel
//     errors. Read-only predicates (Adjacent, Degree, Neighbors) treat
//     out-of-range input as absent/zero.
//   - Parallel edges are not supported: AddEdge on an existing pair is a
//     reported no-op.
//
// The graph is a plain mutable structure with no internal synchronization;
// callers requiring concurrent mutation must serialize externally. Derived
// graphs share no mutable state with their source.
package core
