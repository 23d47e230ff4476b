// Package bfs provides breadth-first traversal over a core.Graph with a
// visit-gating callback.
//
// The start vertex is pre-seeded as seen and is not passed to the callback;
// neighbors are visited in adjacency-list order as they are discovered. The
// callback decides, per vertex, whether the traversal should expand its
// neighbors (true) or merely record it as seen (false). Each vertex is
// visited at most once.
//
// Complexity: O(V + E) plus the cost of the callback. Traversal follows
// outgoing adjacency only, so on directed graphs it covers the
// forward-reachable set.
package bfs
