// Package dfs provides depth-first traversal over a core.Graph with the
// same visit-gating callback contract as package bfs.
//
// The traversal is iterative (explicit LIFO stack, no recursion) so deep
// graphs cannot exhaust the call stack. The start vertex is marked processed
// immediately and never passed to the callback; its neighbors seed the
// stack. A callback returning false records the vertex as seen without
// pushing its neighbors.
//
// Complexity: O(V + E) plus the cost of the callback.
package dfs
