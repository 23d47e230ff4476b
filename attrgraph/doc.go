// Package attrgraph layers a typed attribute overlay on a core.Graph.
//
// Every vertex carries a name→Value map, and every adjacency-list slot
// carries one as well, so edgeAttrs[u][k] describes the edge from u to
// Neighbors(u)[k]. The package shadows the structural mutators of the
// embedded core.Graph to keep both tables index-aligned under every change:
// vertex removal shifts attribute rows with the renumbering, edge removal
// cuts the matching slot(s), and undirected edge-attribute writes update
// both mirrored slots so a query from either endpoint agrees.
//
// Structural mutation MUST go through the attrgraph methods; calling the
// embedded core.Graph mutators directly would desynchronize the overlay.
//
// Attribute values are a small tagged union (Value) instead of untyped
// interface bags, so reads fail with a kind mismatch rather than a runtime
// cast. The well-known keys used by the algorithms are KeyWeight,
// KeyCommunity, and KeyContained.
//
// Contract replaces the historical side-channel accumulation callback with
// an explicit fold-event list: the contraction stays a pure structural
// primitive and callers reduce the events however they need.
package attrgraph
