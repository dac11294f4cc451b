// Package core defines the immutable adjacency-list Graph used by every
// algorithm in edgegraph, together with the Builder that produces it.
//
// A Graph G = (V, E) maps each NodeID to an ordered slice of neighbor IDs:
//
//   - Neighbor order is edge-arrival order (never sorted by core).
//   - Key order is first-seen order: a node is appended to the key sequence
//     the first time it appears as either endpoint of an edge (or via AddNode).
//   - Parallel edges and self-loops are stored verbatim; nothing is deduplicated.
//
// Orientation is fixed per Graph by the Builder:
//
//	– Symmetric (default)
//	    AddEdge(u, v) records v in N(u) and u in N(v). A self-loop (u, u)
//	    is recorded once, since both directions are the same entry.
//
//	– WithDirected(true)
//	    AddEdge(u, v) records only v in N(u); v still receives a key,
//	    possibly with an empty neighbor list.
//
// Lifecycle:
//
//	b := core.NewBuilder()
//	b.AddEdge(1, 2)
//	b.AddEdge(2, 3)
//	g := b.Build() // g is immutable from here on
//
// After Build the Graph is never written again, so every read method is safe
// for concurrent use without locking. Slices returned by Neighbors alias the
// Graph's storage and must be treated as read-only.
//
// Complexity:
//
//   - AddEdge:    O(1) amortized
//   - HasNode:    O(1)
//   - Neighbors:  O(1)
//   - Nodes:      O(V) (copy)
//   - Edges:      O(V + E)
package core
