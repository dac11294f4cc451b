// File: view.go
// Role: non-mutating graph views.

package core

// InducedSubgraph returns a new Graph holding only the keys for which keep
// reports true, and only the adjacency entries whose endpoints are both kept.
// Key order and neighbor order follow g. Each stored direction is copied
// independently, so orientation carries over unchanged.
//
// Complexity: O(V + E). The input graph is not touched.
func InducedSubgraph(g *Graph, keep func(NodeID) bool) *Graph {
	out := newGraph(WithDirected(g.directed))
	var u, v NodeID
	for _, u = range g.order {
		if !keep(u) {
			continue
		}
		out.order = append(out.order, u)
		var nbrs []NodeID
		for _, v = range g.adj[u] {
			if keep(v) {
				nbrs = append(nbrs, v)
			}
		}
		out.adj[u] = nbrs
		out.entries += len(nbrs)
	}
	// SourceEdgeCount has no meaning for a view; leave it at zero.

	return out
}
