// File: methods_adjacent.go
// Role: neighborhood APIs (Neighbors, Degree, Edges).
// Determinism:
//   - Neighbors() preserves edge-arrival order.
//   - Edges() walks keys in first-seen order, then each neighbor slice in order.

package core

import "fmt"

// Neighbors returns the neighbor slice of id in edge-arrival order.
//
// The returned slice aliases the Graph's storage: treat it as read-only.
// A node with an entry but no neighbors yields an empty slice and nil error.
//
// Errors:
//   - ErrNodeNotFound: id has no entry.
//
// Complexity: O(1).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return nbrs, nil
}

// Degree returns len(Neighbors(id)), or 0 for unknown nodes.
func (g *Graph) Degree(id NodeID) int { return len(g.adj[id]) }

// Edges returns one Edge per adjacency entry. Symmetric graphs therefore
// report both (u, v) and (v, u); parallel edges repeat.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.entries)
	for _, u := range g.order {
		for _, v := range g.adj[u] {
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}
