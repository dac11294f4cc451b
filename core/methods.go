// File: methods.go
// Role: read-only getters and node enumeration.
// Determinism:
//   - Nodes() and Range() follow first-seen key order.
//   - KnownNodes() lists keys first, then neighbor-only IDs in discovery order.

package core

// Directed reports whether the graph records only source→target entries.
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of keys.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of adjacency entries. Every stored direction
// counts once, so a symmetric graph built from k non-loop edges and l
// self-loops reports 2k+l.
func (g *Graph) EdgeCount() int { return g.entries }

// SourceEdgeCount returns how many edges were fed to the Builder.
func (g *Graph) SourceEdgeCount() int { return g.edges }

// HasNode reports whether id has an entry.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.adj[id]

	return ok
}

// Nodes returns a copy of the keys in first-seen order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)

	return out
}

// Range calls fn for each key in first-seen order with its neighbor slice,
// stopping early when fn returns false. The slice must not be modified.
func (g *Graph) Range(fn func(id NodeID, neighbors []NodeID) bool) {
	for _, id := range g.order {
		if !fn(id, g.adj[id]) {
			return
		}
	}
}

// KnownNodes returns every ID mentioned by the graph, as a key or as a
// neighbor. For graphs produced by Builder the two coincide; the distinction
// matters for adjacency views that were not built through Builder.
// Complexity: O(V + E).
func (g *Graph) KnownNodes() []NodeID {
	seen := make(map[NodeID]struct{}, len(g.order))
	out := make([]NodeID, 0, len(g.order))
	for _, id := range g.order {
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range g.order {
		for _, nbr := range g.adj[id] {
			if _, ok := seen[nbr]; ok {
				continue
			}
			seen[nbr] = struct{}{}
			out = append(out, nbr)
		}
	}

	return out
}

// Stats is a point-in-time summary used by diagnostics and the CLI.
type Stats struct {
	Directed    bool
	Nodes       int
	Entries     int
	SourceEdges int
	Isolated    int // keys with an empty neighbor list
	MaxDegree   int
}

// Stats computes a Stats snapshot. Complexity: O(V).
func (g *Graph) Stats() Stats {
	s := Stats{
		Directed:    g.directed,
		Nodes:       len(g.order),
		Entries:     g.entries,
		SourceEdges: g.edges,
	}
	for _, id := range g.order {
		d := len(g.adj[id])
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return s
}
