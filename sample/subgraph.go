package sample

import (
	"slices"

	"github.com/katalvlaran/edgegraph/core"
)

// Subgraph is a node-induced adjacency view: selected nodes with their
// neighbor lists copied from the source graph. Neighbors are NOT filtered,
// so entries may point at nodes outside the selection.
type Subgraph struct {
	order []core.NodeID
	adj   map[core.NodeID][]core.NodeID
}

func newSubgraph(g *core.Graph, keys []core.NodeID, sorted bool) *Subgraph {
	s := &Subgraph{
		order: keys,
		adj:   make(map[core.NodeID][]core.NodeID, len(keys)),
	}
	for _, id := range keys {
		nbrs, _ := g.Neighbors(id)
		cp := slices.Clone(nbrs)
		if sorted {
			slices.Sort(cp)
		}
		s.adj[id] = cp
	}

	return s
}

// Len returns the number of selected nodes.
func (s *Subgraph) Len() int { return len(s.order) }

// Nodes returns the selected nodes in selection order.
func (s *Subgraph) Nodes() []core.NodeID { return slices.Clone(s.order) }

// Neighbors returns the copied neighbor list of id and whether id is selected.
func (s *Subgraph) Neighbors(id core.NodeID) ([]core.NodeID, bool) {
	nbrs, ok := s.adj[id]

	return nbrs, ok
}

// NodeSet returns the selected nodes as a set.
func (s *Subgraph) NodeSet() NodeSet {
	set := make(NodeSet, len(s.order))
	for _, id := range s.order {
		set[id] = struct{}{}
	}

	return set
}

// Edges returns every copied entry, including those leading to unselected nodes.
func (s *Subgraph) Edges() []core.Edge {
	var out []core.Edge
	for _, u := range s.order {
		for _, v := range s.adj[u] {
			out = append(out, core.Edge{From: u, To: v})
		}
	}

	return out
}

// Dangling lists, in first-reference order, the neighbors that have no entry
// of their own in the Subgraph.
func (s *Subgraph) Dangling() []core.NodeID {
	seen := make(map[core.NodeID]bool)
	var out []core.NodeID
	for _, u := range s.order {
		for _, v := range s.adj[u] {
			if _, selected := s.adj[v]; selected || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}
