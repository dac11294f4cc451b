package sample

import (
	"github.com/katalvlaran/edgegraph/core"
)

// InducedEdges returns the adjacency entries of g whose endpoints both lie
// in set, walking keys in key order and neighbors in adjacency order. A
// symmetric edge contributes (u, v) and (v, u) independently; parallel edges
// repeat. For a set holding every node the result equals g.Edges().
func InducedEdges(g *core.Graph, set NodeSet) []core.Edge {
	if g == nil || len(set) == 0 {
		return nil
	}
	var out []core.Edge
	g.Range(func(u core.NodeID, nbrs []core.NodeID) bool {
		if !set.Has(u) {
			return true
		}
		for _, v := range nbrs {
			if set.Has(v) {
				out = append(out, core.Edge{From: u, To: v})
			}
		}
		return true
	})

	return out
}
