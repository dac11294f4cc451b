package dfs

import (
	"github.com/katalvlaran/edgegraph/core"
)

// Components partitions the known nodes of g into connected components,
// ignoring edge orientation. Components are listed in order of their first
// key, and members in discovery order. Nodes that only appear as neighbors
// are included. For directed graphs a reversed adjacency is built first,
// so the result is the weakly connected components.
//
// Complexity: O(V + E) time, O(V) extra memory (O(V + E) when directed).
func Components(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	view := g
	if g.Directed() {
		view = undirected(g)
	}

	keys := view.Nodes()
	if len(keys) == 0 {
		return nil, nil
	}

	var out [][]core.NodeID
	_, err := DFS(view, keys[0],
		WithFullTraversal(),
		WithOnVisit(func(id core.NodeID, depth int) error {
			if depth == 0 {
				out = append(out, nil)
			}
			out[len(out)-1] = append(out[len(out)-1], id)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Largest returns the size of the biggest component, or 0 for none.
func Largest(components [][]core.NodeID) int {
	best := 0
	for _, c := range components {
		best = max(best, len(c))
	}

	return best
}

// undirected returns a symmetric copy of g in the same key order.
func undirected(g *core.Graph) *core.Graph {
	b := core.NewBuilder()
	for _, id := range g.Nodes() {
		b.AddNode(id)
	}
	for _, e := range g.Edges() {
		b.AddEdge(e.From, e.To)
	}

	return b.Build()
}
