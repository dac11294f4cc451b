package sample

import (
	"github.com/katalvlaran/edgegraph/core"
)

// TopN selects the first n keys of g in key order (first-seen order for
// graphs built by core.Builder) and force-includes the anchor when g has it
// and it is not already selected. Each selected node keeps a verbatim copy
// of its neighbor list; WithSortedNeighbors sorts the copies ascending.
//
// This is node-induced sampling: neighbors outside the selection are NOT
// filtered out, so the result may reference nodes without an entry. Use
// InducedEdges when only edges between sampled nodes are wanted.
func TopN(g *core.Graph, n int, opts ...Option) (*Subgraph, error) {
	o, err := prepare(g, n, opts)
	if err != nil {
		return nil, err
	}

	keys := make([]core.NodeID, 0, n+1)
	picked := make(map[core.NodeID]bool, n+1)
	g.Range(func(id core.NodeID, _ []core.NodeID) bool {
		if len(keys) >= n {
			return false
		}
		keys = append(keys, id)
		picked[id] = true
		return true
	})
	if o.UseAnchor && !picked[o.Anchor] && g.HasNode(o.Anchor) {
		keys = append(keys, o.Anchor)
	}

	sub := newSubgraph(g, keys, o.SortNeighbors)
	o.Logger.Debug("top-n sample",
		"n", n,
		"size", sub.Len(),
		"dangling", len(sub.Dangling()),
	)

	return sub, nil
}
