package sample

import (
	"github.com/katalvlaran/edgegraph/bfs"
	"github.com/katalvlaran/edgegraph/core"
)

// Connected performs a breadth-first expansion from seed that admits a node
// (adds it to the result and enqueues it) only while the result holds fewer
// than budget nodes.
//
// Every member other than seed was discovered through an edge whose other end
// is already a member, so the result induces a connected subgraph containing
// seed. When fewer than budget nodes are reachable the whole component is
// returned. budget == 0 yields an empty set; a seed absent from g yields
// {seed}, matching bfs.BFS.
//
// Complexity: O(budget + Σ deg) over the admitted nodes.
func Connected(g *core.Graph, seed core.NodeID, budget int, opts ...Option) (NodeSet, error) {
	o, err := prepare(g, budget, opts)
	if err != nil {
		return nil, err
	}
	if budget == 0 {
		return NodeSet{}, nil
	}

	set := make(NodeSet, budget)
	res, err := bfs.BFS(g, seed,
		bfs.WithOnDiscover(func(id core.NodeID, _ int) { set[id] = struct{}{} }),
		bfs.WithFilterNeighbor(func(_, _ core.NodeID) bool { return len(set) < budget }),
	)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("connected sample",
		"seed", uint64(seed),
		"budget", budget,
		"size", set.Len(),
		"visited", len(res.Order),
	)

	return set, nil
}
