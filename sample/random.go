package sample

import (
	"github.com/katalvlaran/edgegraph/core"
)

// Random draws up to budget distinct keys of g uniformly at random,
// without regard to connectivity. When budget >= NodeCount every key is
// returned.
//
// Reservoir sampling keeps memory at O(budget) and makes a single pass over
// the keys in key order, so a seeded source gives reproducible samples.
func Random(g *core.Graph, budget int, opts ...Option) (NodeSet, error) {
	o, err := prepare(g, budget, opts)
	if err != nil {
		return nil, err
	}

	picked := reservoir(g, budget, o.Rand)
	set := make(NodeSet, len(picked))
	for _, id := range picked {
		set[id] = struct{}{}
	}
	o.Logger.Debug("random sample", "budget", budget, "size", set.Len(), "nodes", g.NodeCount())

	return set, nil
}

// RandomSubgraph is Random returned as a node-induced Subgraph: the drawn
// keys, in key order, each with a verbatim copy of its neighbor list.
func RandomSubgraph(g *core.Graph, budget int, opts ...Option) (*Subgraph, error) {
	set, err := Random(g, budget, opts...)
	if err != nil {
		return nil, err
	}
	o, _ := prepare(g, budget, opts)

	keys := make([]core.NodeID, 0, set.Len())
	g.Range(func(id core.NodeID, _ []core.NodeID) bool {
		if set.Has(id) {
			keys = append(keys, id)
		}
		return len(keys) < set.Len()
	})

	return newSubgraph(g, keys, o.SortNeighbors), nil
}

// reservoir implements Algorithm R over the keys of g.
func reservoir(g *core.Graph, k int, src Source) []core.NodeID {
	if k == 0 {
		return nil
	}
	out := make([]core.NodeID, 0, min(k, g.NodeCount()))
	seen := 0
	g.Range(func(id core.NodeID, _ []core.NodeID) bool {
		seen++
		if len(out) < k {
			out = append(out, id)
			return true
		}
		if j := src.Intn(seen); j < k {
			out[j] = id
		}
		return true
	})

	return out
}
