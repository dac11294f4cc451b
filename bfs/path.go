package bfs

import "github.com/katalvlaran/edgegraph/core"

// ShortestPath returns a fewest-hop path from start to end, both inclusive.
//
// The walk records, for each node, the predecessor it was first reached from;
// with unit weights first-reached is shortest. Expansion stops as soon as end
// is dequeued. Results:
//
//   - end == start: [start]
//   - end unreachable (or absent): nil, with a nil error
//
// Options are those of BFS; observers see the truncated walk.
func ShortestPath(g *core.Graph, start, end core.NodeID, opts ...Option) ([]core.NodeID, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	w.stop = func(id core.NodeID) bool { return id == end }
	if err = w.loop(); err != nil {
		return nil, err
	}

	path, err := w.res.PathTo(end)
	if err != nil {
		return nil, nil
	}

	return path, nil
}
