// Package dijkstra computes single-source hop distances on unweighted graphs
// with a priority-queue discipline.
//
// Every edge weighs 1, so the result equals plain BFS depths. Stale heap
// entries are skipped, which keeps the loop valid for positive non-unit
// weights too.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy decrease-key.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/edgegraph/core"
)

// edgeWeight is the cost of every adjacency entry.
const edgeWeight int64 = 1

// Dijkstra computes hop distances from source to every node known to g.
//
// Returns:
//
//   - dist: every node known to g (key or neighbor) mapped to its distance,
//     Unreachable when the source cannot reach it. If source is not a node
//     of g the map is empty: nothing is initialized and nothing is reachable.
//   - prev: predecessor map when WithReturnPath is set (nil otherwise);
//     prev[v] == u means a shortest path to v arrives from u. The source and
//     unreachable nodes have no entry.
//   - err:  ErrNilGraph, or the context error on cancellation.
func Dijkstra(g *core.Graph, source core.NodeID, opts ...Option) (map[core.NodeID]int64, map[core.NodeID]core.NodeID, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	if !g.HasNode(source) {
		if cfg.ReturnPath {
			return map[core.NodeID]int64{}, map[core.NodeID]core.NodeID{}, nil
		}
		return map[core.NodeID]int64{}, nil, nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]int64, g.NodeCount()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[core.NodeID]core.NodeID, g.NodeCount())
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.NodeID]int64
	prev    map[core.NodeID]core.NodeID
	pq      nodePQ
}

// init sets every known node to Unreachable, the source to 0, and seeds the heap.
func (r *runner) init(source core.NodeID) {
	for _, v := range r.g.KnownNodes() {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0

	r.pq = make(nodePQ, 0, 64)
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
}

// process repeatedly pops the closest node and relaxes its adjacency entries.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(nodeItem)

		// Stale entry: a shorter distance was recorded after this push.
		best, ok := r.dist[item.id]
		if !ok || item.dist > best {
			continue
		}
		r.options.OnSettle(item.id, item.dist)
		r.relax(item)
	}

	return nil
}

// relax pushes each neighbor whose tentative distance strictly improves.
func (r *runner) relax(u nodeItem) {
	nbrs, err := r.g.Neighbors(u.id)
	if err != nil {
		return
	}
	newDist := u.dist + edgeWeight
	for _, v := range nbrs {
		cur, ok := r.dist[v]
		if !ok || newDist >= cur {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u.id
		}
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// nodePQ is a min-heap ordered by (dist, id). Ties on distance break on the
// smaller NodeID so the settle order is deterministic.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
