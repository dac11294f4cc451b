package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edgegraph/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result

	// stop, when non-nil, ends the loop right after the matching node is visited.
	stop func(id core.NodeID) bool
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Neighbors are enqueued in adjacency order.
//
// A start node absent from g is not an error: the result is Order == [start]
// with no further expansion, since it has no neighbors to look up.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// the context error on cancellation, or any wrapped OnVisit error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

func newWalker(g *core.Graph, start core.NodeID, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, 64),
		visited: make(map[core.NodeID]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, 64),
			Depth:  make(map[core.NodeID]int),
			Parent: make(map[core.NodeID]core.NodeID),
		},
	}
	// Seed queue with start node (no parent)
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.opts.OnDiscover(start, 0)
	w.queue = append(w.queue, queueItem{id: start})

	return w, nil
}

// enqueue marks id discovered at depth d under parent and queues it.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnDiscover(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, cancellation or stop.
func (w *walker) loop() error {
	ctx := w.opts.Ctx
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.stop != nil && w.stop(item.id) {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor. A node without an entry (only ever an absent start) has none.
func (w *walker) enqueueNeighbors(item queueItem) {
	neighbors, err := w.graph.Neighbors(item.id)
	if errors.Is(err, core.ErrNodeNotFound) {
		return
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
}
