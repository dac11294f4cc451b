// Package dfs implements depth-first search (single-root and forest) and
// connected components on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Components(g): connected components, weak for directed graphs
//
// The walk keeps an explicit stack instead of recursing, so million-node
// chains from real edge lists are fine. Visiting order matches the recursive
// formulation: neighbors are explored in adjacency order.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the stack and result maps.
//
// Errors:
//
//   - ErrGraphNil         if g is nil.
//   - ErrStartNotFound    if start has no entry (single-root mode).
//   - ErrOptionViolation  for invalid options.
//   - context errors      if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/edgegraph/core"
)

// frame is one node on the explicit DFS stack.
type frame struct {
	id    core.NodeID
	depth int
	nbrs  []core.NodeID
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on g from start. With WithFullTraversal
// it then restarts from every undiscovered key, and start may be absent.
func DFS(g *core.Graph, start core.NodeID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	if g.HasNode(start) {
		if err := w.traverse(start); err != nil {
			return w.res, err
		}
	}
	if o.FullTraversal {
		for _, id := range g.Nodes() {
			if w.res.Visited(id) {
				continue
			}
			if err := w.traverse(id); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root core.NodeID) error {
	w.res.Roots = append(w.res.Roots, root)
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			id := top.id
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(id); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
				}
			}
			w.res.Order = append(w.res.Order, id)
			continue
		}

		from, to := top.id, top.nbrs[top.next]
		depth := top.depth + 1
		top.next++
		if w.res.Visited(to) {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(from, to) {
			w.res.SkippedNeighbors++
			continue
		}
		w.res.Parent[to] = from
		if err := w.discover(to, depth); err != nil {
			return err
		}
	}

	return nil
}

// discover records id, runs OnVisit and pushes its frame. Below MaxDepth
// the frame gets no neighbors, so the node finishes immediately.
func (w *dfsWalker) discover(id core.NodeID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	var nbrs []core.NodeID
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbrs, _ = w.graph.Neighbors(id)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}
