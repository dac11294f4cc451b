// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/edgegraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node has no entry in the graph.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; checked once per discovered node.
	Ctx context.Context

	// OnVisit is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id core.NodeID, depth int) error

	// OnExit is invoked after all descendants of a node are explored
	// (post-order), before the node is appended to Order.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, stops descent below the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, decides whether the edge from→to is followed.
	FilterNeighbor func(from, to core.NodeID) bool

	// FullTraversal restarts from every undiscovered key in key order,
	// covering disconnected parts of the graph.
	FullTraversal bool

	err error
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filtering, single-root traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. Values below -1 are rejected.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= -1, got %d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips every edge for which fn returns false; skipped
// edges are counted in DFSResult.SkippedNeighbors.
func WithFilterNeighbor(fn func(from, to core.NodeID) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every key.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []core.NodeID

	// Depth maps each discovered node to its tree depth.
	Depth map[core.NodeID]int

	// Parent maps each discovered non-root node to its tree parent.
	Parent map[core.NodeID]core.NodeID

	// Roots lists the tree roots in the order they were started.
	Roots []core.NodeID

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether id was discovered.
func (r *DFSResult) Visited(id core.NodeID) bool {
	_, ok := r.Depth[id]

	return ok
}
