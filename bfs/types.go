package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/edgegraph/core"
)

var (
	// ErrGraphNil is returned when BFS or ShortestPath receive a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation marks an Option that could not be applied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a node the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option adjusts a walk. A rejected value is remembered and reported as
// ErrOptionViolation by BFS before any node is touched.
type Option func(*Options)

// Options is the resolved configuration of one walk.
//
// The two observers split the walk in half: OnDiscover fires when a node is
// first reached through an adjacency entry (and once for the start node),
// OnVisit fires when the node is taken off the frontier and appended to
// Result.Order. A node is discovered before it is visited, and with
// MaxDepth or ShortestPath some discovered nodes are never visited.
type Options struct {
	Ctx context.Context

	// OnDiscover observes each newly reached node with its hop count.
	OnDiscover func(id core.NodeID, hops int)

	// OnVisit observes nodes in Order sequence. A non-nil error ends the
	// walk and is returned from BFS wrapped with the node id.
	OnVisit func(id core.NodeID, hops int) error

	// MaxDepth caps the hop count of discovered nodes; 0 means no cap.
	MaxDepth int

	// FilterNeighbor decides whether the adjacency entry curr→neighbor may
	// discover neighbor. It is only consulted for undiscovered neighbors.
	FilterNeighbor func(curr, neighbor core.NodeID) bool

	err error
}

// DefaultOptions returns an uncapped, unfiltered walk bound to
// context.Background with silent observers.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnDiscover:     func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithContext checks ctx once per visited node. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDiscover sets the discovery observer. sample.Connected uses it to
// count the nodes claimed by the frontier.
func WithOnDiscover(fn func(id core.NodeID, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnVisit sets the visit observer.
func WithOnVisit(fn func(id core.NodeID, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery past d hops from the start. Zero lifts the
// cap; a negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an adjacency-entry filter.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the BFS tree of one walk. Depth and Parent cover every
// discovered node; Parent has no entry for Start.
type Result struct {
	Start  core.NodeID
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// PathTo follows Parent links from dest back to Start and returns the hops
// in start→dest order.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]core.NodeID, hops+1)
	cur := dest
	for i := hops; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
