// Package dijkstra defines types and configuration options for the
// unit-weight single-source distance engine.
//
// Options:
//
//	– WithReturnPath: also return the predecessor map.
//	– WithContext:    cancellation, checked once per heap pop.
//	– WithOnSettle:   observer invoked when a node's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGraph if the provided graph pointer is nil.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/edgegraph/core"
)

// Unreachable is the distance recorded for nodes the source cannot reach.
const Unreachable int64 = math.MaxInt64

// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Ctx        context.Context
	ReturnPath bool
	OnSettle   func(id core.NodeID, dist int64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithContext sets a context checked once per heap pop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSettle registers a callback invoked each time a node is popped with
// its final distance, in non-decreasing distance order.
func WithOnSettle(fn func(id core.NodeID, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns background context, no predecessor map, no-op observer.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		ReturnPath: false,
		OnSettle:   func(core.NodeID, int64) {},
	}
}

// Reachable reports whether d is a finite distance.
func Reachable(d int64) bool { return d != Unreachable }
