package sample

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/katalvlaran/edgegraph/core"
)

// Sentinel errors for sampling.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("sample: graph is nil")

	// ErrBadBudget is returned for a negative budget or n.
	ErrBadBudget = errors.New("sample: budget must be non-negative")
)

// DefaultAnchor is the node TopN force-includes unless told otherwise.
const DefaultAnchor core.NodeID = 0

// NodeSet is an unordered set of node IDs owned by the caller.
type NodeSet map[core.NodeID]struct{}

// Has reports membership.
func (s NodeSet) Has(id core.NodeID) bool {
	_, ok := s[id]

	return ok
}

// Len returns the set size.
func (s NodeSet) Len() int { return len(s) }

// Sorted returns the members in ascending order.
func (s NodeSet) Sorted() []core.NodeID {
	out := make([]core.NodeID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Source is the randomness Random needs; *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// globalSource draws from the process-wide math/rand generator.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Option customizes a sampling call.
type Option func(*Options)

// Options holds sampling parameters.
type Options struct {
	Logger        *slog.Logger
	Rand          Source
	Anchor        core.NodeID
	UseAnchor     bool
	SortNeighbors bool
}

// DefaultOptions returns options with a discard logger, process-wide
// randomness, anchor node 0 and neighbor lists copied in adjacency order.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Rand:      globalSource{},
		Anchor:    DefaultAnchor,
		UseAnchor: true,
	}
}

// WithLogger routes Debug diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRand injects an explicit random source. Panics on nil.
func WithRand(r Source) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed creates a deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithAnchor changes the node TopN force-includes.
func WithAnchor(id core.NodeID) Option {
	return func(o *Options) {
		o.Anchor = id
		o.UseAnchor = true
	}
}

// WithoutAnchor disables TopN's force-include.
func WithoutAnchor() Option {
	return func(o *Options) { o.UseAnchor = false }
}

// WithSortedNeighbors sorts copied neighbor lists ascending for presentation.
func WithSortedNeighbors() Option {
	return func(o *Options) { o.SortNeighbors = true }
}

func prepare(g *core.Graph, budget int, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return o, ErrGraphNil
	}
	if budget < 0 {
		return o, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}

	return o, nil
}
