// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Edge and Graph declarations, sentinel errors, graph options.

package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was passed where a graph is required.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a node with no entry.
	ErrNodeNotFound = errors.New("core: node not found")
)

// NodeID identifies a vertex. IDs are non-negative and need not be contiguous.
type NodeID uint64

// String renders the ID in base 10, the same form the edge-list format uses.
func (id NodeID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Edge is a pair of endpoints. For symmetric graphs the pair is unordered in
// meaning but each stored direction is reported as its own Edge.
type Edge struct {
	From NodeID
	To   NodeID
}

// Reverse returns the edge with endpoints swapped.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// GraphOption configures a Builder before any edge is added.
type GraphOption func(g *Graph)

// WithDirected selects the orientation policy.
// true records only source→target entries; false (default) mirrors every edge.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an immutable adjacency list keyed by NodeID.
//
// order holds keys in first-seen order; adj holds neighbor slices in
// edge-arrival order; entries counts adjacency entries across all keys.
type Graph struct {
	directed bool

	order   []NodeID
	adj     map[NodeID][]NodeID
	entries int
	edges   int // AddEdge calls that produced this graph
}

func newGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[NodeID][]NodeID)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
