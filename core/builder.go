// File: builder.go
// Role: the only mutation surface; produces immutable Graphs.

package core

// Builder accumulates edges and hands out an immutable Graph on Build.
// A Builder is not safe for concurrent use.
type Builder struct {
	opts []GraphOption
	g    *Graph
}

// NewBuilder returns a Builder for an empty graph configured by opts.
func NewBuilder(opts ...GraphOption) *Builder {
	return &Builder{opts: opts, g: newGraph(opts...)}
}

// AddNode ensures id has an entry, appending it to the key order if new.
// It is a no-op for known nodes.
func (b *Builder) AddNode(id NodeID) {
	b.ensure(id)
}

// AddEdge records the edge from→to under the builder's orientation policy.
//
// Symmetric: to is appended to N(from) and from to N(to). A self-loop v→v is
// kept but stored as a single entry v in N(v), so it adds 1 to EdgeCount
// rather than 2. Directed: only to is appended to N(from), and to still gets
// an (possibly empty) entry. Parallel edges are kept.
func (b *Builder) AddEdge(from, to NodeID) {
	g := b.g
	b.ensure(from)
	b.ensure(to)

	g.adj[from] = append(g.adj[from], to)
	g.entries++
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], from)
		g.entries++
	}
	g.edges++
}

// Len reports the number of nodes added so far.
func (b *Builder) Len() int { return len(b.g.order) }

// Build returns the accumulated Graph and resets the Builder to a fresh,
// empty graph with the same options. The returned Graph is never written again.
func (b *Builder) Build() *Graph {
	out := b.g
	b.g = newGraph(b.opts...)

	return out
}

func (b *Builder) ensure(id NodeID) {
	if _, ok := b.g.adj[id]; ok {
		return
	}
	b.g.adj[id] = nil
	b.g.order = append(b.g.order, id)
}

// FromEdges is a convenience wrapper: it feeds edges to a new Builder in
// order and returns the built Graph.
func FromEdges(edges []Edge, opts ...GraphOption) *Graph {
	b := NewBuilder(opts...)
	for _, e := range edges {
		b.AddEdge(e.From, e.To)
	}

	return b.Build()
}
