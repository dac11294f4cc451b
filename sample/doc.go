// Package sample derives reduced node and edge sets from a core.Graph so a
// large edge list can be shrunk to something a renderer can draw.
//
// Strategies (independent; none mutates the source graph):
//
//	Connected(g, seed, budget)  bounded BFS from seed. The result, when larger
//	                            than one node, induces a connected subgraph
//	                            containing seed. Size is min(budget, |component|).
//
//	TopN(g, n)                  the first n keys in key order plus an anchor
//	                            (node 0 unless overridden). NODE-INDUCED: each
//	                            selected node keeps its full neighbor list, so
//	                            the Subgraph may reference nodes that have no
//	                            entry of their own (see Subgraph.Dangling).
//
//	Random(g, budget)           up to budget distinct keys drawn uniformly at
//	                            random, ignoring connectivity.
//
//	RandomSubgraph(g, budget)   Random, returned as a node-induced Subgraph.
//
//	InducedEdges(g, set)        EDGE-INDUCED: keeps an adjacency entry (u, v)
//	                            only when both u and v are in set. Each stored
//	                            direction is kept independently.
//
// TopN and InducedEdges differ on purpose: TopN never filters neighbors,
// InducedEdges always does. Pair Random or Connected with InducedEdges to get
// an edge list whose endpoints are all sampled.
//
// Randomness: Random draws from the process-wide math/rand generator unless
// WithRand or WithSeed injects a source, which tests should always do.
package sample
