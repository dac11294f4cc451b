// Package bfs provides breadth-first search over a core.Graph, returning the
// visit order, hop distances and parent links, plus fewest-hop path
// reconstruction between two nodes.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start node.
//     Returns a Result containing:
//   - Order: visit sequence (always complete; truncation is a caller concern)
//   - Depth: map from node → hops from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - ShortestPath reconstructs a start→end path and stops expanding as soon
//     as end is dequeued.
//   - Two observers: OnDiscover (node first reached) and OnVisit (node
//     appended to Order; a returned error aborts the walk). The CLI bfs
//     command logs visits at Debug level through OnVisit.
//   - Allows filtering of individual adjacency entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, which core keeps as edge
//	arrival order, so the visit sequence is fully reproducible for a given
//	input file.
//
// Edge cases
//
//   - A start node absent from the graph yields Order == [start]; it is not an error.
//   - Self-loops and parallel edges need no special handling: visitation is
//     tracked per node, not per edge.
//
// Complexity (V = |nodes|, E = |adjacency entries|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	path, err := bfs.ShortestPath(g, 1, 4) // [1 2 4], or nil when unreachable
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               on cancellation via WithContext.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
