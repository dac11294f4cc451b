// Package dijkstra provides the single-source distance engine for unweighted
// edge-list graphs.
//
// Overview:
//
//   - Every node known to the graph (as a key or as any neighbor) starts at
//     Unreachable; the source starts at 0.
//   - A min-heap ordered by (distance, NodeID) finalizes nodes in
//     non-decreasing distance order.
//   - Relaxation: a neighbor's tentative distance is d+1; it is updated and
//     re-pushed only on strict improvement.
//   - Lazy decrease-key: old heap entries are left in place and discarded when
//     popped with a distance larger than the recorded best.
//   - Unreachable nodes stay in the result with the Unreachable sentinel.
//   - A source that is not a node of the graph yields an empty map.
//
// Path reconstruction between two nodes lives in bfs.ShortestPath; the
// predecessor map returned with WithReturnPath gives the same information for
// every node at once.
//
// Example:
//
//	dist, _, err := dijkstra.Dijkstra(g, 1)
//	if err != nil {
//	    return err
//	}
//	if dijkstra.Reachable(dist[4]) {
//	    fmt.Println("hops to 4:", dist[4])
//	}
package dijkstra
