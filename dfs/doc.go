// Package dfs implements depth-first search and connected components on a
// core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, cancellation
//     via context.Context, depth limiting, neighbor filtering and forest
//     traversal.
//   - Components: partitions every known node into connected components,
//     weak ones for directed graphs. The edgegraph stats command reports
//     their count and the size of the largest.
//
// Why:
//   - Sampling from a seed only ever sees the seed's component; knowing
//     component sizes up front tells whether a budget can be met at all.
//
// Complexity:
//
//	DFS:        Time O(V + E), Memory O(V)
//	Components: Time O(V + E), Memory O(V), plus O(V + E) for the
//	            undirected copy of a directed graph
//
// Example:
//
//	comps, _ := dfs.Components(g)
//	fmt.Println(len(comps), dfs.Largest(comps))
package dfs
