// Package edgegraph loads large plain-text edge lists into an immutable
// adjacency graph and explores them: traversal, hop distances, shortest
// paths, components and sampling down to something small enough to draw.
//
// Packages:
//
//	core/      immutable Graph, NodeID, Edge and the Builder that produces them
//	edgelist/  tolerant or strict "u v" line reader (SNAP headers supported) and writer
//	bfs/       breadth-first traversal with hooks, and fewest-hop ShortestPath
//	dijkstra/  single-source hop distances with a binary heap (unit weights)
//	dfs/       iterative depth-first search and connected components
//	sample/    connected, top-n and uniform random sampling, induced edge lists
//	builder/   deterministic synthetic edge lists for tests, benchmarks and demos
//
// The edgegraph command (cmd/edgegraph) wires these together behind a
// cobra CLI configured through flags, EDGEGRAPH_* variables or edgegraph.yaml.
//
// Quick start:
//
//	g, err := edgelist.ReadFile("amazon0302.txt", edgelist.WithCommentPrefix("#"))
//	if err != nil { ... }
//	set, _ := sample.Connected(g, 0, 15)
//	edges := sample.InducedEdges(g, set)
//	_ = edgelist.WriteFile("sample.txt", edges)
//
// All algorithms only read the Graph, so one Graph may be shared by many
// goroutines once built.
package edgegraph
