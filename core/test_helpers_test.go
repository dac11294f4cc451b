// Package core_test contains shared fixtures for core tests.
package core_test

import "github.com/katalvlaran/edgegraph/core"

// triangleWithTail is the graph used throughout the test suites:
//
//	1───2───4
//	 \ /
//	  3
func triangleWithTail(opts ...core.GraphOption) *core.Graph {
	return core.FromEdges([]core.Edge{{1, 2}, {2, 3}, {3, 1}, {2, 4}}, opts...)
}

func ids(xs ...uint64) []core.NodeID {
	out := make([]core.NodeID, len(xs))
	for i, x := range xs {
		out[i] = core.NodeID(x)
	}

	return out
}
