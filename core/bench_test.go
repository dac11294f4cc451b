package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/edgegraph/core"
)

// BenchmarkBuilder_RandomSparse measures ingestion of a sparse random edge list.
func BenchmarkBuilder_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 20000

	rnd := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, E)
	for i := range edges {
		edges[i] = core.Edge{From: core.NodeID(rnd.Intn(V)), To: core.NodeID(rnd.Intn(V))}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.FromEdges(edges)
	}
}
