package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgegraph/core"
)

func TestBuilder_SymmetricInvariant(t *testing.T) {
	edges := []core.Edge{{1, 2}, {2, 3}, {3, 1}, {2, 4}, {7, 7}, {1, 2}}
	g := core.FromEdges(edges)

	for _, e := range edges {
		fwd, err := g.Neighbors(e.From)
		require.NoError(t, err)
		assert.Contains(t, fwd, e.To, "%d must list %d", e.From, e.To)

		back, err := g.Neighbors(e.To)
		require.NoError(t, err)
		assert.Contains(t, back, e.From, "%d must list %d", e.To, e.From)
	}
}

func TestBuilder_NeighborOrderIsArrivalOrder(t *testing.T) {
	g := triangleWithTail()

	n1, _ := g.Neighbors(1)
	n2, _ := g.Neighbors(2)
	n3, _ := g.Neighbors(3)
	n4, _ := g.Neighbors(4)
	assert.Equal(t, ids(2, 3), n1)
	assert.Equal(t, ids(1, 3, 4), n2)
	assert.Equal(t, ids(2, 1), n3)
	assert.Equal(t, ids(2), n4)
	assert.Equal(t, ids(1, 2, 3, 4), g.Nodes())
}

func TestBuilder_ParallelEdgesAndLoopsKept(t *testing.T) {
	g := core.FromEdges([]core.Edge{{1, 2}, {1, 2}, {5, 5}})

	n1, _ := g.Neighbors(1)
	assert.Equal(t, ids(2, 2), n1)
	n5, _ := g.Neighbors(5)
	assert.Equal(t, ids(5), n5, "self-loop is a single entry")
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 3, g.SourceEdgeCount())
}

func TestBuilder_DirectedForcesTargetEntry(t *testing.T) {
	g := core.FromEdges([]core.Edge{{1, 2}, {1, 3}, {2, 3}}, core.WithDirected(true))

	require.True(t, g.Directed())
	require.True(t, g.HasNode(3))
	n3, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Empty(t, n3)
	n1, _ := g.Neighbors(1)
	assert.Equal(t, ids(2, 3), n1)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuilder_BuildResets(t *testing.T) {
	b := core.NewBuilder(core.WithDirected(true))
	b.AddEdge(1, 2)
	b.AddNode(9)
	assert.Equal(t, 3, b.Len())

	g := b.Build()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, ids(1, 2, 9), g.Nodes())

	b.AddEdge(5, 6)
	h := b.Build()
	assert.True(t, h.Directed(), "options survive Build")
	assert.False(t, g.HasNode(5), "earlier graph is untouched")
}

func TestNeighbors_Unknown(t *testing.T) {
	g := triangleWithTail()
	_, err := g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, 0, g.Degree(42))
}

func TestEdges_ReportsEveryEntry(t *testing.T) {
	g := core.FromEdges([]core.Edge{{1, 2}, {2, 3}})
	assert.Equal(t, []core.Edge{{1, 2}, {2, 1}, {2, 3}, {3, 2}}, g.Edges())
}

func TestKnownNodes(t *testing.T) {
	g := triangleWithTail(core.WithDirected(true))
	assert.ElementsMatch(t, ids(1, 2, 3, 4), g.KnownNodes())
}

func TestRange_StopsEarly(t *testing.T) {
	g := triangleWithTail()
	var seen []core.NodeID
	g.Range(func(id core.NodeID, _ []core.NodeID) bool {
		seen = append(seen, id)
		return len(seen) < 2
	})
	assert.Equal(t, ids(1, 2), seen)
}

func TestStats(t *testing.T) {
	b := core.NewBuilder()
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddNode(10)
	s := b.Build().Stats()

	assert.Equal(t, core.Stats{Nodes: 4, Entries: 4, SourceEdges: 2, Isolated: 1, MaxDegree: 2}, s)
}

func TestInducedSubgraph(t *testing.T) {
	g := triangleWithTail()
	keep := map[core.NodeID]bool{1: true, 2: true, 4: true}
	sub := core.InducedSubgraph(g, func(id core.NodeID) bool { return keep[id] })

	assert.Equal(t, ids(1, 2, 4), sub.Nodes())
	n2, _ := sub.Neighbors(2)
	assert.Equal(t, ids(1, 4), n2)
	assert.Equal(t, 4, sub.EdgeCount())
	assert.Equal(t, 8, g.EdgeCount(), "source graph is untouched")
}

func TestNodeID_String(t *testing.T) {
	assert.Equal(t, "18446744073709551615", core.NodeID(^uint64(0)).String())
	assert.Equal(t, core.Edge{From: 2, To: 1}, core.Edge{From: 1, To: 2}.Reverse())
}
