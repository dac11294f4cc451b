package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgegraph/bfs"
	"github.com/katalvlaran/edgegraph/core"
)

// triangleWithTail: edges (1,2),(2,3),(3,1),(2,4), symmetric.
func triangleWithTail() *core.Graph {
	return core.FromEdges([]core.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}, {From: 2, To: 4}})
}

// chain builds 0-1-...-(n-1).
func chain(n int) *core.Graph {
	b := core.NewBuilder()
	for i := 0; i < n-1; i++ {
		b.AddEdge(core.NodeID(i), core.NodeID(i+1))
	}

	return b.Build()
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(triangleWithTail(), 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Scenario(t *testing.T) {
	res, err := bfs.BFS(triangleWithTail(), 1)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, res.Order)
	assert.Equal(t, map[core.NodeID]int{1: 0, 2: 1, 3: 1, 4: 2}, res.Depth)
	assert.Equal(t, core.NodeID(2), res.Parent[4])
	_, rootHasParent := res.Parent[1]
	assert.False(t, rootHasParent)
}

func TestBFS_AbsentStart(t *testing.T) {
	res, err := bfs.BFS(triangleWithTail(), 99)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{99}, res.Order)
}

func TestBFS_EmptyGraph(t *testing.T) {
	res, err := bfs.BFS(core.NewBuilder().Build(), 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, res.Order)
}

func TestBFS_Disconnected(t *testing.T) {
	g := core.FromEdges([]core.Edge{{From: 1, To: 2}, {From: 7, To: 8}, {From: 8, To: 9}})

	res, err := bfs.BFS(g, 8)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{8, 7, 9}, res.Order)
	assert.Len(t, res.Order, 3, "component size")
}

func TestBFS_VisitsEachNodeOnce(t *testing.T) {
	g := core.FromEdges([]core.Edge{
		{From: 0, To: 0}, {From: 0, To: 1}, {From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0},
	})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, res.Order)
}

func TestBFS_DirectedFollowsArcs(t *testing.T) {
	g := core.FromEdges([]core.Edge{{From: 1, To: 2}, {From: 3, To: 1}}, core.WithDirected(true))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := chain(4)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, res.Order)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(chain(3), 0,
		bfs.WithFilterNeighbor(func(curr, nbr core.NodeID) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, res.Order)
}

func TestBFS_Observers(t *testing.T) {
	var disc, vis []string
	entry := func(id core.NodeID, d int) string {
		return id.String() + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(chain(4), 0,
		bfs.WithMaxDepth(2),
		bfs.WithOnDiscover(func(id core.NodeID, d int) { disc = append(disc, entry(id, d)) }),
		bfs.WithOnVisit(func(id core.NodeID, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"0@0", "1@1", "2@2"}, disc)
	assert.Equal(t, []string{"0@0", "1@1", "2@2"}, vis)
}

func TestShortestPath_DiscoversBeyondVisits(t *testing.T) {
	var disc, vis int
	_, err := bfs.ShortestPath(triangleWithTail(), 1, 2,
		bfs.WithOnDiscover(func(core.NodeID, int) { disc++ }),
		bfs.WithOnVisit(func(core.NodeID, int) error { vis++; return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, disc, "1 then 2 and 3 from N(1)")
	assert.Equal(t, 2, vis, "walk ends once 2 is visited")
}

func TestBFS_OnVisitAborts(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS(chain(5), 0, bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(100), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() { _, err := bfs.BFS(g, 0); errs <- err }()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-errs)
	}
}

func TestResult_PathTo(t *testing.T) {
	res, err := bfs.BFS(triangleWithTail(), 1)
	require.NoError(t, err)

	path, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1}, path)

	_, err = res.PathTo(77)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}
