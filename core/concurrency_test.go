// Package core_test verifies that a built Graph can be read from many goroutines.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/edgegraph/core"
)

// TestConcurrentReads runs Neighbors/Edges/Stats in parallel; run with -race.
func TestConcurrentReads(t *testing.T) {
	b := core.NewBuilder()
	for i := core.NodeID(0); i < 500; i++ {
		b.AddEdge(i, (i+1)%500)
	}
	g := b.Build()

	const workers = 16
	counts := make([]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for _, id := range g.Nodes() {
				nbrs, err := g.Neighbors(id)
				if err == nil {
					counts[w] += len(nbrs)
				}
			}
			_ = g.Edges()
			_ = g.Stats()
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		assert.Equal(t, 1000, counts[w])
	}
}
