package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvkoval/digraph/core"
)

// TestConcurrentMutationAndScan exercises the single-lock model: writers
// inserting edges race against readers running full-scan queries. The test
// asserts final counts only — the point is that no interleaving corrupts the
// adjacency or trips the race detector.
func TestConcurrentMutationAndScan(t *testing.T) {
	g := core.New()
	const writers, perWriter = 8, 50

	var wg sync.WaitGroup
	wg.Add(writers * 2)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = g.AddEdge(fmt.Sprintf("w%d-n%d", w, i), fmt.Sprintf("w%d-n%d", w, i+1), 0)
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = g.Predecessors("w0-n0")
				_ = g.TopSort()
				_ = g.Nodes()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, g.EdgeCount())
	assert.Equal(t, writers*(perWriter+1), g.NodeCount())
	assert.True(t, g.Acyclic())
}
