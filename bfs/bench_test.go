package bfs_test

import (
	"fmt"
	"testing"

	"github.com/lvkoval/digraph/bfs"
	"github.com/lvkoval/digraph/core"
)

// BenchmarkBFS_Star10000 measures a full drain on a star graph: one hub with
// 10,000 children, so the whole frontier lives in the queue at once.
func BenchmarkBFS_Star10000(b *testing.B) {
	g := core.New()
	for i := 0; i < 10000; i++ {
		_ = g.AddEdge("hub", fmt.Sprintf("N%d", i), 0)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Order(g, "hub")
	}
}

// BenchmarkBFS_Chain10000 measures a full drain on a 10,000-edge chain.
func BenchmarkBFS_Chain10000(b *testing.B) {
	g := core.New()
	for i := 0; i < 10000; i++ {
		_ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), 0)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Order(g, "N0")
	}
}
