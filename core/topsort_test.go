package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvkoval/digraph/core"
)

// position returns the index of v in order, or -1 if absent.
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// TestTopSort_EmptyGraph covers a graph with no nodes.
func TestTopSort_EmptyGraph(t *testing.T) {
	g := core.New()

	assert.Empty(t, g.TopSort())
	assert.True(t, g.Acyclic())
}

// TestTopSort_NoEdges checks that isolated nodes can come out in any order,
// but all of them come out.
func TestTopSort_NoEdges(t *testing.T) {
	g := core.New()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}

	order := g.TopSort()
	assert.ElementsMatch(t, []string{"A", "B", "C"}, order)
}

// TestTopSort_SimpleChain verifies the linear chain A→B→C yields [A,B,C] —
// the only valid order.
func TestTopSort_SimpleChain(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	assert.Equal(t, []string{"A", "B", "C"}, g.TopSort())
}

// TestTopSort_Diamond asserts only the ordering property on the diamond:
// several topological orders are valid, and the stack tie-break picks one.
// The test deliberately avoids pinning the concrete order among B and C.
func TestTopSort_Diamond(t *testing.T) {
	g := diamond(t)

	order := g.TopSort()
	require.Len(t, order, 4)
	assert.Less(t, position(order, "A"), position(order, "B"))
	assert.Less(t, position(order, "A"), position(order, "C"))
	assert.Less(t, position(order, "B"), position(order, "D"))
	assert.Less(t, position(order, "C"), position(order, "D"))
}

// TestTopSort_EveryEdgeRespected checks the topological validity property on
// a larger DAG with cross-links: for every edge (u,v), u precedes v.
func TestTopSort_EveryEdgeRespected(t *testing.T) {
	g := core.New()
	edges := [][2]string{
		{"V1", "V3"}, {"V1", "V2"}, {"V2", "V5"}, {"V3", "V5"},
		{"V2", "V4"}, {"V4", "V6"}, {"V5", "V7"}, {"V6", "V8"},
		{"V7", "V9"}, {"V8", "V10"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	order := g.TopSort()
	require.Len(t, order, 10)
	for _, e := range edges {
		u, v := e[0], e[1]
		assert.Less(t,
			position(order, u), position(order, v),
			"edge %s→%s should be respected", u, v,
		)
	}
}

// TestTopSort_CycleSignature verifies cycle detection by length: nodes on a
// cycle never reach in-degree zero and are never emitted.
func TestTopSort_CycleSignature(t *testing.T) {
	g := core.New()
	// cycle A→B→C→A, plus an independent node D
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("C", "A", 0))
	require.NoError(t, g.AddNode("D"))

	order := g.TopSort()
	assert.Less(t, len(order), g.NodeCount())
	assert.Equal(t, []string{"D"}, order)
	assert.False(t, g.Acyclic())
}

// TestTopSort_SelfLoopSignature verifies that a self-loop is a cycle too.
func TestTopSort_SelfLoopSignature(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("A", "A", 0))

	assert.Empty(t, g.TopSort())
	assert.False(t, g.Acyclic())
}

// TestTopSort_LargeChain verifies a 26-node chain comes out strictly ordered.
func TestTopSort_LargeChain(t *testing.T) {
	g := core.New()
	var ids []string
	for c := 'a'; c <= 'z'; c++ {
		ids = append(ids, string(c))
	}
	for i := 0; i < len(ids)-1; i++ {
		require.NoError(t, g.AddEdge(ids[i], ids[i+1], 0))
	}

	assert.Equal(t, ids, g.TopSort())
	assert.True(t, g.Acyclic())
}

// TestTopSort_Disconnected ensures every component is fully emitted and
// per-component ordering holds.
func TestTopSort_Disconnected(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("X", "Y", 0))
	require.NoError(t, g.AddEdge("A", "B", 0))

	order := g.TopSort()
	require.Len(t, order, 4)
	assert.Less(t, position(order, "X"), position(order, "Y"))
	assert.Less(t, position(order, "A"), position(order, "B"))
}

// TestTopSort_DoesNotMutate verifies the sort is a pure read: running it
// twice gives the same result and the graph keeps its edges.
func TestTopSort_DoesNotMutate(t *testing.T) {
	g := diamond(t)

	first := g.TopSort()
	second := g.TopSort()
	assert.Equal(t, first, second)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, fmt.Sprint(g), fmt.Sprint(g))
}
