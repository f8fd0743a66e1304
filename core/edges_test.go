package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvkoval/digraph/core"
)

// TestAddEdge_ImplicitNodes verifies that both endpoints are registered by
// edge insertion alone (no dangling edges).
func TestAddEdge_ImplicitNodes(t *testing.T) {
	g := core.New()

	require.NoError(t, g.AddEdge("A", "B", 0))

	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("B"))
	assert.True(t, g.HasEdge("A", "B"))
	// Direction matters: the reverse edge does not exist.
	assert.False(t, g.HasEdge("B", "A"))
}

// TestAddEdge_EmptyEndpoint verifies eager validation of both endpoints with
// no partial mutation.
func TestAddEdge_EmptyEndpoint(t *testing.T) {
	g := core.New()

	assert.ErrorIs(t, g.AddEdge("", "B", 0), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddEdge("A", "", 0), core.ErrEmptyNodeID)
	// Neither call may have registered anything.
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

// TestAddEdge_BadWeight verifies that an unweighted graph rejects non-zero
// weights before touching the adjacency.
func TestAddEdge_BadWeight(t *testing.T) {
	g := core.New() // unweighted by default

	err := g.AddEdge("A", "B", 5)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.Zero(t, g.NodeCount())
}

// TestAddEdge_OverwriteWeight verifies the at-most-one-edge-per-pair
// invariant: re-inserting the pair overwrites the weight, never duplicates.
func TestAddEdge_OverwriteWeight(t *testing.T) {
	g := core.New(core.WithWeighted())

	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("A", "B", 7))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"B"}, g.Children("A"))
}

// TestWeight_MissingEdge verifies the ErrEdgeNotFound sentinel.
func TestWeight_MissingEdge(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, err := g.Weight("B", "A")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.Weight("A", "missing")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestAddEdge_SelfLoopAllowedInStore verifies that the plain store accepts a
// self-loop; only the dag wrapper refuses cycles.
func TestAddEdge_SelfLoopAllowedInStore(t *testing.T) {
	g := core.New()

	require.NoError(t, g.AddEdge("A", "A", 0))
	assert.True(t, g.HasEdge("A", "A"))
	assert.Equal(t, 1, g.NodeCount())
}

// TestEdgeCount sums outgoing buckets across all sources.
func TestEdgeCount(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("A", "C", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	assert.Equal(t, 3, g.EdgeCount())
}

// TestWeighted reports the construction-time capability flag.
func TestWeighted(t *testing.T) {
	assert.False(t, core.New().Weighted())
	assert.True(t, core.New(core.WithWeighted()).Weighted())
}
