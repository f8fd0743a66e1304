// Package core defines the central Digraph type and provides thread-safe
// primitives for building and querying directed graphs.
//
// All core APIs use a single sync.RWMutex internally, so mutating and
// structurally-scanning operations (insertion, predecessor scan, topological
// sort) are safe across goroutines: the lock is held for the full duration of
// every such operation.
//
// This file declares Digraph, Option, sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - requested node does not exist.
//	ErrEdgeNotFound - requested edge does not exist.
//	ErrBadWeight    - non-zero weight provided to an unweighted graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Option configures behavior of a Digraph before creation.
type Option func(g *Digraph)

// WithWeighted allows non-zero edge weights in the Digraph.
func WithWeighted() Option {
	return func(g *Digraph) { g.weighted = true }
}

// Digraph is the core in-memory directed-graph data structure.
//
// It is the sole owner of the adjacency mapping: every node ID is a key of
// adjacency, and adjacency[source][target] holds the weight of the single
// edge source→target. At most one edge exists per (source, target) pair;
// re-adding the pair overwrites the weight.
//
// Cycles and self-loops are legal at this layer. Acyclicity is layered on
// top by the dag package, which intercepts edge insertion only.
type Digraph struct {
	mu sync.RWMutex // guards adjacency; held for all mutating or scanning ops

	// Configuration flags
	weighted bool // allow non-zero weights

	// adjacency[(source)node ID][(target)node ID] = weight
	adjacency map[string]map[string]int64
}

// New creates an empty Digraph with the given options.
// By default the graph is unweighted: AddEdge rejects non-zero weights
// with ErrBadWeight unless WithWeighted() was supplied.
// Complexity: O(1)
func New(opts ...Option) *Digraph {
	g := &Digraph{
		adjacency: make(map[string]map[string]int64),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Digraph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}
