// Package dfs defines types and options for depth-first traversal:
// depth limiting, neighbor filtering, and the sentinel errors shared by
// the iterator constructor and the eager Order collector.
package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Digraph is passed to New or Order.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node ID does not
	// exist in the graph. A node with zero children is not this case: it is a
	// valid start yielding a single-element traversal.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of the traversal.
// Use with New(g, startID, opts...) or Order(g, startID, opts...).
type Option func(*Options)

// Options holds configurable parameters for depth-first traversal.
// Complexity stays O(V+E) when the filter is O(1).
type Options struct {
	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted for each child ID before it is
	// pushed. Return true to allow the child, false to skip it.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns an Options struct with:
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() Options {
	return Options{
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters child IDs.
// If fn(id) == false, that child is never pushed onto the stack.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
