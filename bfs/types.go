// Package bfs defines options and error definitions for breadth-first
// traversal over a core.Digraph.
package bfs

import "errors"

// Sentinel errors for BFS construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start ID is absent from the
	// graph. A start with zero children is valid and yields only itself.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// MaxDepth, if non-negative, stops exploring beyond this depth.
	// A value of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor can skip children by returning false.
	// Called for each edge curr→child before enqueueing.
	FilterNeighbor func(curr, child string) bool
}

// DefaultOptions returns an Options with sane defaults:
//   - no depth limit (MaxDepth == -1)
//   - no filtering (all children allowed)
func DefaultOptions() Options {
	return Options{
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
// A limit of 0 means only the start node is visited.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips children when fn returns false.
func WithFilterNeighbor(fn func(curr, child string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
