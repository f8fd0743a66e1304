// Package bfs provides iterative, queue-based breadth-first traversal over a
// core.Digraph, exposed as a lazy pull-driven iterator producing standard
// level-order: the start node first, then every node at distance 1, then
// distance 2, and so on.
//
// The iterator shares the visited-set/yield/enqueue-children pattern of
// package dfs, with a FIFO queue in place of the stack. It is lazy (nothing
// runs until the caller pulls), non-restartable (build a fresh Iterator to
// traverse again), and cycle-safe (the visited set bounds the work on any
// finite graph).
//
// Complexity:
//
//   - Time:   O(V + E) across a full drain
//   - Memory: O(V) for the queue and visited set
package bfs

import "github.com/lvkoval/digraph/core"

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// Iterator is a lazy breadth-first traversal in progress, holding the FIFO
// queue and visited set as its state.
type Iterator struct {
	graph   *core.Digraph // read-only handle to the owning store
	opts    Options       // traversal options
	queue   []queueItem   // FIFO work queue
	visited map[string]bool
}

// New validates inputs and returns a fresh Iterator positioned before the
// first node. Each call starts a traversal from scratch.
//
// Errors:
//   - ErrGraphNil            if g is nil.
//   - ErrStartNodeNotFound   if startID is absent from the graph.
func New(g *core.Digraph, startID string, opts ...Option) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate start node
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	// Seed queue with the start node at depth 0
	return &Iterator{
		graph:   g,
		opts:    o,
		queue:   []queueItem{{id: startID, depth: 0}},
		visited: make(map[string]bool),
	}, nil
}

// Next advances the traversal by one node. It returns the next node ID and
// true, or "" and false once the queue has drained.
func (it *Iterator) Next() (string, bool) {
	for len(it.queue) > 0 {
		// 1. Dequeue from the front (FIFO)
		head := it.queue[0]
		it.queue = it.queue[1:]

		// 2. Skip duplicates: a node may be enqueued by several parents
		if it.visited[head.id] {
			continue
		}

		// 3. Mark visited, enqueue children, yield
		it.visited[head.id] = true
		it.enqueueChildren(head)

		return head.id, true
	}

	return "", false
}

// enqueueChildren appends every admissible child of head to the queue, in
// store-reported order. The store guarantees every child exists as a node.
func (it *Iterator) enqueueChildren(head queueItem) {
	if it.opts.MaxDepth >= 0 && head.depth >= it.opts.MaxDepth {
		return
	}

	for _, child := range it.graph.Children(head.id) {
		if it.opts.FilterNeighbor != nil && !it.opts.FilterNeighbor(head.id, child) {
			continue
		}
		it.queue = append(it.queue, queueItem{id: child, depth: head.depth + 1})
	}
}

// Order runs a full breadth-first traversal from startID and returns the
// level-order sequence eagerly. It is a convenience wrapper over New + Next.
//
// Complexity: O(V + E). Errors: as New.
func Order(g *core.Digraph, startID string, opts ...Option) ([]string, error) {
	it, err := New(g, startID, opts...)
	if err != nil {
		return nil, err
	}

	var order []string
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		order = append(order, id)
	}

	return order, nil
}
