// Package dfs implements iterative, stack-based depth-first traversal over a
// core.Digraph, exposed as a lazy pull-driven iterator.
//
// Key properties:
//   - Lazy: nothing is explored until the caller pulls via Next; the caller
//     may simply stop pulling — there is no cancellation primitive to wire.
//   - Non-restartable: an Iterator holds its stack and visited set as live
//     state; a consumed sequence cannot be rewound. Build a fresh Iterator to
//     traverse again from scratch.
//   - Cycle-safe: the visited set guarantees termination on any finite graph,
//     cyclic or not — traversal does not require acyclicity.
//
// Visitation order: children are pushed in store-reported (lexicographic
// ascending) order and popped in reverse, so siblings are visited in the
// reverse of the store's listed order at each branch point. That order is
// part of the contract, not an accident to be "corrected" to pre-order.
//
// Complexity:
//
//   - Time:   O(V + E) across a full drain (plus filter overhead)
//   - Memory: O(V) for the stack and visited set
package dfs

import "github.com/lvkoval/digraph/core"

// item pairs a node ID with the depth at which it was pushed.
type item struct {
	id    string
	depth int
}

// Iterator is a lazy depth-first traversal in progress. It holds the explicit
// stack and visited set as its state; see the package documentation for the
// restartability and ordering contract.
type Iterator struct {
	graph   *core.Digraph // read-only handle to the owning store
	opts    Options       // traversal options
	stack   []item        // LIFO work stack
	visited map[string]bool
}

// New validates inputs and returns a fresh Iterator positioned before the
// first node. Each call starts a traversal from scratch.
//
// Errors:
//   - ErrGraphNil             if g is nil.
//   - ErrStartNodeNotFound    if startID is absent from the graph.
func New(g *core.Digraph, startID string, opts ...Option) (*Iterator, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Verify startID: an unknown start is an error, a childless start is not.
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	// 4. Seed the stack with the start node at depth 0
	return &Iterator{
		graph:   g,
		opts:    o,
		stack:   []item{{id: startID, depth: 0}},
		visited: make(map[string]bool),
	}, nil
}

// Next advances the traversal by one node. It returns the next node ID and
// true, or "" and false once every node reachable from the start (under the
// configured limits) has been yielded.
func (it *Iterator) Next() (string, bool) {
	for len(it.stack) > 0 {
		// 1. Pop the top of the stack
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		// 2. Skip nodes already visited (a node may sit on the stack twice)
		if it.visited[top.id] {
			continue
		}

		// 3. Mark visited, push children, yield
		it.visited[top.id] = true
		it.pushChildren(top)

		return top.id, true
	}

	return "", false
}

// pushChildren pushes every admissible child of top onto the stack, in
// store-reported order. Children always exist in the graph — the store
// guarantees no dangling edges — so no lookup can fail here.
func (it *Iterator) pushChildren(top item) {
	// Depth limit: children beyond MaxDepth are never pushed.
	if it.opts.MaxDepth >= 0 && top.depth >= it.opts.MaxDepth {
		return
	}

	for _, child := range it.graph.Children(top.id) {
		if it.opts.FilterNeighbor != nil && !it.opts.FilterNeighbor(child) {
			continue
		}
		it.stack = append(it.stack, item{id: child, depth: top.depth + 1})
	}
}

// Order runs a full depth-first traversal from startID and returns the
// visitation order eagerly. It is a convenience wrapper over New + Next.
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
