// Package dag wraps core.Digraph with an acyclicity guard: every edge
// insertion runs a reachability check first and is refused with a CycleError
// when the reverse path already exists, so the wrapped graph can never hold a
// directed cycle.
//
// DAG is composition, not inheritance: it embeds *core.Digraph, so the whole
// query surface (Nodes, Children, Predecessors, TopSort, ...) promotes
// unchanged, and only AddEdge is intercepted. Traversals from the bfs and dfs
// packages read the embedded store directly and are agnostic to the guard.
//
// Complexity:
//
//   - AddEdge: O(V + E) worst case (one reachability DFS), O(1) on top of
//     core.AddEdge when the check misses early
//   - PathExists: O(V + E) worst case
package dag

import "github.com/lvkoval/digraph/core"

// DAG is a directed graph that preserves the acyclic invariant at insertion
// time. The zero value is not usable; construct with New.
//
// Individual operations are safe for concurrent use because the embedded
// store is lock-guarded, but AddEdge is check-then-insert across two lock
// acquisitions: concurrent *mutators* must serialize externally to keep the
// invariant. The structure is intended for single-threaded mutation.
type DAG struct {
	*core.Digraph
}

// New creates an empty DAG. Options are forwarded to the underlying store
// (e.g. core.WithWeighted()).
func New(opts ...core.Option) *DAG {
	return &DAG{Digraph: core.New(opts...)}
}

// AddEdge records source→target only if it cannot close a cycle.
//
// Steps:
//  1. Validate IDs and weight eagerly — the same checks core.AddEdge would
//     apply, pulled forward so an invalid call never pays for a reachability
//     search and the typed cycle error never masks a validation error.
//  2. Run PathExists(target, source): if source is already reachable from
//     target, the new edge would complete the loop target→…→source→target.
//     Refuse with *CycleError naming the rejected pair; the store is
//     untouched.
//  3. Delegate to the store's normal insertion.
//
// A self-loop (source == target) is rejected by the same generic check:
// PathExists pops target first and finds it equal to source immediately,
// prior edges or not.
//
// Errors:
//   - core.ErrEmptyNodeID: if source or target is "".
//   - core.ErrBadWeight: if weight != 0 on an unweighted graph.
//   - *CycleError (unwraps to ErrCycleDetected): if the edge would close a cycle.
func (d *DAG) AddEdge(source, target string, weight int64) error {
	// 1) Eager validation, before any reachability work or mutation.
	if source == "" || target == "" {
		return core.ErrEmptyNodeID
	}
	if !d.Weighted() && weight != 0 {
		return core.ErrBadWeight
	}

	// 2) Reachability guard: reverse path target→…→source means a cycle.
	if d.PathExists(target, source) {
		return &CycleError{From: source, To: target}
	}

	// 3) Safe: hand over to the store.
	return d.Digraph.AddEdge(source, target, weight)
}

// PathExists reports whether targetID is reachable from startID via one or
// more directed edges, or trivially when startID == targetID.
//
// It is the restricted depth-first search behind the guard: identical in
// structure to a dfs traversal, but it short-circuits true the moment
// targetID is popped, and drains to false otherwise. A startID absent from
// the graph reports no children and therefore no path — an edge's target may
// be brand new and cannot yet reach anything — except that the very first pop
// still compares startID against targetID, which is what catches self-loops
// on nodes that do not exist yet.
//
// Complexity: O(V + E) worst case.
func (d *DAG) PathExists(startID, targetID string) bool {
	stack := []string{startID}
	visited := make(map[string]bool)

	var node string
	for len(stack) > 0 {
		// Pop
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Short-circuit on the sought node
		if node == targetID {
			return true
		}
		if visited[node] {
			continue
		}
		visited[node] = true

		// Children of an absent node are empty: no special case needed.
		stack = append(stack, d.Children(node)...)
	}

	return false
}
