// Package dag provides a Directed Acyclic Graph: a core.Digraph whose edge
// insertion is guarded by a reachability check, so no sequence of successful
// AddEdge calls can ever close a directed cycle.
//
// What:
//
//   - DAG: embeds *core.Digraph; the entire query surface (Nodes, Children,
//     Predecessors, TopSort, String, ...) promotes unchanged
//   - AddEdge: runs PathExists(target, source) strictly before mutation and
//     refuses the edge with *CycleError when the reverse path exists
//   - PathExists: iterative stack-based reachability, short-circuiting the
//     moment the sought node is popped; self-loops are caught by the same
//     generic check, even on nodes not yet in the graph
//
// Why:
//
//   - Dependency graphs (build systems, schedulers, package managers) must
//     stay acyclic or ordering becomes undefined
//   - Rejection at insertion time gives strong safety: a failed AddEdge
//     leaves the graph byte-for-byte as it was
//
// Design:
//
//   - Composition over inheritance: the guard is a wrapper intercepting
//     AddEdge only; traversal and sorting stay free of cycle logic and read
//     the store's query surface directly
//
// Complexity:
//
//   - AddEdge / PathExists: Time O(V+E) worst case, Memory O(V)
//
// Errors:
//
//   - *CycleError            rejected edge, carries the (From, To) pair
//   - ErrCycleDetected       sentinel every CycleError unwraps to
//   - core.ErrEmptyNodeID    invalid identifier, checked eagerly
//   - core.ErrBadWeight      non-zero weight on an unweighted DAG
package dag
