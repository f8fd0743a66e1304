// Package dfs implements depth-first traversal over a core.Digraph as a
// lazy, pull-driven iterator.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking, iteratively via an explicit LIFO stack.
//     Supports:
//   - Depth limiting
//   - Neighbor filtering
//   - Iterator: one node per Next() call; consumption is driven entirely
//     by the caller, with no background production and no buffering of the
//     full result
//   - Order: eager convenience collector over New + Next
//
// Why:
//
//   - Walk dependency structures (build steps, imports, task graphs)
//   - Feed reachability-style analyses without materializing full results
//   - Terminate on cyclic inputs: the visited set bounds the work, so
//     traversal never requires acyclicity
//
// Ordering contract:
//
//   - Children are pushed in store-reported (lex asc) order and popped in
//     reverse, so siblings are visited in reverse of the listed order at
//     each branch point. Preserved intentionally — callers and tests may
//     rely on it.
//
// Key Types:
//
//   - Iterator: holds the stack and visited set; non-restartable
//   - Option / Options: functional options (WithMaxDepth, WithFilterNeighbor)
//
// Complexity:
//
//   - Full drain: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrStartNodeNotFound   start node ID not in graph
package dfs
