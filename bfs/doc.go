// Package bfs implements breadth-first traversal over a core.Digraph as a
// lazy, pull-driven iterator producing standard level-order.
//
// What:
//
//   - BFS (Breadth-First Search): visits the start node, then every node at
//     distance 1, then distance 2, and so on, via an explicit FIFO queue.
//     Supports:
//   - Depth limiting
//   - Neighbor filtering (per edge curr→child)
//   - Iterator: one node per Next() call, no buffering of the full result
//   - Order: eager convenience collector over New + Next
//
// Why:
//
//   - Level-by-level exploration of dependency structures
//   - Nearest-first reachability without materializing the whole frontier
//   - Terminates on cyclic inputs thanks to the visited set
//
// Key Types:
//
//   - Iterator: holds the queue and visited set; non-restartable
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
package bfs
