// Package core provides the fundamental Digraph data structure:
// an in-memory directed graph with optional integer edge weights,
// node/edge insertion, neighborhood queries, Kahn topological sort,
// and a deterministic debug rendering.
//
// What:
//
//   - Digraph: sole owner of the adjacency mapping
//     (source ID → target ID → weight)
//   - Mutation: AddNode (idempotent), AddEdge (implicit endpoints,
//     overwrite-on-duplicate, no cycle check)
//   - Queries: Nodes, NodeCount, HasNode, Children/Successors,
//     Predecessors, HasEdge, Weight, EdgeCount
//   - Algorithms kept in-package because they are structural scans over the
//     owned mapping: TopSort (Kahn, stack work-list) and Acyclic
//
// Why:
//
//   - Model dependency relations (build steps, task schedules, imports)
//   - Provide the single query surface that the bfs, dfs and dag packages
//     read through — they never copy or shadow the adjacency state
//
// Design rules:
//
//   - Every edge endpoint is a key of the adjacency mapping: no dangling
//     edges, so traversals can trust Children() for any yielded node.
//   - At most one edge per (source, target) pair; re-insertion overwrites
//     the weight and never duplicates.
//   - Validation is eager and mutation is all-or-nothing: a call that
//     returns an error has not touched the graph.
//   - Enumerations (Nodes, Children, Predecessors) are sorted lex asc for
//     reproducible outputs; semantically they are sets.
//
// Complexity:
//
//   - AddNode/AddEdge/HasNode/HasEdge/Weight: O(1) amortized
//   - Children: O(d log d); Predecessors: O(V·avg-degree)
//   - TopSort/Acyclic: O(V log V + E)
//
// Errors:
//
//   - ErrEmptyNodeID  (invalid identifier, rejected before mutation)
//   - ErrNodeNotFound (reserved for callers layering stricter lookups)
//   - ErrEdgeNotFound (Weight on an absent pair)
//   - ErrBadWeight    (non-zero weight on an unweighted graph)
package core
