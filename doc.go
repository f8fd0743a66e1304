// Package digraph is a small in-memory playground for directed graphs:
// build them edge by edge, walk them lazily, sort them topologically,
// and — when you need the guarantee — keep them acyclic by construction.
//
// 🚀 What is digraph?
//
//	A compact, thread-safe, zero-dependency library built from three layers:
//		• core — the Digraph store: nodes, directed edges, optional weights,
//		  child/parent queries and Kahn topological sort
//		• bfs / dfs — lazy, pull-driven traversal iterators over the store
//		• dag — a cycle-rejecting wrapper that intercepts edge insertion
//		  with a reachability check, so the graph can never close a cycle
//
// ✨ Why choose digraph?
//
//   - Minimal API – a handful of methods, clear and intuitive naming
//   - Layered by design – traversal and sorting read only the store's
//     public query surface; cycle protection is a wrapper, not a subclass
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – node and neighbor enumeration is lexicographically
//     ordered, so outputs are stable across runs
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	a diamond DAG: four nodes, four directed edges, no cycle possible.
//
// Everything is organized under the subpackages:
//
//	core/     — fundamental Digraph type, mutation & query primitives, TopSort
//	bfs/ dfs/ — breadth-first and depth-first traversal iterators
//	dag/      — the acyclicity guard around core.Digraph
//
//	go get github.com/lvkoval/digraph
package digraph
