// File: edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/EdgeCount.
// Determinism:
//   - At most one edge per (source, target); re-adding overwrites the weight.
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

// AddEdge records the directed edge source→target with the given weight,
// implicitly registering both endpoints if absent.
//
// Steps:
//  1. Validate IDs and weight (before any mutation — a failed call leaves
//     the graph untouched).
//  2. Lock mu, bootstrap both endpoint buckets.
//  3. Write adjacency[source][target] = weight, overwriting any prior weight
//     for that pair (no duplicate edges, ever).
//
// No cycle check happens here; plain digraphs may contain cycles and
// self-loops. Use dag.DAG when the acyclic invariant is required.
//
// Errors:
//   - ErrEmptyNodeID: if source or target is "".
//   - ErrBadWeight: if weight != 0 on an unweighted graph.
//
// Complexity: O(1) amortized.
// Concurrency: write lock on mu.
func (g *Digraph) AddEdge(source, target string, weight int64) error {
	// 1) Input validation
	if source == "" || target == "" {
		return ErrEmptyNodeID
	}
	if !g.weighted && weight != 0 { // weight constraint
		return ErrBadWeight
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure endpoints exist: every edge endpoint is a key of the adjacency
	// mapping (no dangling edges).
	g.addNode(source)
	g.addNode(target)

	// 3) Record the edge; overwrite semantics keep the pair unique.
	g.adjacency[source][target] = weight

	return nil
}

// HasEdge reports whether the edge source→target exists.
//
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Digraph) HasEdge(source, target string) bool {
	if source == "" || target == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[source][target]

	return ok
}

// Weight returns the weight stored for the edge source→target.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge is present (checked via errors.Is).
//
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Digraph) Weight(source, target string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[source][target]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// EdgeCount returns the total number of edges.
//
// Complexity: O(V).
// Concurrency: read lock on mu.
func (g *Digraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, targets := range g.adjacency {
		n += len(targets)
	}

	return n
}
