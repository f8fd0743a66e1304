// File: nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

import "sort"

// AddNode registers id if absent (idempotent).
//
// Validation is eager: the empty ID is rejected before any mutation, so a
// failed call leaves the graph exactly as it was.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
// Concurrency: write lock on mu.
func (g *Digraph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNode(id)

	return nil
}

// addNode bootstraps the adjacency bucket for id if missing.
// Callers must hold the mu write lock and have validated id.
func (g *Digraph) addNode(id string) {
	if _, exists := g.adjacency[id]; !exists {
		g.adjacency[id] = make(map[string]int64)
	}
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
//
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Digraph) HasNode(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns all node IDs in lexicographic ascending order.
//
// The spec of the structure makes no promise about a "meaningful" order; the
// sort exists so higher-level algorithms and tests get a stable enumeration
// surface (Go map iteration order is deliberately randomized).
//
// Complexity: O(V log V).
// Concurrency: read lock on mu.
func (g *Digraph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	var id string
	for id = range g.adjacency {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// NodeCount returns the current number of nodes in the graph.
//
// Prefer NodeCount() over len(Nodes()) to avoid the O(V log V) sorting cost.
//
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Digraph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
