// File: adjacent.go
// Role: Neighborhood APIs (Children, Successors, Predecessors).
// Determinism:
//   - Children()/Successors() return unique IDs sorted lex asc.
//   - Predecessors() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold the mu read lock for their full duration;
//     Predecessors is a full adjacency scan and must not interleave with
//     mutation.

package core

import "sort"

// Children returns the set of direct out-neighbors of id, enumerated in
// lexicographic ascending order.
//
// The result carries set semantics: membership is what matters, the sort is
// only a stable enumeration surface. An absent id yields an empty (nil)
// slice, not an error — "node with no children" and "no such node" are
// indistinguishable here by design; traversal entry points are the layer
// that distinguishes them.
//
// Complexity: O(d log d), where d is the out-degree of id.
// Concurrency: read lock on mu.
func (g *Digraph) Children(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	targets := g.adjacency[id]
	if len(targets) == 0 {
		return nil
	}

	out := make([]string, 0, len(targets))
	var t string
	for t = range targets {
		out = append(out, t)
	}

	sort.Strings(out)

	return out
}

// Successors returns all nodes directly reachable from id, sorted
// lexicographically ascending. It is the historical alias of Children and
// shares its semantics exactly.
func (g *Digraph) Successors(id string) []string {
	return g.Children(id)
}

// Degree returns the degree components of the given node ID:
//
//   - in: number of incoming edges (full adjacency scan, like Predecessors)
//   - out: number of outgoing edges
//
// A self-loop id→id contributes +1 to both components.
//
// Errors:
//   - ErrEmptyNodeID: if id is empty.
//   - ErrNodeNotFound: if the node does not exist in the graph.
//
// Complexity: O(V·avg-degree).
// Concurrency: read lock on mu.
func (g *Digraph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	targets, ok := g.adjacency[id]
	if !ok {
		return 0, 0, ErrNodeNotFound
	}
	out = len(targets)
	for _, ts := range g.adjacency {
		if _, hit := ts[id]; hit {
			in++
		}
	}

	return in, out, nil
}

// Predecessors returns all nodes with an edge targeting id, sorted
// lexicographically ascending.
//
// The adjacency mapping indexes outgoing edges only, so this is a full scan
// of every adjacency entry — no reverse index is maintained.
//
// Complexity: O(V·avg-degree) scan + O(p log p) sort, p = in-degree of id.
// Concurrency: read lock on mu, held across the whole scan.
func (g *Digraph) Predecessors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	var source string
	var targets map[string]int64
	for source, targets = range g.adjacency {
		if _, ok := targets[id]; ok {
			out = append(out, source)
		}
	}

	sort.Strings(out)

	return out
}
