// File: topsort.go
// Role: Kahn topological sort over the adjacency mapping, plus Acyclic().
// Determinism:
//   - The work-list is a stack (last-inserted, first-removed) and is seeded
//     in lexicographic node order, so the algorithm itself is deterministic.
//     The *output* is one valid topological order among possibly many; do not
//     assume lexicographic or insertion order across independent nodes.
// Concurrency:
//   - Runs under a single mu read lock for its full duration (full scan).

package core

import "sort"

// TopSort returns a topological ordering of the graph via Kahn's algorithm.
//
// Steps:
//  1. Compute the in-degree of every node by one pass over all adjacency
//     entries.
//  2. Seed a work-list with every zero-in-degree node, in lexicographic
//     order.
//  3. While the work-list is non-empty: pop one node off the *end* (stack
//     policy), append it to the result, and decrement the in-degree of each
//     of its children, pushing any child that reaches zero.
//
// Every edge u→v has u strictly before v in the result. When the graph holds
// two or more independent zero-in-degree nodes, several topological orders
// are valid; the stack tie-break picks one of them — a deliberate policy,
// not an instability to be fixed.
//
// If the graph contains a cycle, the nodes on the cycle never reach in-degree
// zero and are never emitted: the result is shorter than NodeCount(). That
// short result is the detection signature — TopSort never errors.
//
// Complexity: O(V log V + E).
// Concurrency: read lock on mu, held across the whole computation.
func (g *Digraph) TopSort() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// 1) In-degree for every node (all nodes start at zero).
	inDegree := make(map[string]int, len(g.adjacency))
	var id, target string
	var targets map[string]int64
	for id = range g.adjacency {
		inDegree[id] = 0
	}
	for _, targets = range g.adjacency {
		for target = range targets {
			inDegree[target]++
		}
	}

	// 2) Seed the work-list with zero-in-degree nodes, lex asc for a
	//    deterministic starting point.
	worklist := make([]string, 0, len(g.adjacency))
	for id = range g.adjacency {
		if inDegree[id] == 0 {
			worklist = append(worklist, id)
		}
	}
	sort.Strings(worklist)

	// 3) Drain the work-list as a stack.
	order := make([]string, 0, len(g.adjacency))
	var node string
	var children []string
	for len(worklist) > 0 {
		node = worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		order = append(order, node)

		// Decrement children in lex order so pushes are deterministic too.
		children = sortedKeys(g.adjacency[node])
		for _, target = range children {
			inDegree[target]--
			if inDegree[target] == 0 {
				worklist = append(worklist, target)
			}
		}
	}

	return order
}

// Acyclic reports whether the graph contains no directed cycle.
// It relies on the TopSort signature: a cyclic graph yields a shorter
// ordering than NodeCount().
//
// Complexity: O(V log V + E).
func (g *Digraph) Acyclic() bool {
	return len(g.TopSort()) == g.NodeCount()
}

// sortedKeys returns the keys of targets in lexicographic ascending order.
// Callers must hold the mu lock.
func sortedKeys(targets map[string]int64) []string {
	if len(targets) == 0 {
		return nil
	}
	keys := make([]string, 0, len(targets))
	for k := range targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
