// File: render.go
// Role: Human-readable rendering of the full adjacency mapping.
// Determinism:
//   - Sources and targets are rendered in lexicographic ascending order.
// Concurrency:
//   - Read lock on mu for the duration of the render.

package core

import (
	"sort"
	"strconv"
	"strings"
)

// String renders the full adjacency mapping in a compact, deterministic,
// human-readable form, e.g.
//
//	digraph{A:[B C] B:[D] C:[D] D:[]}
//
// and, for weighted graphs,
//
//	digraph{A:[B=2 C=5] B:[] C:[]}
//
// The output is meant for diagnostics and logging only; it is not a
// parseable serialization format and its exact shape may evolve.
//
// Complexity: O(V log V + E log E).
func (g *Digraph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sources := make([]string, 0, len(g.adjacency))
	var id string
	for id = range g.adjacency {
		sources = append(sources, id)
	}
	// Stable output: sources lex asc, then targets lex asc per source.
	sort.Strings(sources)

	var b strings.Builder
	b.WriteString("digraph{")
	for i, source := range sources {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(source)
		b.WriteString(":[")
		for j, target := range sortedKeys(g.adjacency[source]) {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(target)
			if g.weighted {
				b.WriteByte('=')
				b.WriteString(strconv.FormatInt(g.adjacency[source][target], 10))
			}
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}
