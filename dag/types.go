// Package dag defines the DAG wrapper type's error surface.
package dag

import (
	"errors"
	"fmt"
)

// ErrCycleDetected is the sentinel every rejected edge unwraps to.
// Check it with errors.Is; use errors.As with *CycleError to recover the
// offending (From, To) pair.
var ErrCycleDetected = errors.New("dag: cycle detected")

// CycleError reports an edge insertion that would have closed a cycle.
// The graph is left exactly as it was before the call: the reachability
// check runs strictly before any mutation.
type CycleError struct {
	// From is the source of the rejected edge.
	From string

	// To is the target of the rejected edge.
	To string
}

// Error renders the rejected edge.
func (e *CycleError) Error() string {
	return fmt.Sprintf("dag: adding edge %s→%s would create a cycle", e.From, e.To)
}

// Unwrap makes errors.Is(err, ErrCycleDetected) hold for every CycleError.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }
