package engine

import "fmt"

// InvariantError reports a violation of one of the engine's contract
// invariants. The engine panics with one when a weighing leaves no outcome
// possible; it does not check weighing conservation, partition shape, or
// whether a Problem's results are canonical and deterministic. These are
// treated as fatal: they can only be
// caused by a programming error in the engine or its plug-in, never by
// input data, so the engine does not attempt to recover from them.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine: invariant violated in %s: %s", e.Op, e.Msg)
}

func invariantf(op, format string, args ...any) *InvariantError {
	return &InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
