/*
Package engine implements a generic branch-and-bound search for minimum-depth
adaptive decision trees over three-outcome balance weighings.

The package knows nothing about any particular coin-weighing puzzle. It is
parametric in a Problem implementation (see Problem) that supplies the
initial state, the effect of a weighing on a state, and a termination test.
Given such a Problem, an Engine enumerates the weighings available at each
reachable state, expands the resulting state graph, and tightens lower and
upper bounds on each state's resolved depth until the root is resolved or a
caller-supplied depth cap is reached.

Describing a problem

A concrete problem (such as the one in package majority) plugs into the
engine by implementing Problem[S] for its own state type S:

	type Problem[S State] interface {
		MakeRoot() *S
		ApplyWeighing(s *S, w *Weighing, out *Partition) OutcomeArray[*S]
		IsSolved(s *S) bool
		PartitionOf(s *S) *Partition
	}

Running a search

	e := engine.New[majority.State](problem, engine.WithLogger[majority.State](logger))
	depthMin, depthMax := e.Solve(stopDepth)

Partitions and weighings are interned through a Cache so that equal values
share identity; the state graph itself is a DAG, since distinct weighing
sequences can converge on the same problem state.
*/
package engine
