package engine

import (
	"fmt"
	"testing"
)

// lopsidedState and lopsidedProblem exercise a state whose first child
// weighing's LeftHeavier outcome is impossible but RightHeavier and
// Balances are not — the general case for an asymmetric weighing, where
// nothing guarantees any particular outcome is present just because
// another one is.
type lopsidedState struct {
	id int
}

func (s lopsidedState) Key() string { return fmt.Sprintf("lopsided(%d)", s.id) }

type lopsidedProblem struct {
	cache *Cache
}

func (p *lopsidedProblem) MakeRoot() *lopsidedState { return &lopsidedState{id: 0} }

func (p *lopsidedProblem) PartitionOf(s *lopsidedState) *Partition {
	return p.cache.InternPartition([]int{1, 2})
}

func (p *lopsidedProblem) IsSolved(s *lopsidedState) bool { return false }

func (p *lopsidedProblem) ApplyWeighing(s *lopsidedState, w *Weighing, out *Partition) OutcomeArray[*lopsidedState] {
	var result OutcomeArray[*lopsidedState]
	if w.IsSymmetric() {
		result[LeftHeavier] = &lopsidedState{id: s.id*10 + 1}
		result[Balances] = &lopsidedState{id: s.id*10 + 2}
		return result
	}
	// The asymmetric weighing: LeftHeavier never occurs for this state,
	// only RightHeavier and Balances do.
	result[RightHeavier] = &lopsidedState{id: s.id*10 + 3}
	result[Balances] = &lopsidedState{id: s.id*10 + 4}
	return result
}

func TestAdvanceFirstChildSkipsAbsentLeftHeavier(t *testing.T) {
	cache := NewCache()
	problem := &lopsidedProblem{cache: cache}
	e := New[lopsidedState](problem)
	e.expand(e.RootKey())

	children := e.ChildrenOf(e.RootKey())
	if len(children) == 0 {
		t.Fatalf("expected the root to have at least one child weighing")
	}
	if children[0].Present[LeftHeavier] {
		t.Fatalf("test setup invariant broken: children[0] must have LeftHeavier absent")
	}
	if !children[0].Present[RightHeavier] {
		t.Fatalf("test setup invariant broken: children[0] must have RightHeavier present")
	}

	it := NewIterator[lopsidedState](e)
	if !it.AdvanceFirstChild() {
		t.Fatalf("AdvanceFirstChild returned false even though children[0] has a present outcome (RightHeavier)")
	}
	if got := it.Outcome(); got != RightHeavier {
		t.Fatalf("AdvanceFirstChild landed on outcome %v, want RightHeavier", got)
	}
	if it.ChildIndex() != 0 {
		t.Fatalf("AdvanceFirstChild landed on child index %d, want 0", it.ChildIndex())
	}
	parentKey, ok := it.ParentKey()
	if !ok || parentKey != e.RootKey() {
		t.Fatalf("ParentKey() = (%q, %v), want (%q, true)", parentKey, ok, e.RootKey())
	}
}

// TestAdvanceSiblingWalksPresentOutcomesOnly checks that, after landing on
// children[0]'s first present outcome, AdvanceSibling visits the rest of
// the DAG (the remaining present outcome of the same weighing, then the
// first present outcome of the next weighing) without ever landing on an
// absent outcome.
func TestAdvanceSiblingWalksPresentOutcomesOnly(t *testing.T) {
	cache := NewCache()
	problem := &lopsidedProblem{cache: cache}
	e := New[lopsidedState](problem)
	e.expand(e.RootKey())

	type visit struct {
		childIndex int
		outcome    Outcome
	}
	var visited []visit

	it := NewIterator[lopsidedState](e)
	if !it.AdvanceFirstChild() {
		t.Fatalf("AdvanceFirstChild failed on the root")
	}
	visited = append(visited, visit{it.ChildIndex(), it.Outcome()})
	for it.AdvanceSibling() {
		visited = append(visited, visit{it.ChildIndex(), it.Outcome()})
	}

	children := e.ChildrenOf(e.RootKey())
	for _, v := range visited {
		if !children[v.childIndex].Present[v.outcome] {
			t.Fatalf("visited child %d outcome %v, but it is not present", v.childIndex, v.outcome)
		}
	}

	wantCount := 0
	for _, c := range children {
		for o := range c.Present {
			if c.Present[o] {
				wantCount++
			}
		}
	}
	if len(visited) != wantCount {
		t.Fatalf("visited %d outcomes, want %d (every present outcome exactly once)", len(visited), wantCount)
	}
}
