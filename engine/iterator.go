package engine

// frame is one level of an Iterator's path: the state being visited, which
// child weighing is current, and which outcome of that weighing is current.
// Keeping these on an explicit stack avoids self-referential tree nodes.
type frame struct {
	key        string
	childIndex int
	outcome    Outcome
}

// Iterator walks the DAG of states reachable from an engine's root,
// following the children recorded by the search. It is built for
// reporting only: it does not mutate the engine's state graph, and a state
// reached by more than one path is visited once per path (report prints
// such revisits by id reference only).
type Iterator struct {
	path  []frame
	e     interface{ childrenAndKey(string) ([]Child, bool) }
}

// childrenAndKey exposes just enough of Engine to Iterator without making
// Iterator generic over S: the DAG walk only needs child lists and state
// keys, never the problem-specific state value itself.
func (e *Engine[S]) childrenAndKey(key string) ([]Child, bool) {
	st, ok := e.states[key]
	if !ok {
		return nil, false
	}
	return st.children, true
}

// NewIterator starts an Iterator positioned at e's root state.
func NewIterator[S State](e *Engine[S]) *Iterator {
	return &Iterator{
		path: []frame{{key: e.root, childIndex: 0, outcome: LeftHeavier}},
		e:    e,
	}
}

// Current returns the key of the state the iterator is positioned at.
func (it *Iterator) Current() string {
	return it.path[len(it.path)-1].key
}

// Depth returns the number of weighings between the root and the current
// position.
func (it *Iterator) Depth() int { return len(it.path) - 1 }

// ParentKey returns the key of the state one level up from the current
// position, or ok=false at the root.
func (it *Iterator) ParentKey() (key string, ok bool) {
	if len(it.path) < 2 {
		return "", false
	}
	return it.path[len(it.path)-2].key, true
}

// ChildIndex returns the index, into the parent's Child list, of the
// weighing that reached the current position. It is only meaningful when
// Depth() > 0.
func (it *Iterator) ChildIndex() int { return it.path[len(it.path)-1].childIndex }

// Outcome returns the outcome of the weighing that reached the current
// position. It is only meaningful when Depth() > 0.
func (it *Iterator) Outcome() Outcome { return it.path[len(it.path)-1].outcome }

// AdvanceFirstChild descends to the first present outcome of the current
// state's first child weighing. It reports false if the current state has
// no children (it is a leaf or has not been expanded).
func (it *Iterator) AdvanceFirstChild() bool {
	children, ok := it.e.childrenAndKey(it.Current())
	if !ok || len(children) == 0 {
		return false
	}
	for o := Outcome(0); o < 3; o++ {
		if children[0].Present[o] {
			return it.descendTo(children, 0, o)
		}
	}
	return false
}

// AdvanceSibling moves to the next present outcome of the same weighing, or
// to the first present outcome of the next weighing if the current
// weighing is exhausted. It reports false if there is no such sibling.
func (it *Iterator) AdvanceSibling() bool {
	if len(it.path) < 2 {
		return false
	}
	parentKey := it.path[len(it.path)-2].key
	children, ok := it.e.childrenAndKey(parentKey)
	if !ok {
		return false
	}
	top := it.path[len(it.path)-1]
	it.path = it.path[:len(it.path)-1]

	childIndex, outcome := top.childIndex, top.outcome
	for o := outcome + 1; o < 3; o++ {
		if children[childIndex].Present[o] {
			return it.descendTo(children, childIndex, o)
		}
	}
	for ci := childIndex + 1; ci < len(children); ci++ {
		for o := Outcome(0); o < 3; o++ {
			if children[ci].Present[o] {
				return it.descendTo(children, ci, o)
			}
		}
	}
	it.path = append(it.path, top)
	return false
}

// AdvanceParent moves up one level, to the state that owns the current
// weighing. It reports false if already at the root.
func (it *Iterator) AdvanceParent() bool {
	if len(it.path) < 2 {
		return false
	}
	it.path = it.path[:len(it.path)-1]
	return true
}

// AdvancePrune ascends until a sibling exists, descends to it, and reports
// true; it reports false if no ancestor has a further sibling (the walk is
// complete).
func (it *Iterator) AdvancePrune() bool {
	for {
		if it.AdvanceSibling() {
			return true
		}
		if !it.AdvanceParent() {
			return false
		}
	}
}

func (it *Iterator) descendTo(children []Child, childIndex int, outcome Outcome) bool {
	child := children[childIndex]
	if !child.Present[outcome] {
		return false
	}
	it.path = append(it.path, frame{
		key:        child.Keys[outcome],
		childIndex: childIndex,
		outcome:    outcome,
	})
	return true
}
