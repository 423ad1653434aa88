package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine drives the branch-and-bound search for a single Problem instance.
// An Engine owns its Cache and its state graph;
// neither is safe for concurrent use by more than one goroutine.
type Engine[S State] struct {
	problem Problem[S]
	cache   *Cache
	logger  zerolog.Logger

	states map[string]*status
	values map[string]*S
	order  []string // insertion order, exposed through VisitOrder
	root   string
}

// Option configures an Engine at construction time.
type Option[S State] func(*Engine[S])

// WithLogger sets the zerolog.Logger the engine uses for Debug-level
// expansion and bound-tightening traces. The default is a disabled logger,
// matching gophersat's Verbose-gated logging: tracing costs nothing unless
// explicitly turned on.
func WithLogger[S State](logger zerolog.Logger) Option[S] {
	return func(e *Engine[S]) { e.logger = logger }
}

// New builds an Engine for problem and registers its root state; nothing is
// expanded until Solve runs.
func New[S State](problem Problem[S], opts ...Option[S]) *Engine[S] {
	e := &Engine[S]{
		problem: problem,
		cache:   NewCache(),
		logger:  zerolog.Nop(),
		states:  make(map[string]*status),
		values:  make(map[string]*S),
	}
	for _, opt := range opts {
		opt(e)
	}
	root := problem.MakeRoot()
	e.root = e.ensureState(root).key
	return e
}

// Cache returns the engine's partition/weighing cache.
func (e *Engine[S]) Cache() *Cache { return e.cache }

// RootKey returns the key of the root state.
func (e *Engine[S]) RootKey() string { return e.root }

// StateByKey returns the problem state registered under key.
func (e *Engine[S]) StateByKey(key string) *S { return e.values[key] }

// ChildrenOf returns the children recorded for the state at key, or nil if
// the state has not been expanded yet.
func (e *Engine[S]) ChildrenOf(key string) []Child {
	st, ok := e.states[key]
	if !ok {
		return nil
	}
	return st.children
}

// Bounds returns the current (depthMin, depthMax) for the state at key.
func (e *Engine[S]) Bounds(key string) (uint8, uint8) {
	st := e.states[key]
	return st.depthMin, st.depthMax
}

// VisitOrder returns every known state key in the order it was first
// discovered, for deterministic reporting.
func (e *Engine[S]) VisitOrder() []string { return e.order }

// ensureState interns a newly produced problem state into the state graph,
// assigning it initial bounds: depth 0 if solved, otherwise depth_min = 1,
// depth_max = DepthInfinity.
func (e *Engine[S]) ensureState(s *S) *status {
	key := (*s).Key()
	if st, ok := e.states[key]; ok {
		return st
	}
	st := &status{key: key}
	if e.problem.IsSolved(s) {
		st.depthMax = 0
		st.depthMin = 0
	} else {
		st.depthMin = 1
		st.depthMax = DepthInfinity
	}
	e.states[key] = st
	e.values[key] = s
	e.order = append(e.order, key)
	return st
}

// Solve repeatedly tightens the root's bounds, by increasing target depth,
// until the root is resolved or depthMin reaches stopDepth. It returns the
// final (depthMin, depthMax) of the root.
func (e *Engine[S]) Solve(stopDepth uint8) (uint8, uint8) {
	runID := uuid.New()
	root := e.states[e.root]
	e.logger.Info().Str("run_id", runID.String()).Int("stop_depth", int(stopDepth)).Msg("search started")
	for !root.IsResolved() && root.depthMin < stopDepth {
		target := root.depthMin + 1
		e.improveNode(e.root, target)
		e.logger.Debug().Str("run_id", runID.String()).Uint8("depth_min", root.depthMin).Uint8("depth_max", root.depthMax).Msg("root bounds tightened")
	}
	e.logger.Info().Str("run_id", runID.String()).Uint8("depth_min", root.depthMin).Uint8("depth_max", root.depthMax).Bool("resolved", root.IsResolved()).Msg("search finished")
	return root.depthMin, root.depthMax
}

// expand gives a state its full complement of children. It is idempotent:
// subsequent calls on an already-expanded state are no-ops.
func (e *Engine[S]) expand(key string) {
	st := e.states[key]
	if st.expanded {
		return
	}
	st.expanded = true
	if st.IsSolvedNode() {
		return
	}

	state := e.values[key]
	partition := e.problem.PartitionOf(state)
	weighings := e.cache.Weighings(partition)

	seenChildSets := make(map[string]bool)
	worstChildMin := DepthInfinity

	for wi, w := range weighings {
		outcomes := e.problem.ApplyWeighing(state, w, w.OutPartition())

		noneCount := 0
		for _, o := range outcomes {
			if o == nil {
				noneCount++
			}
		}
		if noneCount >= 3 {
			panic(invariantf("expand", "weighing %d on %s produced no possible outcome", wi, partition))
		}
		if noneCount >= 2 {
			// The weighing gives no information: at most one outcome can
			// occur, so there is nothing left to distinguish.
			continue
		}

		var present [3]bool
		var keys [3]string
		for o, child := range outcomes {
			if child == nil {
				continue
			}
			present[o] = true
			keys[o] = e.ensureState(child).key
		}
		if w.IsSymmetric() {
			// Swapping pans reproduces the same weighing, so the
			// RightHeavier branch carries no new information.
			present[RightHeavier] = false
		}

		allSolved := true
		for o := range present {
			if !present[o] {
				continue
			}
			if !e.states[keys[o]].IsSolvedNode() {
				allSolved = false
				break
			}
		}
		if allSolved {
			st.children = []Child{{
				Weighing:      w,
				WeighingIndex: wi,
				OutPartition:  w.OutPartition(),
				Present:       present,
				Keys:          keys,
			}}
			st.depthMin, st.depthMax = 1, 1
			e.logger.Debug().Str("state", key).Int("weighing", wi).Msg("state solved in one weighing")
			return
		}

		dedupKey := childSetKey(present, keys)
		if seenChildSets[dedupKey] {
			continue
		}
		seenChildSets[dedupKey] = true

		st.children = append(st.children, Child{
			Weighing:      w,
			WeighingIndex: wi,
			OutPartition:  w.OutPartition(),
			Present:       present,
			Keys:          keys,
		})

		deepestOutcome := uint8(0)
		deepestInfinite := false
		for o := range present {
			if !present[o] {
				continue
			}
			c := e.states[keys[o]]
			if !c.IsResolved() && c.depthMin < worstChildMin {
				worstChildMin = c.depthMin
			}
			if c.depthMax == DepthInfinity {
				deepestInfinite = true
				continue
			}
			if c.depthMax > deepestOutcome {
				deepestOutcome = c.depthMax
			}
		}
		if !deepestInfinite && deepestOutcome+1 < st.depthMax {
			st.depthMax = deepestOutcome + 1
		}
	}

	allResolved := len(st.children) > 0
	for _, child := range st.children {
		for o := range child.Present {
			if !child.Present[o] {
				continue
			}
			if !e.states[child.Keys[o]].IsResolved() {
				allResolved = false
			}
		}
	}

	st.depthMin = minDepth(saturatingIncr(worstChildMin), st.depthMax)
	if allResolved {
		st.depthMin = st.depthMax
	}
}

// improveNode recursively expands and tightens bounds on the state at key
// until it is resolved or its depthMin reaches target.
func (e *Engine[S]) improveNode(key string, target uint8) {
	st := e.states[key]
	if st.IsResolved() || st.depthMin >= target {
		return
	}
	if !st.expanded {
		e.expand(key)
	}
	if st.IsResolved() || st.depthMin >= target {
		return
	}

	worstChildMin := DepthInfinity
	for _, child := range st.children {
		for o := range child.Present {
			if !child.Present[o] {
				continue
			}
			e.improveNode(child.Keys[o], target-1)
		}

		worstMax := uint8(0)
		anyInfinite := false
		for o := range child.Present {
			if !child.Present[o] {
				continue
			}
			c := e.states[child.Keys[o]]
			if c.depthMax == DepthInfinity {
				anyInfinite = true
				continue
			}
			if c.depthMax > worstMax {
				worstMax = c.depthMax
			}
		}
		if !anyInfinite && worstMax+1 < st.depthMax {
			st.depthMax = worstMax + 1
			if st.IsResolved() {
				return
			}
		}

		for o := range child.Present {
			if !child.Present[o] {
				continue
			}
			c := e.states[child.Keys[o]]
			if !c.IsResolved() && c.depthMin < worstChildMin {
				worstChildMin = c.depthMin
			}
		}
	}

	st.depthMin = minDepth(saturatingIncr(worstChildMin), st.depthMax)
}

// saturatingIncr adds one to d, staying at DepthInfinity if d is already
// infinite, so that bound arithmetic near the sentinel never wraps.
func saturatingIncr(d uint8) uint8 {
	if d == DepthInfinity {
		return DepthInfinity
	}
	return d + 1
}

func minDepth(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

// childSetKey builds the deduplication key for a weighing's set of present
// child states, used to suppress weighings that lead to an already-seen
// combination of outcomes.
func childSetKey(present [3]bool, keys [3]string) string {
	out := make([]string, 0, 3)
	for o := 0; o < 3; o++ {
		if present[o] {
			out = append(out, keys[o])
		} else {
			out = append(out, "")
		}
	}
	return out[0] + "|" + out[1] + "|" + out[2]
}
