package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wihd/balance/engine"
)

// TextOptions configures Text.
type TextOptions struct {
	// HappyPath restricts the walk to a single optimal weighing per state
	// instead of every weighing the engine kept.
	HappyPath bool
}

// describer is implemented by plug-in states that want their surviving
// possibilities summarized in the report; states that don't implement it
// are reported by key alone.
type describer interface {
	Describe() string
}

// Text writes a hierarchical dump of e's state graph to w: one Manager
// block, the root state, then a recursive listing of weighings and their
// outcome children. Each state gets a monotone id on first appearance and
// is referenced by that id on every later appearance.
func Text[S engine.State](e *engine.Engine[S], w io.Writer, opts TextOptions) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Manager { states_visited: %d }\n", len(e.VisitOrder()))

	reg := newIDRegistry()
	rootKey := e.RootKey()
	writeStateHeader(bw, e, reg, rootKey, 0)

	if opts.HappyPath {
		walkHappyPath(bw, e, reg, rootKey, 0)
	} else {
		walkFull(bw, e, reg)
	}
	return bw.Flush()
}

// idRegistry assigns monotone ids to state keys on first appearance.
type idRegistry struct {
	ids  map[string]int
	next int
}

func newIDRegistry() *idRegistry {
	return &idRegistry{ids: make(map[string]int), next: 1}
}

func (r *idRegistry) assign(key string) (id int, first bool) {
	if id, ok := r.ids[key]; ok {
		return id, false
	}
	id = r.next
	r.next++
	r.ids[key] = id
	return id, true
}

func writeStateHeader[S engine.State](bw *bufio.Writer, e *engine.Engine[S], reg *idRegistry, key string, depth int) {
	indent := strings.Repeat("  ", depth)
	id, first := reg.assign(key)
	if !first {
		fmt.Fprintf(bw, "%sState #%d (see above)\n", indent, id)
		return
	}
	min, max := e.Bounds(key)
	fmt.Fprintf(bw, "%sState #%d { depth_min: %s, depth_max: %s, resolved: %t", indent, id, depthString(min), depthString(max), min == max)
	if s := e.StateByKey(key); s != nil {
		if d, ok := any(s).(describer); ok {
			if desc := d.Describe(); desc != "" {
				fmt.Fprintf(bw, ", %s", desc)
			}
		}
	}
	fmt.Fprint(bw, " }\n")
}

func depthString(d uint8) string {
	if d == engine.DepthInfinity {
		return "inf"
	}
	return fmt.Sprint(d)
}

// walkFull visits every state reachable from the root, via engine.Iterator,
// printing a revisited state as a back-reference only.
func walkFull[S engine.State](bw *bufio.Writer, e *engine.Engine[S], reg *idRegistry) {
	it := engine.NewIterator[S](e)
	for {
		moved := it.AdvanceFirstChild() || it.AdvanceSibling() || it.AdvancePrune()
		if !moved {
			return
		}
		printTransition(bw, e, reg, it)
	}
}

func printTransition[S engine.State](bw *bufio.Writer, e *engine.Engine[S], reg *idRegistry, it *engine.Iterator) {
	parentKey, ok := it.ParentKey()
	if !ok {
		return
	}
	child := e.ChildrenOf(parentKey)[it.ChildIndex()]
	indent := strings.Repeat("  ", it.Depth())
	fmt.Fprintf(bw, "%sWeighing #%d %s -> %s:\n", indent, child.WeighingIndex, weighingSummary(child.Weighing), it.Outcome())
	writeStateHeader(bw, e, reg, it.Current(), it.Depth())
}

// walkHappyPath recurses through one optimal weighing per state: the
// weighing whose present outcomes all resolve within state's own
// depth_max - 1, i.e. the weighing the search actually used to prove the
// bound.
func walkHappyPath[S engine.State](bw *bufio.Writer, e *engine.Engine[S], reg *idRegistry, key string, depth int) {
	children := e.ChildrenOf(key)
	best := pickOptimalChild(e, children)
	if best == nil {
		return
	}
	indent := strings.Repeat("  ", depth+1)
	for o := range best.Present {
		if !best.Present[o] {
			continue
		}
		outcome := engine.Outcome(o)
		fmt.Fprintf(bw, "%sWeighing #%d %s -> %s:\n", indent, best.WeighingIndex, weighingSummary(best.Weighing), outcome)
		writeStateHeader(bw, e, reg, best.Keys[o], depth+1)
		walkHappyPath(bw, e, reg, best.Keys[o], depth+1)
	}
}

func pickOptimalChild[S engine.State](e *engine.Engine[S], children []engine.Child) *engine.Child {
	var best *engine.Child
	bestWorst := engine.DepthInfinity
	for i := range children {
		c := &children[i]
		worst := uint8(0)
		hasInfinite := false
		for o := range c.Present {
			if !c.Present[o] {
				continue
			}
			_, max := e.Bounds(c.Keys[o])
			if max == engine.DepthInfinity {
				hasInfinite = true
				break
			}
			if max > worst {
				worst = max
			}
		}
		if hasInfinite {
			continue
		}
		if best == nil || worst < bestWorst {
			best, bestWorst = c, worst
		}
	}
	if best == nil && len(children) > 0 {
		return &children[0]
	}
	return best
}

func weighingSummary(w *engine.Weighing) string {
	return fmt.Sprintf("in=%s out=%s", w.InPartition(), formatPartitionWithProvenance(w.OutPartition(), w.Provenance()))
}

// formatPartitionWithProvenance annotates each output part with the input
// part it came from, and its placement when that input part was split into
// more than one output part (original_source/Balance/Partition.cpp::write).
func formatPartitionWithProvenance(out *engine.Partition, provenance []engine.Provenance) string {
	counts := make(map[int]int)
	for _, p := range provenance {
		counts[p.InPart]++
	}
	parts := make([]string, out.Len())
	for i := 0; i < out.Len(); i++ {
		prov := provenance[i]
		if counts[prov.InPart] == 1 {
			parts[i] = fmt.Sprintf("%d(p[%d])", out.Part(i), prov.InPart)
		} else {
			parts[i] = fmt.Sprintf("%d(p[%d]@%s)", out.Part(i), prov.InPart, prov.Placement)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
