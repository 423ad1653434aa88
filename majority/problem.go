package majority

import (
	"github.com/wihd/balance/engine"
)

// Problem implements engine.Problem[State] for the MAJORITY puzzle: given
// coinCount coins (must be odd), determine which of two varieties, H or L,
// has more coins.
type Problem struct {
	coinCount int
	threshold int
	cache     *engine.Cache
}

// New builds a MAJORITY Problem for the given odd coin count, using cache
// for partition and weighing interning.
func New(coinCount int, cache *engine.Cache) *Problem {
	if coinCount <= 0 || coinCount%2 == 0 {
		panic("majority: coinCount must be a positive odd number")
	}
	return &Problem{
		coinCount: coinCount,
		threshold: coinCount/2 + 1,
		cache:     cache,
	}
}

// MakeRoot returns the initial state: the trivial one-part partition, with
// the two almost-balanced H-counts, coinCount/2 and coinCount/2+1, still
// possible. All-H and all-L are left out: no weighing can tell them apart.
func (p *Problem) MakeRoot() *State {
	partition := p.cache.InternPartition([]int{p.coinCount})
	rows := []Distribution{{p.coinCount / 2}, {p.coinCount/2 + 1}}
	return newState(partition, rows)
}

// PartitionOf implements engine.Problem.
func (p *Problem) PartitionOf(s *State) *engine.Partition { return s.partition }

// IsSolved reports whether every surviving distribution agrees on which
// variety is in the majority. The odd coin count rules out a tie, so
// "agrees" is well defined for every reachable state.
func (p *Problem) IsSolved(s *State) bool {
	rows := s.distributions
	if len(rows) == 0 {
		panic("majority: state with no surviving distribution")
	}
	majority := p.isMajorityH(rows[0])
	for _, row := range rows[1:] {
		if p.isMajorityH(row) != majority {
			return false
		}
	}
	return true
}

func (p *Problem) isMajorityH(d Distribution) bool {
	return d.sum() >= p.threshold
}

// ApplyWeighing implements engine.Problem: it splits every surviving
// distribution across w's output parts in every way consistent with the
// input counts, classifies each split by the pan comparison it implies,
// and canonicalizes each non-empty outcome bucket.
func (p *Problem) ApplyWeighing(s *State, w *engine.Weighing, out *engine.Partition) engine.OutcomeArray[*State] {
	groups := groupOutputsByInPart(w, out)

	var buckets [3][]Distribution
	for _, d := range s.distributions {
		for _, outcome := range splitDistribution(d, groups, out) {
			leftH, rightH := outcomeWeights(outcome, w.Provenance())
			switch {
			case leftH > rightH:
				buckets[engine.LeftHeavier] = append(buckets[engine.LeftHeavier], outcome)
			case leftH < rightH:
				buckets[engine.RightHeavier] = append(buckets[engine.RightHeavier], outcome)
			default:
				buckets[engine.Balances] = append(buckets[engine.Balances], outcome)
			}
		}
	}

	var result engine.OutcomeArray[*State]
	for o, rows := range buckets {
		if len(rows) == 0 {
			continue
		}
		result[o] = canonicalize(p.cache, append([]int(nil), out.Parts()...), rows)
	}
	return result
}

// groupOutputsByInPart returns, for each input part index, the output part
// indices that part was split into.
func groupOutputsByInPart(w *engine.Weighing, out *engine.Partition) [][]int {
	groups := make([][]int, w.InPartition().Len())
	for outIdx, prov := range w.Provenance() {
		groups[prov.InPart] = append(groups[prov.InPart], outIdx)
	}
	return groups
}

// splitDistribution enumerates every way to split d's per-part H-counts
// across the output parts each input part was divided into, bounded by
// those output parts' sizes.
func splitDistribution(d Distribution, groups [][]int, out *engine.Partition) []Distribution {
	outVec := make(Distribution, out.Len())
	var results []Distribution

	var rec func(inPart int)
	rec = func(inPart int) {
		if inPart == len(d) {
			results = append(results, append(Distribution(nil), outVec...))
			return
		}
		outIdxs := groups[inPart]
		caps := make([]int, len(outIdxs))
		for i, oi := range outIdxs {
			caps[i] = out.Part(oi)
		}
		for _, combo := range boundedVectors(caps, d[inPart]) {
			for i, oi := range outIdxs {
				outVec[oi] = combo[i]
			}
			rec(inPart + 1)
		}
	}
	rec(0)
	return results
}

// outcomeWeights returns the total H-weight placed on the left and right
// pans by an output distribution.
func outcomeWeights(outcome Distribution, provenance []engine.Provenance) (left, right int) {
	for j, v := range outcome {
		switch provenance[j].Placement {
		case engine.Left:
			left += v
		case engine.Right:
			right += v
		}
	}
	return left, right
}

// boundedVectors returns every non-negative integer vector x with
// x[i] <= caps[i] and sum(x) == sum. Unlike the engine's weighing
// enumerator, the order here is irrelevant: every split is later merged
// into the same bucket and re-sorted by canonicalize.
func boundedVectors(caps []int, sum int) [][]int {
	k := len(caps)
	if k == 0 {
		if sum == 0 {
			return [][]int{{}}
		}
		return nil
	}
	suffixCap := make([]int, k+1)
	for i := k - 1; i >= 0; i-- {
		suffixCap[i] = suffixCap[i+1] + caps[i]
	}
	if sum < 0 || sum > suffixCap[0] {
		return nil
	}

	var result [][]int
	x := make([]int, k)
	var rec func(idx, remaining int)
	rec = func(idx, remaining int) {
		if idx == k {
			if remaining == 0 {
				result = append(result, append([]int(nil), x...))
			}
			return
		}
		hi := caps[idx]
		if remaining < hi {
			hi = remaining
		}
		lo := remaining - suffixCap[idx+1]
		if lo < 0 {
			lo = 0
		}
		for v := lo; v <= hi; v++ {
			x[idx] = v
			rec(idx+1, remaining-v)
		}
	}
	rec(0, sum)
	return result
}
