package majority

import (
	"testing"

	"github.com/wihd/balance/engine"
)

func TestIsMajorityHThreshold(t *testing.T) {
	p := New(5, engine.NewCache())
	cases := []struct {
		h    int
		want bool
	}{
		{0, false}, {1, false}, {2, false}, {3, true}, {4, true}, {5, true},
	}
	for _, c := range cases {
		if got := p.isMajorityH(Distribution{c.h}); got != c.want {
			t.Errorf("isMajorityH(%d) = %v, want %v", c.h, got, c.want)
		}
	}
}

func TestMakeRootIsUnsolved(t *testing.T) {
	p := New(3, engine.NewCache())
	root := p.MakeRoot()
	if p.IsSolved(root) {
		t.Fatal("almost-balanced root must not be solved")
	}
	if got, want := len(root.Distributions()), 2; got != want {
		t.Fatalf("root has %d distributions, want %d", got, want)
	}
}

func TestApplyWeighingConservesCoinCount(t *testing.T) {
	cache := engine.NewCache()
	p := New(5, cache)
	root := p.MakeRoot()
	partition := p.PartitionOf(root)
	for _, w := range cache.Weighings(partition) {
		outcomes := p.ApplyWeighing(root, w, w.OutPartition())
		for _, child := range outcomes {
			if child == nil {
				continue
			}
			coinCount := child.Partition().CoinCount()
			if coinCount != p.coinCount {
				t.Fatalf("child partition holds %d coins, want %d", coinCount, p.coinCount)
			}
			for _, row := range child.Distributions() {
				if len(row) != child.Partition().Len() {
					t.Fatalf("row length %d does not match partition length %d", len(row), child.Partition().Len())
				}
				if s := row.sum(); s < 0 || s > coinCount {
					t.Fatalf("row H-count %d out of range [0,%d]", s, coinCount)
				}
			}
		}
	}
}

// TestSolveDepthsForSmallCounts checks the known optimal depths for the
// smallest MAJORITY instances.
func TestSolveDepthsForSmallCounts(t *testing.T) {
	cases := []struct {
		coinCount int
		want      uint8
	}{
		{3, 2},
		{5, 3},
		{7, 3},
	}
	for _, c := range cases {
		cache := engine.NewCache()
		problem := New(c.coinCount, cache)
		e := engine.New[State](problem)
		depthMin, depthMax := e.Solve(engine.DepthInfinity)
		if depthMin != depthMax {
			t.Fatalf("coinCount=%d: search did not resolve, got [%d,%d]", c.coinCount, depthMin, depthMax)
		}
		if depthMin != c.want {
			t.Errorf("coinCount=%d: got depth %d, want %d", c.coinCount, depthMin, c.want)
		}
	}
}

func TestSingleCoinRootIsUnsolved(t *testing.T) {
	cache := engine.NewCache()
	problem := New(1, cache)
	root := problem.MakeRoot()
	if problem.IsSolved(root) {
		t.Fatal("a single coin of unknown variety must not decide the majority")
	}
}
