package majority

import (
	"reflect"
	"testing"

	"github.com/wihd/balance/engine"
)

func TestJoinSameVarietyMergesDeterminedColumns(t *testing.T) {
	parts := []int{2, 3}
	rows := []Distribution{
		{0, 0},
		{2, 3},
	}
	newParts, newRows := joinSameVariety(parts, rows)
	if got, want := newParts, []int{5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("parts = %v, want %v", got, want)
	}
	want := []Distribution{{0}, {5}}
	if !reflect.DeepEqual(newRows, want) {
		t.Fatalf("rows = %v, want %v", newRows, want)
	}
}

func TestJoinSameVarietyLeavesUndeterminedColumnsAlone(t *testing.T) {
	parts := []int{2, 3}
	rows := []Distribution{
		{0, 1},
		{2, 3},
	}
	newParts, newRows := joinSameVariety(parts, rows)
	if got, want := newParts, parts; !reflect.DeepEqual(got, want) {
		t.Fatalf("parts = %v, want %v (no merge expected)", got, want)
	}
	if !reflect.DeepEqual(newRows, rows) {
		t.Fatalf("rows = %v, want %v", newRows, rows)
	}
}

func TestVarietySwapPrefersLighterHWeight(t *testing.T) {
	parts := []int{3}
	rows := []Distribution{{3}, {2}}
	got := varietySwap(parts, rows)
	want := []Distribution{{0}, {1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("varietySwap = %v, want %v", got, want)
	}
}

func TestVarietySwapLeavesLighterRepresentativeAlone(t *testing.T) {
	parts := []int{3}
	rows := []Distribution{{0}, {1}}
	got := varietySwap(parts, rows)
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("varietySwap = %v, want unchanged %v", got, rows)
	}
}

func TestSortDedupDistributionsRemovesDuplicates(t *testing.T) {
	rows := []Distribution{{2}, {1}, {1}, {0}}
	got := sortDedupDistributions(rows)
	want := []Distribution{{0}, {1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sortDedupDistributions = %v, want %v", got, want)
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	cache := engine.NewCache()
	parts := []int{1, 1, 1}
	rows := []Distribution{{1, 0, 1}, {0, 1, 0}}

	s1 := canonicalize(cache, append([]int(nil), parts...), append([]Distribution(nil), rows...))
	s2 := canonicalize(cache, append([]int(nil), s1.Partition().Parts()...), append([]Distribution(nil), s1.Distributions()...))
	if s1.Key() != s2.Key() {
		t.Fatalf("canonicalize is not idempotent: %q != %q", s1.Key(), s2.Key())
	}
}

func TestCanonicalizeSameMultisetSameKey(t *testing.T) {
	cache := engine.NewCache()
	a := canonicalize(cache, []int{1, 2}, []Distribution{{1, 0}, {0, 2}})
	b := canonicalize(cache, []int{2, 1}, []Distribution{{0, 1}, {2, 0}})
	if a.Key() != b.Key() {
		t.Fatalf("column-permuted equivalent inputs produced different keys: %q vs %q", a.Key(), b.Key())
	}
}
