package engine

import "testing"

func TestInternPartitionSortsAndDedupes(t *testing.T) {
	c := NewCache()
	a := c.InternPartition([]int{3, 1, 2})
	b := c.InternPartition([]int{1, 2, 3})
	if a != b {
		t.Fatalf("expected interned partitions to be pointer-equal, got %p and %p", a, b)
	}
	if got, want := a.Parts(), []int{1, 2, 3}; !intSliceEqual(got, want) {
		t.Fatalf("Parts() = %v, want %v", got, want)
	}
}

func TestInternPartitionDistinctContentsDistinctPointers(t *testing.T) {
	c := NewCache()
	a := c.InternPartition([]int{1, 2})
	b := c.InternPartition([]int{1, 3})
	if a == b {
		t.Fatal("expected distinct partitions to be distinct pointers")
	}
}

func TestCoinCount(t *testing.T) {
	c := NewCache()
	p := c.InternPartition([]int{2, 3, 4})
	if got, want := p.CoinCount(), 9; got != want {
		t.Fatalf("CoinCount() = %d, want %d", got, want)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
