package engine

import "testing"

// TestWeighingsConserveCoinCount checks that every weighing's left+right+
// aside counts sum to the input part's size, and that the output partition
// carries the same total coin count as the input.
func TestWeighingsConserveCoinCount(t *testing.T) {
	c := NewCache()
	p := c.InternPartition([]int{3, 4})
	for _, w := range c.Weighings(p) {
		for i := 0; i < p.Len(); i++ {
			sum := w.LeftCount(i) + w.RightCount(i) + w.AsideCount(i)
			if sum != p.Part(i) {
				t.Fatalf("weighing %v: part %d counts sum to %d, want %d", w, i, sum, p.Part(i))
			}
		}
		if got, want := w.OutPartition().CoinCount(), p.CoinCount(); got != want {
			t.Fatalf("weighing %v: output coin count %d, want %d", w, got, want)
		}
	}
}

// TestWeighingsPanSizesBalance checks every weighing puts an equal number of
// coins on each pan.
func TestWeighingsPanSizesBalance(t *testing.T) {
	c := NewCache()
	p := c.InternPartition([]int{5})
	for _, w := range c.Weighings(p) {
		left, right := 0, 0
		for i := 0; i < p.Len(); i++ {
			left += w.LeftCount(i)
			right += w.RightCount(i)
		}
		if left != right {
			t.Fatalf("weighing %v: left=%d right=%d, pans must balance", w, left, right)
		}
	}
}

// TestWeighingsAreMemoized checks that Weighings returns the same slice on
// repeated calls for the same partition.
func TestWeighingsAreMemoized(t *testing.T) {
	c := NewCache()
	p := c.InternPartition([]int{2, 2})
	a := c.Weighings(p)
	b := c.Weighings(p)
	if len(a) != len(b) {
		t.Fatalf("got different lengths across calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("weighing %d differs across calls: %p vs %p", i, a[i], b[i])
		}
	}
}

// TestSymmetricWeighingDetection checks a weighing that places an equal
// count of the same input part on both pans is marked symmetric.
func TestSymmetricWeighingDetection(t *testing.T) {
	c := NewCache()
	p := c.InternPartition([]int{4})
	foundSymmetric := false
	for _, w := range c.Weighings(p) {
		if w.LeftCount(0) == w.RightCount(0) {
			if !w.IsSymmetric() {
				t.Fatalf("weighing %v has equal left/right counts but IsSymmetric() = false", w)
			}
			foundSymmetric = true
		}
	}
	if !foundSymmetric {
		t.Fatal("expected at least one symmetric weighing for partition [4]")
	}
}

func TestLexDecreasingVectorsCoversAllAndOrdered(t *testing.T) {
	bounds := []int{2, 2}
	got := lexDecreasingVectors(bounds, 2)
	want := [][]int{{2, 0}, {1, 1}, {0, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !intSliceEqual(got[i], want[i]) {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexDecreasingVectorsRespectsBounds(t *testing.T) {
	bounds := []int{1, 3}
	for _, v := range lexDecreasingVectors(bounds, 3) {
		for i, x := range v {
			if x > bounds[i] {
				t.Fatalf("vector %v exceeds bound %v at index %d", v, bounds, i)
			}
		}
	}
}
