package engine

import (
	"strconv"
	"strings"
)

// Weighing describes a single three-way balance measurement: for each part
// of an input Partition it records how many coins go on the left pan, how
// many go on the right pan, and how many are set aside, and the resulting
// output Partition together with the provenance of each output part.
//
// A Weighing is only ever constructed by Cache.Weighings; callers receive
// interned, immutable handles.
type Weighing struct {
	in, out     *Partition
	left, right []int // per input part, len(in.parts)
	provenance  []Provenance
	symmetric   bool
	key         string
}

// InPartition returns the partition this weighing is performed against.
func (w *Weighing) InPartition() *Partition { return w.in }

// OutPartition returns the partition induced by this weighing.
func (w *Weighing) OutPartition() *Partition { return w.out }

// Provenance returns, for each output part in order, the input part and
// placement it derives from.
func (w *Weighing) Provenance() []Provenance { return w.provenance }

// LeftCount returns the number of coins of input part i placed on the left
// pan.
func (w *Weighing) LeftCount(i int) int { return w.left[i] }

// RightCount returns the number of coins of input part i placed on the
// right pan.
func (w *Weighing) RightCount(i int) int { return w.right[i] }

// AsideCount returns the number of coins of input part i set aside.
func (w *Weighing) AsideCount(i int) int {
	return w.in.parts[i] - w.left[i] - w.right[i]
}

// IsSymmetric reports whether this weighing is fixed under the left/right
// pan swap, i.e. per input part, the left count equals the right count.
// Symmetric weighings need only be explored on the LeftHeavier and Balances
// outcomes: swapping pans yields the same weighing, so RightHeavier is
// redundant.
func (w *Weighing) IsSymmetric() bool { return w.symmetric }

// PanSize returns the number of coins on each pan (equal on both sides by
// construction).
func (w *Weighing) PanSize() int {
	total := 0
	for _, x := range w.left {
		total += x
	}
	return total
}

func weighingKey(inKey string, left, right []int) string {
	var b strings.Builder
	b.WriteString(inKey)
	b.WriteByte(';')
	for i, x := range left {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(';')
	for i, y := range right {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(y))
	}
	return b.String()
}
