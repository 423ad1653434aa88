package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Placement is where a coin (or fraction of a part) ends up during a
// weighing: on the left pan, the right pan, or set aside. The order of
// these constants is significant: it is the tie-break order used when
// sorting output parts by (in_part, placement) ascending, and matches
// original_source/Balance/Types.h's Placement enum.
type Placement int

const (
	// Left places a part (or fraction of a part) on the left pan.
	Left Placement = iota
	// Right places a part (or fraction of a part) on the right pan.
	Right
	// Aside sets a part (or fraction of a part) aside, in neither pan.
	Aside
)

// String returns the short, human-readable name of a Placement.
func (p Placement) String() string {
	switch p {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Aside:
		return "Aside"
	default:
		panic(fmt.Sprintf("invalid placement %d", int(p)))
	}
}

// Provenance records, for one output part of a weighing, which input part it
// came from and where it was placed.
type Provenance struct {
	InPart    int
	Placement Placement
}

// Partition is an immutable, non-decreasing sequence of positive part sizes
// summing to a fixed coin count. Partitions are interned by Cache: two
// partitions with equal contents are always the same *Partition, so equality
// is pointer equality.
type Partition struct {
	parts []int
	key   string
}

// newPartition builds a Partition from part sizes that the caller guarantees
// are already sorted non-decreasing. It is only ever called by Cache.
func newPartition(parts []int) *Partition {
	return &Partition{parts: parts, key: partitionKey(parts)}
}

func partitionKey(parts []int) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// Len returns the number of parts in the partition.
func (p *Partition) Len() int { return len(p.parts) }

// Part returns the size of the i'th part.
func (p *Partition) Part(i int) int { return p.parts[i] }

// Parts returns the part sizes in non-decreasing order. The returned slice
// must not be modified.
func (p *Partition) Parts() []int { return p.parts }

// CoinCount returns the total number of coins across all parts.
func (p *Partition) CoinCount() int {
	total := 0
	for _, x := range p.parts {
		total += x
	}
	return total
}

// String renders the partition as its part sizes, e.g. "[1 2 2]".
func (p *Partition) String() string {
	return fmt.Sprintf("%v", p.parts)
}
