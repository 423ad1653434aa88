package engine

// Cache is a hash-consing store for Partition and Weighing values. It
// guarantees that two values with equal contents are represented by the
// same pointer, so equality of interned values reduces to pointer equality.
// A Cache is single-owner: it is meant to live for the lifetime of one
// Engine and must not be shared across concurrent searches.
type Cache struct {
	partitions map[string]*Partition
	weighings  map[string]*Weighing
	enumerated map[*Partition][]*Weighing
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{
		partitions: make(map[string]*Partition),
		weighings:  make(map[string]*Weighing),
		enumerated: make(map[*Partition][]*Weighing),
	}
}

// InternPartition returns the canonical *Partition for the given part
// sizes, sorting them into non-decreasing order first. Repeated calls with
// equal contents return the same pointer.
func (c *Cache) InternPartition(parts []int) *Partition {
	sorted := append([]int(nil), parts...)
	insertionSort(sorted)
	key := partitionKey(sorted)
	if p, ok := c.partitions[key]; ok {
		return p
	}
	p := newPartition(sorted)
	c.partitions[key] = p
	return p
}

// internWeighing returns the canonical *Weighing for a given input
// partition and left/right selection, computing its output partition and
// provenance on first request.
func (c *Cache) internWeighing(in *Partition, left, right []int) *Weighing {
	key := weighingKey(in.key, left, right)
	if w, ok := c.weighings[key]; ok {
		return w
	}
	w := buildWeighing(c, in, left, right, key)
	c.weighings[key] = w
	return w
}

// Weighings returns the canonical, symmetry-reduced list of weighings for
// partition p, computing and memoizing them on first request: the
// weighings of a partition depend only on its contents, so every state
// sharing that partition reuses the same slice.
func (c *Cache) Weighings(p *Partition) []*Weighing {
	if ws, ok := c.enumerated[p]; ok {
		return ws
	}
	ws := enumerateWeighings(c, p)
	c.enumerated[p] = ws
	return ws
}

// insertionSort sorts small int slices in place. Partitions rarely have
// more than a handful of parts, so this avoids pulling in sort.Ints for a
// case where its overhead is not worth it.
func insertionSort(xs []int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}
