package engine

// enumerateWeighings produces, for a partition p, every distinct weighing
// modulo the left/right pan swap: increasing pan size N, then left
// selections in lexicographically decreasing order, then right selections
// (bounded by what the left selection left available) in lexicographically
// decreasing order and no greater than the left selection.
//
// The pruning theorem below lets us stop trying smaller left selections as
// soon as one admits no valid right selection at the current pan size: none
// of the lexicographically smaller ones will either, so we advance directly
// to the next pan size.
func enumerateWeighings(c *Cache, p *Partition) []*Weighing {
	bounds := p.Parts()
	k := len(bounds)
	total := p.CoinCount()
	var result []*Weighing

	for n := 1; n <= total/2; n++ {
		lefts := lexDecreasingVectors(bounds, n)
		for _, x := range lefts {
			rightBounds := make([]int, k)
			for i := range rightBounds {
				rightBounds[i] = bounds[i] - x[i]
			}
			rights := lexDecreasingVectors(rightBounds, n)
			foundAny := false
			for _, y := range rights {
				if !lexLessOrEqual(y, x) {
					continue
				}
				result = append(result, c.internWeighing(p, x, y))
				foundAny = true
			}
			if !foundAny {
				// Pruning theorem: no lex-smaller left at this pan size
				// admits a valid right selection either.
				break
			}
		}
	}
	return result
}

// buildWeighing computes the output partition and provenance for a given
// input partition and left/right selection, splitting each input part into
// up to three chunks (left, right, aside) and sorting the resulting output
// parts by (size, in_part, placement) ascending.
func buildWeighing(c *Cache, in *Partition, left, right []int, key string) *Weighing {
	var chunks []outputChunk
	for i := 0; i < in.Len(); i++ {
		l, r := left[i], right[i]
		a := in.Part(i) - l - r
		if l > 0 {
			chunks = append(chunks, outputChunk{l, i, Left})
		}
		if r > 0 {
			chunks = append(chunks, outputChunk{r, i, Right})
		}
		if a > 0 {
			chunks = append(chunks, outputChunk{a, i, Aside})
		}
	}
	// Stable insertion sort by (size, inPart, placement) ascending. Chunks
	// are already grouped by inPart in placement order (Left, Right,
	// Aside), so this only needs to reorder across input parts by size.
	for i := 1; i < len(chunks); i++ {
		v := chunks[i]
		j := i - 1
		for j >= 0 && chunkLess(v, chunks[j]) {
			chunks[j+1] = chunks[j]
			j--
		}
		chunks[j+1] = v
	}

	sizes := make([]int, len(chunks))
	provenance := make([]Provenance, len(chunks))
	for i, ch := range chunks {
		sizes[i] = ch.size
		provenance[i] = Provenance{InPart: ch.inPart, Placement: ch.placement}
	}

	symmetric := true
	for i := range left {
		if left[i] != right[i] {
			symmetric = false
			break
		}
	}

	return &Weighing{
		in:         in,
		out:        c.InternPartition(sizes),
		left:       append([]int(nil), left...),
		right:      append([]int(nil), right...),
		provenance: provenance,
		symmetric:  symmetric,
		key:        key,
	}
}

// outputChunk is an intermediate record of one output part before it is
// sorted and interned as part of a Weighing's output Partition.
type outputChunk struct {
	size      int
	inPart    int
	placement Placement
}

func chunkLess(a, b outputChunk) bool {
	if a.size != b.size {
		return a.size < b.size
	}
	if a.inPart != b.inPart {
		return a.inPart < b.inPart
	}
	return a.placement < b.placement
}

// lexDecreasingVectors returns every non-negative integer vector x with
// x[i] <= bounds[i] and sum(x) == sum, ordered lexicographically decreasing.
func lexDecreasingVectors(bounds []int, sum int) [][]int {
	if sum < 0 {
		return nil
	}
	k := len(bounds)
	suffixCap := make([]int, k+1)
	for i := k - 1; i >= 0; i-- {
		suffixCap[i] = suffixCap[i+1] + bounds[i]
	}
	if sum > suffixCap[0] {
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
		hi := bounds[idx]
		if remaining < hi {
			hi = remaining
		}
		lo := remaining - suffixCap[idx+1]
		if lo < 0 {
			lo = 0
		}
		for v := hi; v >= lo; v-- {
			x[idx] = v
			rec(idx+1, remaining-v)
		}
	}
	rec(0, sum)
	return result
}

// lexLessOrEqual reports whether a is lexicographically less than or equal
// to b, comparing element by element.
func lexLessOrEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return true
}
