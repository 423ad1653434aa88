package majority

import (
	"sort"

	"github.com/wihd/balance/engine"
)

// maxPermutationSearch bounds the brute-force tie-break search in
// columnSort to 7! = 5040 orderings, the same bounded-effort shape as
// original_source/Balance2/ProblemFindMajority2.hpp's biggest_perm_count
// bookkeeping: past this many tied columns we give up on exact
// tie-breaking and fall back to the stable sort order.
const maxPermutationSearch = 7

// canonicalize reduces a raw (partition, rows) outcome to the canonical
// representative of its equivalence class: join parts indistinguishable
// across every row, swap H/L if that yields a lighter-weighted-H
// representative, sort columns into canonical order, and sort+dedupe rows.
func canonicalize(cache *engine.Cache, parts []int, rows []Distribution) *State {
	parts, rows = joinSameVariety(parts, rows)
	rows = varietySwap(parts, rows)
	parts, rows = columnSort(parts, rows)
	rows = sortDedupDistributions(rows)
	return newState(cache.InternPartition(parts), rows)
}

// joinSameVariety merges columns that are "determined" (every row assigns
// the column either all-H or all-L) and share the same H/L pattern across
// rows into a single column, since no future weighing can ever tell their
// coins apart. DESIGN.md's majority section records where this merge
// strategy comes from.
func joinSameVariety(parts []int, rows []Distribution) ([]int, []Distribution) {
	k := len(parts)
	determined := make([]bool, k)
	sig := make([]string, k)
	for j := 0; j < k; j++ {
		pattern := make([]byte, len(rows))
		ok := true
		for i, row := range rows {
			switch row[j] {
			case 0:
				pattern[i] = '0'
			case parts[j]:
				pattern[i] = '1'
			default:
				ok = false
			}
			if !ok {
				break
			}
		}
		determined[j] = ok
		if ok {
			sig[j] = string(pattern)
		}
	}

	groupOf := make(map[string][]int)
	for j := 0; j < k; j++ {
		if determined[j] {
			groupOf[sig[j]] = append(groupOf[sig[j]], j)
		}
	}

	emitted := make([]bool, k)
	var newParts []int
	var colGroups [][]int
	for j := 0; j < k; j++ {
		if emitted[j] {
			continue
		}
		if determined[j] {
			group := groupOf[sig[j]]
			if len(group) > 1 {
				size := 0
				for _, g := range group {
					size += parts[g]
					emitted[g] = true
				}
				newParts = append(newParts, size)
				colGroups = append(colGroups, group)
				continue
			}
		}
		emitted[j] = true
		newParts = append(newParts, parts[j])
		colGroups = append(colGroups, []int{j})
	}

	newRows := make([]Distribution, len(rows))
	for i, row := range rows {
		nr := make(Distribution, len(colGroups))
		for ci, group := range colGroups {
			sum := 0
			for _, g := range group {
				sum += row[g]
			}
			nr[ci] = sum
		}
		newRows[i] = nr
	}
	return newParts, newRows
}

// varietySwap replaces every row with its complement (H and L swapped) when
// that representative has less total H-weight than the original, or, on a
// tie, less sum-of-squares H-weight. This keeps states that
// differ only by which variety is called "H" from being tracked as
// distinct.
func varietySwap(parts []int, rows []Distribution) []Distribution {
	totalH, totalL := 0, 0
	for _, row := range rows {
		for j, v := range row {
			totalH += v
			totalL += parts[j] - v
		}
	}
	swap := totalH > totalL
	if totalH == totalL {
		ssH, ssL := 0, 0
		for _, row := range rows {
			for j, v := range row {
				ssH += v * v
				l := parts[j] - v
				ssL += l * l
			}
		}
		swap = ssH > ssL
	}
	if !swap {
		return rows
	}
	newRows := make([]Distribution, len(rows))
	for i, row := range rows {
		nr := make(Distribution, len(row))
		for j, v := range row {
			nr[j] = parts[j] - v
		}
		newRows[i] = nr
	}
	return newRows
}

// columnSort reorders parts into canonical order: by part size, so the
// partition stays non-decreasing, then by each column's sorted profile of
// values across rows. Ties (equal size and profile) are broken by an
// exhaustive search over the tied columns' permutations (capped at
// maxPermutationSearch!) for the arrangement whose own row-sorted columns
// are lexicographically smallest; see scoreColumnOrder.
func columnSort(parts []int, rows []Distribution) ([]int, []Distribution) {
	k := len(parts)
	if k <= 1 {
		return parts, rows
	}

	profiles := make([][]int, k)
	for j := 0; j < k; j++ {
		prof := make([]int, len(rows))
		for i, row := range rows {
			prof[i] = row[j]
		}
		sort.Ints(prof)
		profiles[j] = prof
	}

	order := make([]int, k)
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		ja, jb := order[a], order[b]
		if parts[ja] != parts[jb] {
			return parts[ja] < parts[jb]
		}
		return compareIntSlices(profiles[ja], profiles[jb]) < 0
	})

	tied := func(a, b int) bool {
		return compareIntSlices(profiles[a], profiles[b]) == 0 && parts[a] == parts[b]
	}
	for start := 0; start < k; {
		end := start + 1
		for end < k && tied(order[start], order[end]) {
			end++
		}
		if end-start > 1 && end-start <= maxPermutationSearch {
			bestPermuteTie(order[start:end], parts, rows)
		}
		start = end
	}

	newParts := make([]int, k)
	newRows := make([]Distribution, len(rows))
	for i := range rows {
		newRows[i] = make(Distribution, k)
	}
	for newCol, oldCol := range order {
		newParts[newCol] = parts[oldCol]
		for i, row := range rows {
			newRows[i][newCol] = row[oldCol]
		}
	}
	return newParts, newRows
}

// bestPermuteTie replaces group, a slice of tied column indices, in place
// with the permutation that minimizes scoreColumnOrder. Among equal scores
// the first one found, starting from the current order, is kept.
func bestPermuteTie(group []int, parts []int, rows []Distribution) {
	best := append([]int(nil), group...)
	bestScore := scoreColumnOrder(group, parts, rows)
	permute(append([]int(nil), group...), func(cand []int) {
		score := scoreColumnOrder(cand, parts, rows)
		if compareRowMatrices(score, bestScore) < 0 {
			bestScore = score
			copy(best, cand)
		}
	})
	copy(group, best)
}

// scoreColumnOrder builds the sorted, deduplicated row matrix of the tied
// group's columns alone, taken in cand's order. Columns outside the group
// are not part of the score, so two candidates that score equal can still
// give different full matrices, and the chosen order does not always make
// the full row-sorted matrix the smallest.
func scoreColumnOrder(cand []int, parts []int, rows []Distribution) []Distribution {
	sub := make([]Distribution, len(rows))
	for i, row := range rows {
		r := make(Distribution, len(cand))
		for ci, col := range cand {
			r[ci] = row[col]
		}
		sub[i] = r
	}
	return sortDedupDistributions(sub)
}

func compareRowMatrices(a, b []Distribution) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareDistributions(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func compareIntSlices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// permute calls f once for every permutation of xs, via Heap's algorithm.
func permute(xs []int, f func([]int)) {
	n := len(xs)
	c := make([]int, n)
	f(xs)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				xs[0], xs[i] = xs[i], xs[0]
			} else {
				xs[c[i]], xs[i] = xs[i], xs[c[i]]
			}
			f(xs)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
