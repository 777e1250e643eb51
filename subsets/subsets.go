package subsets

import "iter"

// Increasing returns a lazy, restartable sequence of every unique non-empty
// subset of set, ordered by ascending subset size; ties within a size are
// broken by lexicographic order of element positions. Duplicate values are
// collapsed to their first occurrence before enumeration, so no two yielded
// subsets are equal. Each yielded slice is freshly allocated.
func Increasing[E comparable](set []E) iter.Seq[[]E] {
	// Collapse duplicates once, preserving first-occurrence order.
	// The closure below only captures the deduplicated copy, so the
	// sequence is immune to later mutation of the caller's slice.
	distinct := dedupe(set)

	return func(yield func([]E) bool) {
		n := len(distinct)
		for k := 1; k <= n; k++ {
			if !combinations(distinct, k, yield) {
				return
			}
		}
	}
}

// combinations yields every k-element combination of src in lexicographic
// index order. Returns false as soon as yield does.
func combinations[E comparable](src []E, k int, yield func([]E) bool) bool {
	// idx holds the current combination as ascending positions into src,
	// initialized to the lexicographically first combination 0,1,…,k-1.
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	n := len(src)
	for {
		out := make([]E, k)
		for i, p := range idx {
			out[i] = src[p]
		}
		if !yield(out) {
			return false
		}

		// Advance to the next combination: find the rightmost position
		// that can still move right, bump it, and reset the tail.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// dedupe returns set with every repeated value removed, keeping first occurrences.
func dedupe[E comparable](set []E) []E {
	seen := make(map[E]struct{}, len(set))
	out := make([]E, 0, len(set))
	for _, e := range set {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
