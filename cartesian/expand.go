package cartesian

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlcomp/subsets"
)

// expand emits one complete selection path: first the full composition,
// unconditionally, then one variant per unique non-empty subset of the
// path's optional positions omitted, in ascending subset size. Each
// variant's identity is checked against the ledger so that different
// complete paths reducing to the same remaining nodes emit it only once.
// Returns false when yield stopped the run.
func (r *runState[T]) expand(path []*node[T], seed T, yield func(T) bool) bool {
	if !r.emit(composePath(path, seed), yield) {
		return false
	}

	// Collect the path indices whose node may be omitted.
	var optional []int
	for i, n := range path {
		if r.optional(n) {
			optional = append(optional, i)
		}
	}
	if len(optional) == 0 {
		return true
	}

	// Omit every unique non-empty subset, smallest first. Path indices are
	// distinct, so subset uniqueness is structural here.
	for omit := range subsets.Increasing(optional) {
		reduced := removeIndices(path, omit)
		key := pathKey(reduced)
		if _, seen := r.ledger[key]; seen {
			r.deduplicated++
			continue
		}
		r.ledger[key] = struct{}{}
		r.reduced++
		if !r.emit(composePath(reduced, seed), yield) {
			return false
		}
	}
	return true
}

// emit runs the result hook, if any, then forwards v to yield.
func (r *runState[T]) emit(v T, yield func(T) bool) bool {
	if r.opts.onResult != nil {
		r.opts.onResult(v)
	}
	return yield(v)
}

// removeIndices returns path without the elements at the given indices.
// omit holds ascending path indices; the relative order of the survivors
// is preserved. The result may be empty when every element is omitted.
func removeIndices[T any](path []*node[T], omit []int) []*node[T] {
	reduced := make([]*node[T], 0, len(path)-len(omit))
	next := 0
	for i, n := range path {
		if next < len(omit) && omit[next] == i {
			next++
			continue
		}
		reduced = append(reduced, n)
	}
	return reduced
}

// pathKey builds the canonical identity of a reduced path: the ordered
// (group, position) pairs of its remaining nodes. Length is implicit in
// the pair list, and an empty path has the empty identity.
func pathKey[T any](path []*node[T]) string {
	var b strings.Builder
	for _, n := range path {
		b.WriteString(strconv.Itoa(n.group))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(n.pos))
		b.WriteByte(';')
	}
	return b.String()
}
