package cartesian

import "github.com/katalvlaran/lvlcomp/compose"

// composePath flattens a (full or reduced) path into one ordered unit list
// by concatenating each node's units in path order, then applies their
// right-to-left composition to seed: the first flattened unit is the
// outermost, the last is applied first. An empty path degenerates to the
// identity and returns seed unchanged. A nil unit panics here, at the
// point of use — callability is intentionally not validated earlier.
func composePath[T any](path []*node[T], seed T) T {
	total := 0
	for _, n := range path {
		total += len(n.units)
	}
	flat := make([]compose.Fn[T], 0, total)
	for _, n := range path {
		flat = append(flat, n.units...)
	}
	return compose.Compose(flat...)(seed)
}
