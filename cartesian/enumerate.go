package cartesian

// frame is one pending traversal step: a candidate node for the next group
// together with the path chosen so far (one node per preceding group).
type frame[T any] struct {
	n    *node[T]
	path []*node[T]
}

// traverse walks the Cartesian product of the groups' nodes depth-first
// with an explicit frame stack, keeping stack depth bounded by the group
// count. For a fixed prefix, the next group's nodes are visited in
// ascending position order — nodesFor returns them highest-position
// first, so LIFO popping restores ascending order. Every complete path is
// handed to expand exactly once. Returns false when yield stopped the run.
func (r *runState[T]) traverse(seed T, yield func(T) bool) bool {
	if len(r.groups) == 0 {
		return true
	}

	stack := make([]frame[T], 0, len(r.groups))
	for _, n := range r.nodesFor(0) {
		stack = append(stack, frame[T]{n: n})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Extend into a fresh slice: sibling frames share f.path.
		path := make([]*node[T], len(f.path)+1)
		copy(path, f.path)
		path[len(f.path)] = f.n

		if len(path) == len(r.groups) {
			r.fullPaths++
			if !r.expand(path, seed, yield) {
				return false
			}
			continue
		}

		// Push the next group's candidates; a group that parses to zero
		// nodes (empty or marker-only) ends this branch, and with it the
		// whole product.
		for _, n := range r.nodesFor(len(path)) {
			stack = append(stack, frame[T]{n: n, path: path})
		}
	}
	return true
}
