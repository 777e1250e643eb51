package cartesian

import "github.com/katalvlaran/lvlcomp/compose"

// node is the normalized form of a non-marker declaration: the units of one
// Unit or Chain, pinned to its group index and declaration position.
type node[T any] struct {
	group int
	pos   int
	units []compose.Fn[T]
}

// groupFlags records the option codes seen for one group: a whole-group
// mask plus per-position masks. Group and node flags are additive.
type groupFlags struct {
	group Code
	nodes map[int]Code
}

// runState owns all mutable traversal state for a single Run/Seq call:
// the node cache, option flags, and deduplication ledger. It is never
// shared across calls, so independent invocations stay isolated.
type runState[T any] struct {
	groups []Group[T]
	opts   engineOptions[T]

	nodes  map[int][]*node[T] // per group, highest position first
	flags  map[int]*groupFlags
	ledger map[string]struct{} // reduced-path identities already emitted

	fullPaths    int // complete selection paths visited
	reduced      int // omission variants emitted
	deduplicated int // omission variants skipped as duplicates
}

// newRun builds fresh per-call state for one traversal of e's groups.
func newRun[T any](e *Engine[T]) *runState[T] {
	return &runState[T]{
		groups: e.groups,
		opts:   e.opts,
		nodes:  make(map[int][]*node[T], len(e.groups)),
		flags:  make(map[int]*groupFlags, len(e.groups)),
		ledger: make(map[string]struct{}),
	}
}

// nodesFor parses group g on first use and returns its nodes in REVERSE
// declaration order (highest position first), so that pushing them onto
// the traversal stack visits ascending positions. Parsing is idempotent:
// a group already scanned is returned from the cache untouched, and no
// other group's state is read or written.
func (r *runState[T]) nodesFor(g int) []*node[T] {
	if cached, ok := r.nodes[g]; ok {
		return cached
	}

	decls := r.groups[g]
	flags := &groupFlags{nodes: make(map[int]Code, len(decls))}
	nodes := make([]*node[T], 0, len(decls))

	// Reverse scan: highest position first.
	for pos := len(decls) - 1; pos >= 0; pos-- {
		d := decls[pos]
		if d.kind == declMarker {
			// A marker occupies its slot but yields no node; its codes
			// apply to the group as a whole.
			flags.group |= d.codes
			continue
		}
		if d.codes != 0 {
			flags.nodes[pos] |= d.codes
		}
		nodes = append(nodes, &node[T]{group: g, pos: pos, units: d.units})
	}

	r.flags[g] = flags
	r.nodes[g] = nodes
	return nodes
}

// optional reports whether n may be omitted: either its whole group or its
// specific position carries the Optional code.
func (r *runState[T]) optional(n *node[T]) bool {
	f := r.flags[n.group]
	if f == nil {
		return false
	}
	return f.group&Optional != 0 || f.nodes[n.pos]&Optional != 0
}
