package cartesian

import "iter"

// Engine enumerates the composition matrix of a fixed set of groups.
// It holds only the immutable inputs and options; every Run or Seq call
// owns its own traversal state, so an Engine is safe for concurrent use
// and repeated invocation yields identical sequences.
type Engine[T any] struct {
	groups []Group[T]
	opts   engineOptions[T]
}

// Result captures one engine run: the ordered values plus diagnostics.
type Result[T any] struct {
	// Values holds every composition result in traversal order: each
	// complete combination followed immediately by its omission variants,
	// ascending by omission size. Never nil.
	Values []T

	// FullPaths counts the complete selection paths visited; with no
	// optional markers this equals len(Values) and the product of the
	// group sizes.
	FullPaths int

	// Reduced counts the omission variants emitted.
	Reduced int

	// Deduplicated counts the omission variants suppressed because an
	// identical reduced path had already produced a result.
	Deduplicated int
}

// New builds an Engine over groups. The group slice is captured as-is;
// callers must not mutate it while the Engine is in use.
func New[T any](groups []Group[T], opts ...Option[T]) *Engine[T] {
	o := defaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}
	return &Engine[T]{groups: groups, opts: o}
}

// Compose is the curried entry point: it binds the groups and returns an
// applier that, given a seed value, returns every composition result in
// deterministic order. With zero groups the applier returns an empty
// sequence without invoking anything.
func Compose[T any](groups ...Group[T]) func(seed T) []T {
	e := New(groups)
	return func(seed T) []T {
		return e.Run(seed).Values
	}
}

// Run performs one full traversal with seed and collects every result.
func (e *Engine[T]) Run(seed T) *Result[T] {
	r := newRun(e)
	res := &Result[T]{Values: make([]T, 0, productSize(e.groups))}
	r.traverse(seed, func(v T) bool {
		res.Values = append(res.Values, v)
		return true
	})
	res.FullPaths = r.fullPaths
	res.Reduced = r.reduced
	res.Deduplicated = r.deduplicated
	return res
}

// Seq returns a lazy, restartable stream of the results for seed. Each
// range over it performs a fresh traversal with its own state; breaking
// early abandons the traversal mid-product.
func (e *Engine[T]) Seq(seed T) iter.Seq[T] {
	return func(yield func(T) bool) {
		newRun(e).traverse(seed, yield)
	}
}

// productSize estimates the full-combination count for the Values capacity
// hint: the product of per-group declaration counts, markers included, so
// it only overshoots. Zero groups give zero.
func productSize[T any](groups []Group[T]) int {
	if len(groups) == 0 {
		return 0
	}
	size := 1
	for _, g := range groups {
		size *= len(g)
	}
	return size
}
