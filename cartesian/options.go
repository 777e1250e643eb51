package cartesian

// Option configures optional engine behavior. Use with New(groups, opts...).
// Option constructors validate their input and panic on meaningless values;
// the engine itself never panics on options.
type Option[T any] func(*engineOptions[T])

// engineOptions holds the configurable knobs of an Engine.
type engineOptions[T any] struct {
	// onResult, if non-nil, observes every emitted value in emission order.
	// Purely diagnostic: it cannot alter or abort the traversal.
	onResult func(v T)
}

// defaultOptions returns the zero configuration: no hooks.
func defaultOptions[T any]() engineOptions[T] {
	return engineOptions[T]{}
}

// WithOnResult installs fn as a per-result hook, invoked with each value
// as it is produced (full compositions and omission variants alike).
// Panics on nil to surface the programming error early.
func WithOnResult[T any](fn func(v T)) Option[T] {
	if fn == nil {
		panic("cartesian: WithOnResult(nil)")
	}
	return func(o *engineOptions[T]) {
		o.onResult = fn
	}
}
