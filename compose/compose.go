package compose

// Fn is a single-argument transform from T to T, the unit of composition.
type Fn[T any] func(T) T

// Identity returns the neutral transform: it yields its argument unchanged.
func Identity[T any]() Fn[T] {
	return func(v T) T { return v }
}

// Compose returns the right-to-left composition of fns:
// Compose(f1, f2, …, fn)(x) == f1(f2(…fn(x)…)).
// The last transform is applied first, directly to the argument; the first
// transform is the outermost. Compose() with no transforms returns Identity.
func Compose[T any](fns ...Fn[T]) Fn[T] {
	if len(fns) == 0 {
		return Identity[T]()
	}
	return func(v T) T {
		// Apply from the innermost (last) transform outward.
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe returns the left-to-right composition of fns:
// Pipe(f1, f2, …, fn)(x) == fn(…f2(f1(x))…).
// The first transform is applied first. Pipe() with no transforms returns Identity.
func Pipe[T any](fns ...Fn[T]) Fn[T] {
	if len(fns) == 0 {
		return Identity[T]()
	}
	return func(v T) T {
		for i := 0; i < len(fns); i++ {
			v = fns[i](v)
		}
		return v
	}
}
