// Package compose provides generic function-composition primitives over
// single-argument transforms func(T) T.
//
// What:
//
//   - Compose(f1, f2, …, fn): right-to-left composition — fn is applied first,
//     f1 last, i.e. Compose(f, g)(x) == f(g(x)).
//   - Pipe(f1, f2, …, fn): left-to-right composition — f1 is applied first,
//     i.e. Pipe(f, g)(x) == g(f(x)).
//   - Identity: the neutral element of both; Compose() and Pipe() return it.
//
// Why:
//
//   - Building blocks for the cartesian package, which composes every
//     combination of units drawn from ordered groups.
//   - Standalone: any pipeline of same-typed transforms.
//
// Complexity:
//
//   - Building a composition of n transforms: O(1) time, O(1) space
//     (the slice is captured, not copied per call).
//   - Invoking it: O(n) calls.
//
// Errors: none. A nil transform in the list is not guarded against and
// panics at invocation time, the same way any nil Go function call does.
package compose
