// Package cartesian composes every combination of functions drawn from
// ordered groups, with optional members expanding into omission variants.
//
// What:
//
//   - Input: N ordered Groups of declarations. A declaration is a single
//     Unit, a Chain of units composed as one atomic node, or a Marker of
//     option codes (currently Optional) applying to the whole group;
//     per-node codes attach via Decl.With.
//   - The engine walks the Cartesian product across the groups and, for
//     every combination, emits the right-to-left composition of the chosen
//     nodes applied to a seed value.
//   - Every node marked optional (group-level or node-level) additionally
//     produces one variant per unique non-empty subset of optional nodes
//     omitted, smallest subsets first, with structural duplicates
//     suppressed: two different combinations that reduce to the same
//     remaining nodes contribute that variant exactly once.
//
// Why:
//
//   - Pipeline fan-out: try every pairing of alternative transforms.
//   - Feature toggles: optional stages generate the with/without matrix
//     of a processing chain in one deterministic pass.
//
// How:
//
//	result := cartesian.Compose(
//	    cartesian.Group[string]{cartesian.Unit(a), cartesian.Unit(b)},
//	    cartesian.Group[string]{cartesian.Marker[string](cartesian.Optional), cartesian.Unit(c)},
//	)("1")
//	// → ["a(c(1))", "a(1)", "b(c(1))", "b(1)"]
//
// Order contract: combinations enumerate exactly as nested loops over the
// groups in declaration order, each loop ascending by declaration position;
// each combination's omission variants follow it immediately, ordered by
// ascending omission size. The traversal itself uses an explicit frame
// stack, so its depth is bounded by the group count regardless of group
// sizes.
//
// Complexity:
//
//   - Time: O(P × 2^q) compositions in the worst case, where P is the
//     product of the group sizes and q the optional nodes per path.
//   - Memory: O(result count) for the collected sequence; O(groups) for
//     the traversal stack.
//
// Errors: none. Invoking a nil unit panics at composition time, the same
// way any nil Go function call does; the engine deliberately performs no
// upfront callability validation. Constructors with structurally
// meaningless arguments (an empty Chain, With on a Marker) panic.
package cartesian
