// Package subsets enumerates the unique, non-empty subsets of a finite set,
// ordered by ascending subset size, as a lazy and restartable sequence.
//
// What:
//
//   - Increasing(set): an iter.Seq over every unique non-empty subset of set.
//     All 1-element subsets come first, then all 2-element subsets, and so on,
//     up to the full set. Within one size, subsets appear in lexicographic
//     order of their element positions.
//   - Duplicate values in the input collapse: subsets are formed over the
//     distinct values, keeping each value's first occurrence order.
//
// Why:
//
//   - The cartesian package expands each complete selection path by omitting
//     every unique non-empty subset of its optional positions, smallest
//     omissions first.
//   - Standalone: any powerset-style search that wants small candidates early.
//
// Complexity:
//
//   - Full enumeration of n distinct elements yields 2^n−1 subsets;
//     producing each costs O(k) for a k-element subset.
//   - Memory: O(n) for the rolling index state; each yielded slice is a
//     fresh allocation the caller may retain.
//
// The sequence is restartable: every range over it enumerates from the start.
// Breaking out of a range early is safe and abandons no resources.
//
// Errors: none. An empty (or all-duplicate, hence empty after collapsing)
// input yields an empty sequence.
package subsets
