// Package lvlcomp is your in-memory toolkit for combinatorial function
// composition — enumerate every combination of transforms drawn from
// ordered groups, optional members included, in one deterministic pass.
//
// 🚀 What is lvlcomp?
//
//	A small, focused, zero-dependency library that brings together:
//		• cartesian: the product engine — groups of units & chains, option
//		  markers, omission variants with deduplication
//		• compose: generic right-to-left (Compose) and left-to-right (Pipe)
//		  composition over func(T) T
//		• subsets: lazy, restartable enumeration of unique subsets,
//		  smallest first
//
// ✨ Why choose lvlcomp?
//
//   - Deterministic – the result order is a documented contract, not an accident
//   - Bounded – explicit-stack traversal, no recursion over the product space
//   - Pure Go – generics, no reflection, no hidden deps
//   - Lazy when you want it – stream results via iter.Seq, collect when you don't
//
// Quick taste:
//
//	results := cartesian.Compose(
//	    cartesian.Group[string]{cartesian.Unit(a), cartesian.Unit(b)},
//	    cartesian.Group[string]{cartesian.Marker[string](cartesian.Optional), cartesian.Unit(c)},
//	)("1")
//	// → ["a(c(1))", "a(1)", "b(c(1))", "b(1)"]
//
// Everything is organized under three subpackages:
//
//	cartesian/ — the combinatorial composition engine
//	compose/   — Compose, Pipe, Identity primitives
//	subsets/   — unique size-ascending subset sequences
//
//	go get github.com/katalvlaran/lvlcomp
package lvlcomp
