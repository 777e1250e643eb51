// Package cartesian declaration types: groups, units, chains and option markers.
package cartesian

import "github.com/katalvlaran/lvlcomp/compose"

// Code is a numeric option code carried by a Marker or attached via Decl.With.
// Codes combine as a bitmask.
type Code int

const (
	// Optional marks a group (via Marker) or a single node (via With) as
	// omittable: the engine emits extra results with that node left out.
	Optional Code = 1 << iota
)

// declKind discriminates the three declaration shapes.
type declKind uint8

const (
	declMarker declKind = iota // option codes, never callable
	declUnit                   // a single unit function
	declChain                  // an inner chain composed as one atomic node
)

// Decl is one declaration inside a Group: a Unit, a Chain, or a Marker.
// Construct via the Unit, Chain and Marker functions; the zero Decl is
// an empty Marker.
type Decl[T any] struct {
	kind  declKind
	units []compose.Fn[T]
	codes Code
}

// Group is one ordered top-level input of the engine. Its index among the
// engine's arguments is the group index; a Decl's index within the Group
// (marker slot included) is its position. Both identify a node for
// deduplication purposes.
type Group[T any] []Decl[T]

// Unit declares a single composable function. A nil fn is accepted and
// panics only when the composition is invoked.
func Unit[T any](fn func(T) T) Decl[T] {
	return Decl[T]{kind: declUnit, units: []compose.Fn[T]{compose.Fn[T](fn)}}
}

// Chain declares an inner chain of units composed right-to-left as one
// atomic node: Chain(f, g) behaves as the single unit f∘g.
// Panics when called with no units.
func Chain[T any](fns ...func(T) T) Decl[T] {
	if len(fns) == 0 {
		// Fail fast: a chain with nothing to compose is a programming error.
		panic("cartesian: Chain requires at least one unit")
	}
	units := make([]compose.Fn[T], len(fns))
	for i, fn := range fns {
		units[i] = compose.Fn[T](fn)
	}
	return Decl[T]{kind: declChain, units: units}
}

// Marker declares an option-code marker for the enclosing Group. By
// convention it is the Group's first element; it occupies its position
// slot but never contributes a node.
func Marker[T any](codes ...Code) Decl[T] {
	return Decl[T]{kind: declMarker, codes: mergeCodes(codes)}
}

// With returns a copy of d carrying the given option codes at node
// granularity, in addition to any codes already attached. Group-level and
// node-level codes are additive: either alone marks the node.
// Panics when applied to a Marker, which has no node to mark.
func (d Decl[T]) With(codes ...Code) Decl[T] {
	if d.kind == declMarker {
		panic("cartesian: With applies to Unit or Chain declarations, not Marker")
	}
	d.codes |= mergeCodes(codes)
	return d
}

// mergeCodes folds a code list into one bitmask.
func mergeCodes(codes []Code) Code {
	var mask Code
	for _, c := range codes {
		mask |= c
	}
	return mask
}
