// Package site defines the input handle for the sweepline core: a stable
// reference to one of the generator points of the Voronoi diagram.
//
// Sites are created once, never mutated, and never
// destroyed during a run — every other package (beachline, event, dcel,
// sweep) refers to a site by this handle rather than by coordinate, so
// that two coincident-looking coordinates are never confused with one
// another.
package site

import (
	"fmt"

	"github.com/gocompgeom/voronoi/point"
	"github.com/gocompgeom/voronoi/types"
)

// ID is a stable, zero-based index into the input sequence a Site was built
// from. It is the identity a Cell is keyed by in the final output.
type ID int

// Site is a handle to an input point of the chosen coordinate type T.
//
// T may be any [types.SignedNumber] (int, int32, int64, float32, float64) —
// the sweepline core itself always computes in float64 (see Point), but
// callers are free to supply sites in whatever integer or floating-point
// coordinate system their input data already uses.
type Site[T types.SignedNumber] struct {
	id ID
	x  T
	y  T
}

// New creates a Site with the given stable ID and coordinates.
func New[T types.SignedNumber](id ID, x, y T) Site[T] {
	return Site[T]{id: id, x: x, y: y}
}

// ID returns the site's stable identity.
func (s Site[T]) ID() ID {
	return s.id
}

// X returns the site's x-coordinate in its original coordinate type.
func (s Site[T]) X() T {
	return s.x
}

// Y returns the site's y-coordinate in its original coordinate type.
func (s Site[T]) Y() T {
	return s.y
}

// Point converts the site's coordinates to a float64 point.Point, the
// representation the geometric primitives, beach line, and event queue
// operate on internally.
func (s Site[T]) Point() point.Point {
	return point.New(float64(s.x), float64(s.y))
}

// String returns a human-readable representation of the Site.
func (s Site[T]) String() string {
	return fmt.Sprintf("Site#%d(%v, %v)", s.id, s.x, s.y)
}

// Less reports whether s sorts strictly before other under the lexicographic
// (x then y) ordering with tolerance epsilon — the pre-sort contract the
// sweep driver assumes of its input.
func (s Site[T]) Less(other Site[T], epsilon float64) bool {
	return s.Point().Less(other.Point(), epsilon)
}

// IsSorted reports whether sites is already in non-decreasing lexicographic
// order with tolerance epsilon. The sweep driver assumes this of its input
// and does not re-sort; callers can use IsSorted as a
// cheap precondition check before calling sweep.Run directly (Compute
// sorts a copy itself).
func IsSorted[T types.SignedNumber](sites []Site[T], epsilon float64) bool {
	for i := 1; i < len(sites); i++ {
		if sites[i].Less(sites[i-1], epsilon) {
			return false
		}
	}
	return true
}
