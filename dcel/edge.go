package dcel

import (
	"fmt"

	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/types"
)

// EdgeID is a stable identity for an Edge, assigned in creation order by a
// Builder.
type EdgeID int

// Edge is an oriented boundary between two sites L (left) and R (right).
// Traversed from Begin to End, L lies on the left
// and R lies on the right. Either endpoint may be nil — unbound — meaning
// the edge extends to infinity on that side; clipping an unbound edge to a
// viewport is the caller's responsibility.
type Edge[T types.SignedNumber] struct {
	id EdgeID

	l, r site.Site[T]
	b, e *Vertex
}

// ID returns the edge's stable identity.
func (e *Edge[T]) ID() EdgeID {
	return e.id
}

// Left returns the site bounding the edge on its left, traversing Begin to
// End.
func (e *Edge[T]) Left() site.Site[T] {
	return e.l
}

// Right returns the site bounding the edge on its right, traversing Begin
// to End.
func (e *Edge[T]) Right() site.Site[T] {
	return e.r
}

// Begin returns the edge's starting vertex, or nil if that end is unbound.
func (e *Edge[T]) Begin() *Vertex {
	return e.b
}

// End returns the edge's ending vertex, or nil if that end is unbound.
func (e *Edge[T]) End() *Vertex {
	return e.e
}

// IsBounded reports whether both endpoints of the edge are set.
func (e *Edge[T]) IsBounded() bool {
	return e.b != nil && e.e != nil
}

// String returns a human-readable representation of the Edge.
func (e *Edge[T]) String() string {
	begin := "unbound"
	if e.b != nil {
		begin = e.b.Center().String()
	}
	end := "unbound"
	if e.e != nil {
		end = e.e.Center().String()
	}
	return fmt.Sprintf("Edge#%d[l=%s, r=%s, b=%s, e=%s]", e.id, e.l, e.r, begin, end)
}
