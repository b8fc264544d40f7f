package beachline

import (
	"fmt"

	"github.com/gocompgeom/voronoi/dcel"
	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/types"
)

// Breakpoint is a beach-line node: a pair of adjacent sites (L, R)
// defining a parabola intersection, the growing edge being traced by
// that intersection, and a back-reference to the vertex of a pending
// circle event, if any.
//
// seq is an insertion sequence number used only to break exact ties in
// the beach-line comparator's general case, keeping the ordering a
// strict total order as a red-black tree requires.
type Breakpoint[T types.SignedNumber] struct {
	seq int64

	l, r        site.Site[T]
	edge        *dcel.Edge[T]
	eventVertex *dcel.Vertex
}

// Left returns the site whose arc lies above this breakpoint.
func (bp *Breakpoint[T]) Left() site.Site[T] {
	return bp.l
}

// Right returns the site whose arc lies below this breakpoint.
func (bp *Breakpoint[T]) Right() site.Site[T] {
	return bp.r
}

// Edge returns the growing edge this breakpoint traces.
func (bp *Breakpoint[T]) Edge() *dcel.Edge[T] {
	return bp.edge
}

// EventVertex returns the vertex of this breakpoint's pending circle
// event, or nil if it has none.
func (bp *Breakpoint[T]) EventVertex() *dcel.Vertex {
	return bp.eventVertex
}

// HasEvent reports whether this breakpoint currently references a
// pending circle event.
func (bp *Breakpoint[T]) HasEvent() bool {
	return bp.eventVertex != nil
}

// SetEventVertex records v as the vertex of this breakpoint's pending
// circle event. Passing nil clears the back-reference.
func (bp *Breakpoint[T]) SetEventVertex(v *dcel.Vertex) {
	bp.eventVertex = v
}

// String returns a human-readable representation of the Breakpoint.
func (bp *Breakpoint[T]) String() string {
	return fmt.Sprintf("Breakpoint#%d(l=%s, r=%s)", bp.seq, bp.l, bp.r)
}
