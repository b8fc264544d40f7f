package event

import (
	"github.com/gocompgeom/voronoi/beachline"
	"github.com/gocompgeom/voronoi/dcel"
	"github.com/gocompgeom/voronoi/geometry"
	"github.com/gocompgeom/voronoi/types"
)

// CheckEvent tests whether consecutive breakpoints L and R, which share a
// middle arc, converge to a circle event:
//
//  1. Compute the circumcircle of L.Left, L.Right (== R.Left), R.Right.
//     If it isn't a valid vertex, do nothing.
//  2. If either L or R already references a pending event, keep whichever
//     fires earlier and delete the other.
//  3. Install the new vertex, enqueue the event, and point both L and R
//     at it.
func CheckEvent[T types.SignedNumber](
	q *Queue[T],
	builder *dcel.Builder[T],
	epsilon float64,
	l, r *beachline.Breakpoint[T],
) {
	circ, ok := geometry.Circumcircle(l.Left().Point(), l.Right().Point(), r.Right().Point(), epsilon)
	if !ok {
		return
	}

	candidate := builder.InstallVertex(circ)

	if l.HasEvent() || r.HasEvent() {
		existing := l.EventVertex()
		if existing == nil {
			existing = r.EventVertex()
		}
		if touchLess(existing, candidate.TouchX(), candidate.Center().Y(), epsilon) {
			// The existing event fires first; discard the candidate and
			// leave the existing event and its links untouched.
			builder.DiscardVertex(candidate)
			return
		}
		DeleteEvent(q, builder, existing, l, r)
	}

	q.Push(candidate, l)
	l.SetEventVertex(candidate)
	r.SetEventVertex(candidate)
}

// DeleteEvent removes the pending event for v from the queue, discards its
// tentative vertex, and clears the event back-references on the
// breakpoints that were going to fire it.
func DeleteEvent[T types.SignedNumber](
	q *Queue[T],
	builder *dcel.Builder[T],
	v *dcel.Vertex,
	breakpoints ...*beachline.Breakpoint[T],
) {
	q.Delete(v)
	builder.DiscardVertex(v)
	for _, bp := range breakpoints {
		if bp != nil && bp.EventVertex() == v {
			bp.SetEventVertex(nil)
		}
	}
}
