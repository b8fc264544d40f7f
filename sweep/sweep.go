// Package sweep implements the sweepline driver: it pulls site and
// circle events in order and dispatches them against the beach line,
// event queue, and output builder, producing the finished DCEL-like
// containers.
//
// This is the thinnest package in the module by design — the hard
// engineering lives in beachline's comparator and event's cross-linking;
// sweep only sequences calls into those two packages and the dcel
// builder.
package sweep

import (
	"github.com/gocompgeom/voronoi/beachline"
	"github.com/gocompgeom/voronoi/dcel"
	"github.com/gocompgeom/voronoi/event"
	"github.com/gocompgeom/voronoi/numeric"
	"github.com/gocompgeom/voronoi/point"
	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/types"
)

// Run computes the Voronoi diagram of sites, which must already be
// sorted lexicographically by (x, y) with tolerance epsilon, and returns
// the builder holding the resulting vertices, edges, and cells.
func Run[T types.SignedNumber](sites []site.Site[T], epsilon float64) *dcel.Builder[T] {
	st := &runState[T]{
		beach:   beachline.New[T](epsilon),
		queue:   event.New[T](epsilon),
		builder: dcel.NewBuilder[T](epsilon),
		epsilon: epsilon,
	}

	for _, p := range sites {
		pp := p.Point()
		for st.queue.ShouldFireBefore(pp.X(), pp.Y()) {
			entry, _ := st.queue.Pop()
			st.beach.SetDirectrix(entry.Vertex.TouchX())
			st.finalizeEvent(entry)
		}
		st.beach.SetDirectrix(pp.X())
		st.insertArc(p)
	}

	for !st.queue.IsEmpty() {
		entry, _ := st.queue.Pop()
		st.beach.SetDirectrix(entry.Vertex.TouchX())
		st.finalizeEvent(entry)
	}

	return st.builder
}

// runState carries the three mutually-consistent structures the driver
// sequences calls against, plus the site pending while the beach line
// still has fewer than two arcs (the beach line has no breakpoints
// at all until a second site arrives).
type runState[T types.SignedNumber] struct {
	beach   *beachline.BeachLine[T]
	queue   *event.Queue[T]
	builder *dcel.Builder[T]
	epsilon float64
	onlyArc *site.Site[T]
}

// insertArc implements insert-arc(p): locate the
// arc currently above p, split it into (left-copy, p, right-copy) by
// inserting a hinted pair of breakpoints sharing a new growing edge, and
// enqueue circle-event checks on the two new adjacent triples.
//
// The very first site has no arc to split (there are no breakpoints yet
// to locate); it is simply remembered. The second site then creates the
// beach line's first breakpoint pair directly, since the "arc above it"
// is trivially the first site's single arc spanning the whole plane.
func (st *runState[T]) insertArc(p site.Site[T]) {
	if st.beach.IsEmpty() {
		if st.onlyArc == nil {
			only := p
			st.onlyArc = &only
			return
		}
		st.splitArc(*st.onlyArc, p, nil, nil)
		st.onlyArc = nil
		return
	}

	before, after := st.beach.LocateArcAbove(p.Point())

	var arcSite site.Site[T]
	switch {
	case before != nil && after != nil:
		arcSite = before.Right()
		if before.HasEvent() && after.HasEvent() && before.EventVertex() == after.EventVertex() {
			event.DeleteEvent(st.queue, st.builder, before.EventVertex(), before, after)
		}
	case before != nil:
		arcSite = before.Right()
	case after != nil:
		arcSite = after.Left()
	default:
		panic("sweep: non-empty beach line has no locatable breakpoints")
	}

	st.splitArc(arcSite, p, before, after)
}

// splitArc creates the hinted breakpoint pair that splits arcSite's arc
// around the new site p, installs it between before and after (either of
// which may be nil at a beach-line extremity), and checks the two new
// adjacent triples for circle events.
func (st *runState[T]) splitArc(arcSite, p site.Site[T], before, after *beachline.Breakpoint[T]) {
	edge := st.builder.NewEdge(arcSite, p)
	mLeft := st.beach.NewBreakpoint(arcSite, p, edge)
	mRight := st.beach.NewBreakpoint(p, arcSite, edge)
	st.beach.InsertPair(before, mLeft, mRight, after)

	if before != nil {
		event.CheckEvent(st.queue, st.builder, st.epsilon, before, mLeft)
	}
	if after != nil {
		event.CheckEvent(st.queue, st.builder, st.epsilon, mRight, after)
	}
}

// finalizeEvent fires
// an event already popped by Run: it locates the full range of breakpoints around its vertex
// (using the middle breakpoint's still-live cross-link), truncates each
// one's edge by the vertex, erases them, installs the replacement
// breakpoint and its new edge, and schedules neighbour circle-event
// checks on each side.
//
// The range may span more than the two breakpoints originally linked to
// this event ("simultaneous events": degree-4-or-more
// co-circular sites): it is grown outward while the next site beyond the
// range still lies exactly on the firing vertex's circumcircle.
func (st *runState[T]) finalizeEvent(entry event.Entry[T]) {
	v := entry.Vertex
	left := entry.Middle

	_, right := st.beach.Neighbors(left)

	first, last := st.growRange(left, right, v)

	doomed := []*beachline.Breakpoint[T]{first}
	for cur := first; cur != last; {
		_, next := st.beach.Neighbors(cur)
		doomed = append(doomed, next)
		cur = next
	}

	leftSurvivor := first.Left()
	rightSurvivor := last.Right()

	for _, bp := range doomed {
		st.builder.Truncate(bp.Edge(), v)
		if other := bp.EventVertex(); other != nil {
			if other == v {
				bp.SetEventVertex(nil)
			} else {
				event.DeleteEvent(st.queue, st.builder, other, bp)
			}
		}
	}
	for _, bp := range doomed {
		st.beach.Remove(bp)
	}

	newEdge := st.builder.NewEdgeFromVertex(leftSurvivor, rightSurvivor, v)
	newBP := st.beach.NewBreakpoint(leftSurvivor, rightSurvivor, newEdge)
	st.beach.Insert(newBP)

	newPrev, newNext := st.beach.Neighbors(newBP)
	if newPrev != nil {
		event.CheckEvent(st.queue, st.builder, st.epsilon, newPrev, newBP)
	}
	if newNext != nil {
		event.CheckEvent(st.queue, st.builder, st.epsilon, newBP, newNext)
	}
}

// growRange extends the [left, right] breakpoint pair outward while the
// next site beyond the range lies on v's circumcircle within epsilon,
// implementing the co-circular "simultaneous events" case.
func (st *runState[T]) growRange(left, right *beachline.Breakpoint[T], v *dcel.Vertex) (first, last *beachline.Breakpoint[T]) {
	first, last = left, right

	for {
		prev, _ := st.beach.Neighbors(first)
		if prev == nil || !st.onCircle(prev.Left().Point(), v) {
			break
		}
		first = prev
	}

	for {
		_, next := st.beach.Neighbors(last)
		if next == nil || !st.onCircle(next.Right().Point(), v) {
			break
		}
		last = next
	}

	return first, last
}

func (st *runState[T]) onCircle(p point.Point, v *dcel.Vertex) bool {
	return numeric.FloatEquals(p.DistanceToPoint(v.Center()), v.Radius(), st.epsilon)
}
