// Package event implements the circle-event priority queue: an ordered
// mapping from vertex handle to the middle breakpoint of the triple a
// firing event would extinguish, cross-linked with the beach line so a
// stale event can be found and invalidated without a linear scan.
//
// The queue is backed by a generic B-tree rather than the beach line's
// red-black tree: a B-tree suits ordered insert/ascend/delete over a
// value type, while the red-black tree earns its keep in beachline by
// also supporting floor/ceiling/neighbour cursor access.
package event

import (
	"github.com/google/btree"

	"github.com/gocompgeom/voronoi/beachline"
	"github.com/gocompgeom/voronoi/dcel"
	"github.com/gocompgeom/voronoi/numeric"
	"github.com/gocompgeom/voronoi/types"
)

// degree is the B-tree branching factor.
const degree = 2

// Entry is a pending circle event: the vertex that would be installed if
// the event fires, and the middle breakpoint of the triple that would be
// extinguished.
type Entry[T types.SignedNumber] struct {
	Vertex *dcel.Vertex
	Middle *beachline.Breakpoint[T]
}

// Queue is the ordered set of pending circle events, keyed by each
// event's vertex under a touch-coordinate ordering:
// event_less(v1, v2) := (v1.x+R, v1.y) < (v2.x+R, v2.y) with
// tolerance epsilon.
type Queue[T types.SignedNumber] struct {
	tree    *btree.BTreeG[Entry[T]]
	epsilon float64
}

// New creates an empty Queue. epsilon governs the tolerance used to
// order events by touch coordinate.
func New[T types.SignedNumber](epsilon float64) *Queue[T] {
	return &Queue[T]{
		tree:    btree.NewG[Entry[T]](degree, lessFunc[T](epsilon)),
		epsilon: epsilon,
	}
}

// IsEmpty reports whether the queue currently holds no pending events.
func (q *Queue[T]) IsEmpty() bool {
	return q.tree.Len() == 0
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	return q.tree.Len()
}

// Push installs a pending event for vertex v, whose firing would
// extinguish middle's arc.
func (q *Queue[T]) Push(v *dcel.Vertex, middle *beachline.Breakpoint[T]) {
	q.tree.ReplaceOrInsert(Entry[T]{Vertex: v, Middle: middle})
}

// Peek returns the earliest pending event without removing it.
func (q *Queue[T]) Peek() (Entry[T], bool) {
	return q.tree.Min()
}

// Pop removes and returns the earliest pending event.
func (q *Queue[T]) Pop() (Entry[T], bool) {
	min, ok := q.tree.Min()
	if !ok {
		return Entry[T]{}, false
	}
	q.tree.Delete(min)
	return min, true
}

// Delete removes the pending event for vertex v, if any.
func (q *Queue[T]) Delete(v *dcel.Vertex) {
	q.tree.Delete(Entry[T]{Vertex: v})
}

// ShouldFireBefore reports whether the earliest pending event's touch
// coordinate sorts strictly before (x, y) under the queue's tolerance —
// the test the sweep driver uses to decide whether to drain an event
// before inserting the next site.
func (q *Queue[T]) ShouldFireBefore(x, y float64) bool {
	min, ok := q.tree.Min()
	if !ok {
		return false
	}
	return touchLess(min.Vertex, x, y, q.epsilon)
}

func touchLess(v *dcel.Vertex, x, y, epsilon float64) bool {
	vx := v.TouchX()
	if numeric.FloatLessThan(vx, x, epsilon) {
		return true
	}
	if numeric.FloatGreaterThan(vx, x, epsilon) {
		return false
	}
	return numeric.FloatLessThan(v.Center().Y(), y, epsilon)
}

// lessFunc builds the btree.BTreeG ordering function for Entry values,
// comparing by the vertex's touch coordinate and then its center y; an
// entry always compares equal to one holding the same vertex.
// btree.BTreeG treats two items as equal (and therefore interchangeable
// for Delete/Get) when neither is less than the other, so Delete only
// needs the vertex — it doesn't need the original Middle.
func lessFunc[T types.SignedNumber](epsilon float64) btree.LessFunc[Entry[T]] {
	return func(a, b Entry[T]) bool {
		if a.Vertex == b.Vertex {
			return false
		}
		return touchLess(a.Vertex, b.Vertex.TouchX(), b.Vertex.Center().Y(), epsilon)
	}
}
