// Package beachline implements the ordered breakpoint structure at the
// heart of the sweepline core: a totally ordered sequence of beach-line
// breakpoints, backed by a red-black tree whose comparator evaluates
// breakpoint position under the current directrix.
//
// The comparator is the subtle part of the whole algorithm. It is built
// as a closure capturing pointers to the BeachLine's own mutable state
// (directrix, insertion hint) rather than threading that state through
// every call, because the underlying tree implementation's comparator
// signature has no room for extra arguments.
package beachline

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/gocompgeom/voronoi/dcel"
	"github.com/gocompgeom/voronoi/geometry"
	"github.com/gocompgeom/voronoi/numeric"
	"github.com/gocompgeom/voronoi/point"
	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/types"
)

// BeachLine is the ordered sequence of breakpoints currently touching the
// sweep line. It is not safe for concurrent use.
type BeachLine[T types.SignedNumber] struct {
	tree      *rbt.Tree
	directrix float64
	epsilon   float64
	hint      *insertHint[T]
	seq       int64
}

// insertHint is a transient record, set immediately before a hinted
// pair's two Put calls
// and cleared immediately after, telling the comparator where mLeft and
// mRight belong relative to their real neighbours even though both
// compare exactly equal to those neighbours under the general-case rule
// at that instant.
type insertHint[T types.SignedNumber] struct {
	leftNeighbor  *Breakpoint[T]
	mLeft         *Breakpoint[T]
	mRight        *Breakpoint[T]
	rightNeighbor *Breakpoint[T]
}

// probe is the transparent-lookup key: a bare
// (x, y) pair compared against a breakpoint's intersect-y under the
// probe's x, letting callers locate "the arc above this point" without
// constructing a phantom breakpoint.
type probe struct {
	x, y float64
}

// New creates an empty BeachLine. epsilon governs the tolerance used by
// every comparison the beach line makes.
func New[T types.SignedNumber](epsilon float64) *BeachLine[T] {
	bl := &BeachLine[T]{epsilon: epsilon}
	bl.tree = rbt.NewWith(beachLineComparator(bl))
	return bl
}

// SetDirectrix moves the sweep line to x. All subsequent general-case
// comparisons evaluate breakpoint position at this directrix until it is
// moved again.
func (bl *BeachLine[T]) SetDirectrix(x float64) {
	bl.directrix = x
}

// IsEmpty reports whether the beach line currently holds no breakpoints.
func (bl *BeachLine[T]) IsEmpty() bool {
	return bl.tree.Empty()
}

// Len returns the number of breakpoints currently in the beach line.
func (bl *BeachLine[T]) Len() int {
	return bl.tree.Size()
}

// First returns the leftmost breakpoint, or nil if the beach line is
// empty.
func (bl *BeachLine[T]) First() *Breakpoint[T] {
	node := bl.tree.Left()
	if node == nil {
		return nil
	}
	return node.Key.(*Breakpoint[T])
}

// Last returns the rightmost breakpoint, or nil if the beach line is
// empty.
func (bl *BeachLine[T]) Last() *Breakpoint[T] {
	node := bl.tree.Right()
	if node == nil {
		return nil
	}
	return node.Key.(*Breakpoint[T])
}

// LocateArcAbove finds the breakpoints immediately bracketing the arc
// currently above point p: before is the nearest breakpoint at or left
// of p, after is the nearest at or right of it, so a breakpoint passing
// through p within epsilon is returned as both. Either may be nil at the
// beach line's extremities.
func (bl *BeachLine[T]) LocateArcAbove(p point.Point) (before, after *Breakpoint[T]) {
	key := probe{x: p.X(), y: p.Y()}
	if floorNode, ok := bl.tree.Floor(key); ok {
		before = floorNode.Key.(*Breakpoint[T])
	}
	if ceilNode, ok := bl.tree.Ceiling(key); ok {
		after = ceilNode.Key.(*Breakpoint[T])
	}
	return before, after
}

// Neighbors returns the breakpoints immediately before and after bp in
// beach-line order, or nil at the extremities. bp must currently be in
// the beach line.
func (bl *BeachLine[T]) Neighbors(bp *Breakpoint[T]) (prev, next *Breakpoint[T]) {
	node := bl.tree.GetNode(bp)
	if node == nil {
		return nil, nil
	}
	prevIter := bl.tree.IteratorAt(node)
	if prevIter.Prev() {
		prev = prevIter.Key().(*Breakpoint[T])
	}
	nextIter := bl.tree.IteratorAt(node)
	if nextIter.Next() {
		next = nextIter.Key().(*Breakpoint[T])
	}
	return prev, next
}

// Insert adds bp to the beach line under the general comparator rules.
// Use InsertPair, not Insert, for the two breakpoints a site event
// creates — those require the insertion-hint contract.
func (bl *BeachLine[T]) Insert(bp *Breakpoint[T]) {
	bl.tree.Put(bp, nil)
}

// InsertPair inserts mLeft then mRight under the insertion-hint contract:
// mLeft is guaranteed to land immediately after
// leftNeighbor and mRight immediately before rightNeighbor, even though
// both compare exactly equal to those neighbours at the moment of
// insertion. leftNeighbor and/or rightNeighbor may be nil when the split
// arc is at a beach-line extremity.
func (bl *BeachLine[T]) InsertPair(leftNeighbor, mLeft, mRight, rightNeighbor *Breakpoint[T]) {
	bl.hint = &insertHint[T]{
		leftNeighbor:  leftNeighbor,
		mLeft:         mLeft,
		mRight:        mRight,
		rightNeighbor: rightNeighbor,
	}
	bl.tree.Put(mLeft, nil)
	bl.tree.Put(mRight, nil)
	bl.hint = nil
}

// Remove deletes bp from the beach line.
func (bl *BeachLine[T]) Remove(bp *Breakpoint[T]) {
	bl.tree.Remove(bp)
}

// NewBreakpoint creates a Breakpoint representing the boundary between
// arcs l (above) and r (below), tracing edge, and tagged with the beach
// line's next insertion sequence number. It is not yet inserted into the
// beach line; pass it to Insert or InsertPair.
func (bl *BeachLine[T]) NewBreakpoint(l, r site.Site[T], edge *dcel.Edge[T]) *Breakpoint[T] {
	bl.seq++
	return &Breakpoint[T]{seq: bl.seq, l: l, r: r, edge: edge}
}

// beachLineComparator builds the gods-style comparator closure for bl's
// tree: it type-switches between probe keys and real breakpoints,
// delegating to compareBreakpoints for the breakpoint/breakpoint case.
func beachLineComparator[T types.SignedNumber](bl *BeachLine[T]) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		aProbe, aIsProbe := a.(probe)
		bProbe, bIsProbe := b.(probe)

		switch {
		case aIsProbe && bIsProbe:
			panic("beachline: cannot compare two probes")
		case aIsProbe:
			return -compareProbeToBreakpoint(bl, b.(*Breakpoint[T]), aProbe)
		case bIsProbe:
			return compareProbeToBreakpoint(bl, a.(*Breakpoint[T]), bProbe)
		default:
			return compareBreakpoints(bl, a.(*Breakpoint[T]), b.(*Breakpoint[T]))
		}
	}
}

// compareProbeToBreakpoint compares bp against a probe point p, evaluated
// at p's x under the current directrix: bp sorts before p if bp's
// intersect-y at p.x is greater than p.y, within epsilon. Beach-line
// order runs from higher y (left) to lower y (right).
func compareProbeToBreakpoint[T types.SignedNumber](bl *BeachLine[T], bp *Breakpoint[T], p probe) int {
	y := geometry.BreakpointY(bp.l.Point(), bp.r.Point(), p.x, bl.epsilon)
	if numeric.FloatEquals(y, p.y, bl.epsilon) {
		return 0
	}
	if y > p.y {
		return -1
	}
	return 1
}

// compareBreakpoints implements the comparator contract: adjacency
// short-circuit, equality, insertion hint, and finally the general case
// of evaluating both breakpoints' y at the current directrix.
func compareBreakpoints[T types.SignedNumber](bl *BeachLine[T], a, b *Breakpoint[T]) int {
	if a == b {
		return 0
	}

	// Adjacency short-circuit: a and b share a middle arc. A mirror pair
	// (L, R) / (R, L) matches both ways round, so it is left to the hint
	// and the general case.
	rightMeetsLeft := a.r.ID() == b.l.ID()
	leftMeetsRight := a.l.ID() == b.r.ID()
	if rightMeetsLeft && !leftMeetsRight {
		return -1
	}
	if leftMeetsRight && !rightMeetsLeft {
		return 1
	}

	if bl.hint != nil {
		if result, ok := compareWithHint(bl, a, b); ok {
			return result
		}
	}

	// General case: evaluate both breakpoints' y at the current
	// directrix and compare, higher y first, falling back to insertion
	// order to keep a strict total order across exact ties.
	ay := geometry.BreakpointY(a.l.Point(), a.r.Point(), bl.directrix, bl.epsilon)
	by := geometry.BreakpointY(b.l.Point(), b.r.Point(), bl.directrix, bl.epsilon)
	if numeric.FloatEquals(ay, by, bl.epsilon) {
		if a.seq < b.seq {
			return -1
		}
		return 1
	}
	if ay > by {
		return -1
	}
	return 1
}

// compareWithHint resolves a comparison involving a hinted breakpoint
// (mLeft or mRight) against its anchor neighbour, or substitutes the
// anchor neighbour for the hinted breakpoint and recurses otherwise. ok
// is false when neither a nor b is currently hinted, meaning the caller
// should fall through to the general case.
func compareWithHint[T types.SignedNumber](bl *BeachLine[T], a, b *Breakpoint[T]) (result int, ok bool) {
	h := bl.hint

	switch a {
	case h.mLeft:
		switch b {
		case h.leftNeighbor:
			return 1, true
		case h.mRight:
			return -1, true
		}
		if h.leftNeighbor != nil {
			return compareBreakpoints(bl, h.leftNeighbor, b), true
		}
		return -1, true
	case h.mRight:
		switch b {
		case h.rightNeighbor:
			return -1, true
		case h.mLeft:
			return 1, true
		}
		if h.rightNeighbor != nil {
			return compareBreakpoints(bl, h.rightNeighbor, b), true
		}
		return 1, true
	}

	switch b {
	case h.mLeft, h.mRight:
		result, ok = compareWithHint(bl, b, a)
		if ok {
			return -result, true
		}
	}

	return 0, false
}
