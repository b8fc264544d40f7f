// Package dcel implements the partial DCEL-like output container the
// sweep driver builds incrementally: vertices, oriented edges, and
// per-site cyclic edge rings.
//
// A Builder owns every Vertex and Edge it creates; the beach line and
// event queue only ever hold references back into a Builder's storage,
// never copies, so that truncating an edge or invalidating a vertex is
// visible everywhere that handle is held.
package dcel

import (
	treeset "github.com/emirpasic/gods/sets/treeset"

	"github.com/gocompgeom/voronoi/circle"
	"github.com/gocompgeom/voronoi/numeric"
	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/types"
)

// Builder accumulates the vertices, edges, and cells of a single sweep
// run. It is not safe for concurrent use — a single-threaded sweep driver
// is the Builder's only caller.
type Builder[T types.SignedNumber] struct {
	epsilon float64

	vertices     *treeset.Set
	nextVertexID VertexID

	edges      []*Edge[T]
	nextEdgeID EdgeID

	cells map[site.ID]*Cell[T]
}

// NewBuilder creates an empty Builder. epsilon governs the tolerance used
// to order vertices keyed by (center-x, y).
func NewBuilder[T types.SignedNumber](epsilon float64) *Builder[T] {
	return &Builder[T]{
		epsilon:  epsilon,
		vertices: treeset.NewWith(vertexComparator(epsilon)),
		cells:    make(map[site.ID]*Cell[T]),
	}
}

// vertexComparator orders vertices lexicographically by (center.X,
// center.Y) with tolerance epsilon, falling back to ID to keep the
// ordering a strict total order when two distinct vertices land within
// epsilon of one another.
func vertexComparator(epsilon float64) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		va, vb := a.(*Vertex), b.(*Vertex)
		if va.id == vb.id {
			return 0
		}
		pa, pb := va.Center(), vb.Center()
		if pa.Less(pb, epsilon) {
			return -1
		}
		if pb.Less(pa, epsilon) {
			return 1
		}
		if va.id < vb.id {
			return -1
		}
		return 1
	}
}

func (b *Builder[T]) cellFor(s site.Site[T]) *Cell[T] {
	c, ok := b.cells[s.ID()]
	if !ok {
		c = newCell(s)
		b.cells[s.ID()] = c
	}
	return c
}

// NewEdge creates a new unbound edge separating sites l (left) and r
// (right), and appends it to both incident cells' rings — at the left
// cell's front and the right cell's back.
func (b *Builder[T]) NewEdge(l, r site.Site[T]) *Edge[T] {
	e := &Edge[T]{id: b.nextEdgeID, l: l, r: r}
	b.nextEdgeID++
	b.edges = append(b.edges, e)
	b.cellFor(l).pushFront(e)
	b.cellFor(r).pushBack(e)
	return e
}

// InstallVertex records a new vertex for the given circumcircle and
// returns a stable handle to it.
func (b *Builder[T]) InstallVertex(c circle.Circle) *Vertex {
	v := &Vertex{id: b.nextVertexID, circle: c}
	b.nextVertexID++
	b.vertices.Add(v)
	return v
}

// NewEdgeFromVertex creates a new edge separating sites l and r whose
// begin endpoint is already bound to v: a
// circle event's replacement breakpoint carries a new edge whose b is
// the just-created vertex and whose e is unset.
func (b *Builder[T]) NewEdgeFromVertex(l, r site.Site[T], v *Vertex) *Edge[T] {
	e := b.NewEdge(l, r)
	e.b = v
	return e
}

// DiscardVertex removes v from the vertex set without ever having bound it
// to an edge endpoint. This is used when a pending circle event is
// invalidated before it fires — the vertex was
// tentatively installed but turned out not to be part of the final
// diagram.
func (b *Builder[T]) DiscardVertex(v *Vertex) {
	b.vertices.Remove(v)
}

// Truncate binds vertex v to one of edge e's endpoints, choosing which end
// according to an orientation rule so that traversing Begin to
// End always keeps e.Left on the left and e.Right on the right.
//
// It panics if e already has both endpoints set — that is an invariant
// violation, not a recoverable condition.
func (b *Builder[T]) Truncate(e *Edge[T], v *Vertex) {
	switch {
	case e.b == nil && e.e == nil:
		l, r := e.l.Point(), e.r.Point()
		vc := v.Center()
		switch {
		case numeric.FloatLessThan(r.X(), l.X(), b.epsilon) && numeric.FloatLessThan(vc.Y(), l.Y(), b.epsilon):
			e.b = v
		case numeric.FloatLessThan(l.X(), r.X(), b.epsilon) && numeric.FloatLessThan(r.Y(), vc.Y(), b.epsilon):
			e.b = v
		default:
			e.e = v
		}
	case e.b != nil && e.e == nil:
		e.e = v
	case e.b == nil && e.e != nil:
		e.b = v
	default:
		panic("dcel: edge already has both endpoints set")
	}
}

// Vertices returns every installed vertex, ordered by (center-x, y) with
// the Builder's epsilon tolerance.
func (b *Builder[T]) Vertices() []*Vertex {
	values := b.vertices.Values()
	out := make([]*Vertex, len(values))
	for i, v := range values {
		out[i] = v.(*Vertex)
	}
	return out
}

// Edges returns every edge created during the run, in construction order.
func (b *Builder[T]) Edges() []*Edge[T] {
	out := make([]*Edge[T], len(b.edges))
	copy(out, b.edges)
	return out
}

// Cells returns a mapping from site ID to that site's cyclic CCW sequence
// of incident edges.
func (b *Builder[T]) Cells() map[site.ID][]*Edge[T] {
	out := make(map[site.ID][]*Edge[T], len(b.cells))
	for id, c := range b.cells {
		out[id] = c.Edges()
	}
	return out
}
