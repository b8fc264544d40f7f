package dcel

import (
	dll "github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/types"
)

// Cell is a site together with its cyclic list of incident edges in
// counter-clockwise order.
//
// Edges are appended during the sweep rather than sorted after the fact:
// a new edge is pushed to the front of its left cell's ring and to the
// back of its right cell's ring, so the final order is CCW by
// construction. A doubly linked list gives O(1)
// push at either end without the reallocation a slice insert-at-front
// would cost.
type Cell[T types.SignedNumber] struct {
	site  site.Site[T]
	edges *dll.List
}

func newCell[T types.SignedNumber](s site.Site[T]) *Cell[T] {
	return &Cell[T]{site: s, edges: dll.New()}
}

// Site returns the site this cell belongs to.
func (c *Cell[T]) Site() site.Site[T] {
	return c.site
}

// pushFront appends e to the front of the cell's edge ring.
func (c *Cell[T]) pushFront(e *Edge[T]) {
	c.edges.Prepend(e)
}

// pushBack appends e to the back of the cell's edge ring.
func (c *Cell[T]) pushBack(e *Edge[T]) {
	c.edges.Add(e)
}

// Edges returns the cell's incident edges in CCW order.
func (c *Cell[T]) Edges() []*Edge[T] {
	values := c.edges.Values()
	out := make([]*Edge[T], len(values))
	for i, v := range values {
		out[i] = v.(*Edge[T])
	}
	return out
}

// Len returns the number of edges incident to the cell.
func (c *Cell[T]) Len() int {
	return c.edges.Size()
}
