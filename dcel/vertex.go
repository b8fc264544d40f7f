package dcel

import (
	"fmt"

	"github.com/gocompgeom/voronoi/circle"
	"github.com/gocompgeom/voronoi/point"
)

// VertexID is a stable identity for a Vertex, assigned in creation order by
// a Builder.
type VertexID int

// Vertex is a Voronoi vertex: the circumcircle of three (or, at a
// co-circular degeneracy, more) adjacent sites.
//
// A Vertex is installed the moment a circle event's circumcircle is
// accepted. A vertex whose pending event is later invalidated is removed
// from the Builder's ordered set rather than mutated (beach-line keys are
// never rewritten in place); any other vertex stays in the set and is
// part of the Result.
type Vertex struct {
	id     VertexID
	circle circle.Circle
}

// ID returns the vertex's stable identity.
func (v *Vertex) ID() VertexID {
	return v.id
}

// Circle returns the vertex's circumcircle.
func (v *Vertex) Circle() circle.Circle {
	return v.circle
}

// Center returns the circumcircle's center — the vertex's (x, y) position.
func (v *Vertex) Center() point.Point {
	return v.circle.Center()
}

// Radius returns the circumcircle's radius.
func (v *Vertex) Radius() float64 {
	return v.circle.Radius()
}

// TouchX returns the x-coordinate at which the sweep line first touches
// this vertex's circumcircle — its touch coordinate, x + R.
func (v *Vertex) TouchX() float64 {
	return v.circle.Center().X() + v.circle.Radius()
}

// String returns a human-readable representation of the Vertex.
func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex#%d%s", v.id, v.circle)
}
