// Package geometry implements the low-level geometric predicates the
// sweepline core is built on: breakpoint evaluation under a moving
// directrix, and the circumcircle of a site triple.
//
// These are leaf functions with no dependency on the beach line, event
// queue, or output builder, so they take plain point.Point/circle.Circle
// values and return plain values — no handles, no mutation.
package geometry

import (
	"math"

	"github.com/gocompgeom/voronoi/circle"
	"github.com/gocompgeom/voronoi/numeric"
	"github.com/gocompgeom/voronoi/point"
	"github.com/gocompgeom/voronoi/types"
)

// BreakpointY computes the y-coordinate at which the parabolic arcs with
// foci l and r, both under directrix x = directrix, intersect — the
// intersection on the arc between l's arc (above) and r's arc (below).
//
// It handles the degenerate cases explicitly, falling back to the
// quadratic solution only when neither
// focus lies on the directrix and the two foci have distinct x-coordinates.
func BreakpointY(l, r point.Point, directrix, epsilon float64) float64 {
	lOnDirectrix := numeric.FloatGreaterThanOrEqualTo(l.X(), directrix-epsilon, epsilon)
	rOnDirectrix := numeric.FloatGreaterThanOrEqualTo(r.X(), directrix-epsilon, epsilon)

	switch {
	case lOnDirectrix && rOnDirectrix:
		return (l.Y() + r.Y()) / 2
	case lOnDirectrix:
		return l.Y()
	case rOnDirectrix:
		return r.Y()
	}

	if numeric.FloatEquals(l.X(), r.X(), epsilon) {
		// Parabolas are reflections of one another across a horizontal
		// line; their intersection is linear in y.
		return (l.Y() + r.Y()) / 2
	}

	// General case: solve for the intersection of the two parabolas with
	// foci l, r and common directrix x = directrix.
	//
	// A parabola with focus (fx, fy) and directrix x = d has the implicit
	// form x = ((y-fy)^2 + fx^2 - d^2) / (2*(fx-d)). Setting the two
	// parabolas' x expressions equal and solving for y yields a quadratic
	// a*y^2 + b*y + c = 0.
	dl := 2 * (l.X() - directrix)
	dr := 2 * (r.X() - directrix)

	a := 1/dl - 1/dr
	b := -2 * (l.Y()/dl - r.Y()/dr)
	c := (l.Y()*l.Y()+l.X()*l.X()-directrix*directrix)/dl -
		(r.Y()*r.Y()+r.X()*r.X()-directrix*directrix)/dr

	if numeric.FloatEquals(a, 0, epsilon) {
		// Degenerates to a linear equation b*y + c = 0.
		return -c / b
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sqrtDisc := math.Sqrt(disc)

	// a*y^2 + b*y + c is x_l(y) - x_r(y), positive where l's arc is the
	// nearer to the directrix. With l's arc above and r's below it turns
	// from negative to positive as y increases, which is the root
	// (-b + sqrt(disc)) / (2a) for either sign of a: the larger root when
	// l's focus is the farther from the directrix, the smaller otherwise.
	return (-b + sqrtDisc) / (2 * a)
}

// Circumcircle computes the circumcircle of three sites a, b, c.
//
// It returns ok == false when a, b, c are not in strict counterclockwise
// order — collinear or clockwise triples never raise a circle event.
func Circumcircle(a, b, c point.Point, epsilon float64) (circ circle.Circle, ok bool) {
	if point.Orientation(a, b, c, epsilon) != types.PointsCounterClockwise {
		return circle.Circle{}, false
	}

	g := (b.X()-a.X())*(c.Y()-b.Y()) - (b.Y()-a.Y())*(c.X()-b.X())

	asq := a.X()*a.X() + a.Y()*a.Y()
	bsq := b.X()*b.X() + b.Y()*b.Y()
	csq := c.X()*c.X() + c.Y()*c.Y()

	ux := (asq*(b.Y()-c.Y()) + bsq*(c.Y()-a.Y()) + csq*(a.Y()-b.Y())) / (2 * g)
	uy := (asq*(c.X()-b.X()) + bsq*(a.X()-c.X()) + csq*(b.X()-a.X())) / (2 * g)

	center := point.New(ux, uy)

	ab := a.DistanceToPoint(b)
	bc := b.DistanceToPoint(c)
	ca := c.DistanceToPoint(a)

	s1 := ab + bc - ca
	s2 := ab + ca - bc
	s3 := bc + ca - ab
	s4 := ab + bc + ca

	product := s1 * s2 * s3 * s4
	if product <= 0 {
		// Triangle inequality failure: ε chosen too small for the
		// coordinate scale in play. Treated as fatal numerical
		// degeneracy, not a recoverable condition.
		panic("geometry: circumradius triangle-inequality assertion failed")
	}

	radius := (ab * bc * ca) / math.Sqrt(product)

	return circle.NewFromPoint(center, radius), true
}

// TouchX returns the x-coordinate at which the sweep line first touches
// the circumcircle c — its "touch coordinate," x + R.
func TouchX(c circle.Circle) float64 {
	return c.Center().X() + c.Radius()
}
