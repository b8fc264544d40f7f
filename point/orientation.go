package point

import (
	"math"

	"github.com/gocompgeom/voronoi/types"
)

// Orientation determines the relative orientation of three points in a 2D plane.
//
// It calculates whether p, q, and r make a clockwise turn, a counterclockwise
// turn, or are collinear, using the cross product of the vectors (q-p) and (r-p).
// epsilon is scaled by the lengths of the two vectors so the tolerance adapts
// to the scale of the input, matching the circumcircle predicate in the
// geometry package that relies on this function.
func Orientation(p, q, r Point, epsilon float64) types.PointOrientation {
	val := q.Sub(p).CrossProduct(r.Sub(p))

	adaptiveEpsilon := epsilon * (p.DistanceToPoint(q) + p.DistanceToPoint(r))

	if math.Abs(val) < adaptiveEpsilon {
		return types.PointsCollinear
	}
	if val > 0 {
		return types.PointsCounterClockwise
	}
	return types.PointsClockwise
}
