package voronoi_test

import (
	"math"
	"sort"
	"testing"

	"github.com/gocompgeom/voronoi"
	"github.com/gocompgeom/voronoi/dcel"
	"github.com/gocompgeom/voronoi/options"
	"github.com/gocompgeom/voronoi/point"
	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertVoronoiInvariants exercises every structural property a Voronoi
// diagram must hold against a single Compute result: planarity, the
// bisector property, the empty-circle property, edge orientation, cell
// convexity, and idempotence under permutation of the input order. Vertex
// degree is scenario-specific and checked separately by callers via
// assertVertexDegree.
func assertVoronoiInvariants(t *testing.T, sites []site.Site[float64], result *voronoi.Result[float64], epsilon float64) {
	t.Helper()

	edges := result.Edges()
	vertices := result.Vertices()

	assertPlanarity(t, edges, epsilon)
	assertBisectorProperty(t, edges, epsilon)
	assertEmptyCircleProperty(t, vertices, sites, epsilon)
	assertEdgeOrientation(t, edges, epsilon)
	assertCellConvexity(t, sites, result.Cells(), epsilon)
	assertIdempotentUnderPermutation(t, sites, epsilon)
}

// assertVertexDegree counts the edges with v as an endpoint and compares
// against want — a Voronoi vertex's degree is the number of edges meeting
// there, which for simultaneous (co-circular) events can exceed 3.
func assertVertexDegree(t *testing.T, v *dcel.Vertex, edges []*dcel.Edge[float64], want int) {
	t.Helper()

	got := 0
	for _, e := range edges {
		if e.Begin() == v {
			got++
		}
		if e.End() == v {
			got++
		}
	}
	assert.Equal(t, want, got, "vertex %s should have degree %d", v, want)
}

// assertPlanarity checks that no two bounded edges cross except at a
// shared endpoint, via pairwise segment-intersection tests.
func assertPlanarity(t *testing.T, edges []*dcel.Edge[float64], epsilon float64) {
	t.Helper()

	var bounded []*dcel.Edge[float64]
	for _, e := range edges {
		if e.IsBounded() {
			bounded = append(bounded, e)
		}
	}

	for i := 0; i < len(bounded); i++ {
		for j := i + 1; j < len(bounded); j++ {
			a, b := bounded[i], bounded[j]
			if segmentsCross(a.Begin().Center(), a.End().Center(), b.Begin().Center(), b.End().Center(), epsilon) {
				t.Errorf("edges %s and %s cross improperly", a, b)
			}
		}
	}
}

// segmentsCross reports whether open segments p1p2 and p3p4 properly
// cross, using orientation tests. Segments that merely share an endpoint
// (as adjacent Voronoi edges legitimately do) are not considered crossing.
func segmentsCross(p1, p2, p3, p4 point.Point, epsilon float64) bool {
	if p1.Eq(p3, epsilon) || p1.Eq(p4, epsilon) || p2.Eq(p3, epsilon) || p2.Eq(p4, epsilon) {
		return false
	}

	o1 := point.Orientation(p1, p2, p3, epsilon)
	o2 := point.Orientation(p1, p2, p4, epsilon)
	o3 := point.Orientation(p3, p4, p1, epsilon)
	o4 := point.Orientation(p3, p4, p2, epsilon)

	if o1 == types.PointsCollinear || o2 == types.PointsCollinear || o3 == types.PointsCollinear || o4 == types.PointsCollinear {
		return false
	}
	return o1 != o2 && o3 != o4
}

// assertBisectorProperty checks that every bound endpoint of an edge
// between sites l and r is equidistant from l and r, as any point on a
// perpendicular bisector must be.
func assertBisectorProperty(t *testing.T, edges []*dcel.Edge[float64], epsilon float64) {
	t.Helper()

	tol := math.Max(epsilon*10, 1e-6)
	for _, e := range edges {
		l, r := e.Left().Point(), e.Right().Point()
		for _, v := range []*dcel.Vertex{e.Begin(), e.End()} {
			if v == nil {
				continue
			}
			p := v.Center()
			assert.InDelta(t, p.DistanceToPoint(l), p.DistanceToPoint(r), tol,
				"edge %s endpoint %s must be equidistant from its two sites", e, v)
		}
	}
}

// assertEmptyCircleProperty checks that no site lies strictly inside any
// vertex's circumcircle — the defining property of a Delaunay/Voronoi
// vertex.
func assertEmptyCircleProperty(t *testing.T, vertices []*dcel.Vertex, sites []site.Site[float64], epsilon float64) {
	t.Helper()

	tol := math.Max(epsilon*10, 1e-6)
	for _, v := range vertices {
		for _, s := range sites {
			d := s.Point().DistanceToPoint(v.Center())
			assert.GreaterOrEqual(t, d, v.Radius()-tol,
				"site %s lies inside vertex %s's circumcircle", s, v)
		}
	}
}

// assertEdgeOrientation checks that, for every fully bounded edge,
// traversing Begin to End keeps the Left site on the left — a positive
// cross product of the edge direction against the vector to the left
// site.
func assertEdgeOrientation(t *testing.T, edges []*dcel.Edge[float64], epsilon float64) {
	t.Helper()

	for _, e := range edges {
		if !e.IsBounded() {
			continue
		}
		begin, end := e.Begin().Center(), e.End().Center()
		direction := end.Sub(begin)
		toLeft := e.Left().Point().Sub(begin)
		cross := direction.CrossProduct(toLeft)
		assert.GreaterOrEqual(t, cross, -epsilon, "edge %s does not keep its left site on the left", e)
	}
}

// assertCellConvexity checks that each site's cell, closed against a
// bounding box far beyond the input's extent, traces a convex polygon —
// consecutive boundary points turn the same way throughout.
func assertCellConvexity(t *testing.T, sites []site.Site[float64], cells map[site.ID][]*dcel.Edge[float64], epsilon float64) {
	t.Helper()

	centroid := sitesCentroid(sites)
	byID := make(map[site.ID]point.Point, len(sites))
	for _, s := range sites {
		byID[s.ID()] = s.Point()
	}

	const reach = 1000.0
	for id, edges := range cells {
		center, ok := byID[id]
		if !ok {
			continue
		}
		pts := dedupePoints(cellBoundaryPoints(edges, centroid, reach), epsilon)
		if len(pts) < 3 {
			// Not enough boundary structure to judge convexity (e.g. a
			// cell with a single doubly-unbounded edge).
			continue
		}

		sort.Slice(pts, func(i, j int) bool {
			return math.Atan2(pts[i].Y()-center.Y(), pts[i].X()-center.X()) <
				math.Atan2(pts[j].Y()-center.Y(), pts[j].X()-center.X())
		})

		n := len(pts)
		for i := 0; i < n; i++ {
			a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
			cross := b.Sub(a).CrossProduct(c.Sub(b))
			assert.GreaterOrEqual(t, cross, -epsilon*reach, "cell for site %v is not convex at %s->%s->%s", id, a, b, c)
		}
	}
}

// cellBoundaryPoints collects the finite boundary points of a cell,
// extending any unbounded edge outward along its bisector direction by
// reach so the cell can be closed for a convexity check.
func cellBoundaryPoints(edges []*dcel.Edge[float64], centroid point.Point, reach float64) []point.Point {
	var pts []point.Point
	for _, e := range edges {
		switch {
		case e.Begin() != nil && e.End() != nil:
			pts = append(pts, e.Begin().Center(), e.End().Center())
		case e.Begin() != nil:
			pts = append(pts, e.Begin().Center(), rayPoint(e, e.Begin().Center(), centroid, reach))
		case e.End() != nil:
			pts = append(pts, e.End().Center(), rayPoint(e, e.End().Center(), centroid, reach))
		default:
			l, r := e.Left().Point(), e.Right().Point()
			mid := point.New((l.X()+r.X())/2, (l.Y()+r.Y())/2)
			dir := bisectorOutwardDirection(e, centroid)
			pts = append(pts,
				point.New(mid.X()+dir.X()*reach, mid.Y()+dir.Y()*reach),
				point.New(mid.X()-dir.X()*reach, mid.Y()-dir.Y()*reach),
			)
		}
	}
	return pts
}

// rayPoint extends outward from anchor along e's bisector direction by
// reach.
func rayPoint(e *dcel.Edge[float64], anchor, centroid point.Point, reach float64) point.Point {
	dir := bisectorOutwardDirection(e, centroid)
	return point.New(anchor.X()+dir.X()*reach, anchor.Y()+dir.Y()*reach)
}

// bisectorOutwardDirection returns a unit vector along e's perpendicular
// bisector, oriented away from the centroid of all sites — a reasonable
// approximation of "outward" for the convex-position point sets this
// module's tests use.
func bisectorOutwardDirection(e *dcel.Edge[float64], centroid point.Point) point.Point {
	l, r := e.Left().Point(), e.Right().Point()
	mid := point.New((l.X()+r.X())/2, (l.Y()+r.Y())/2)

	perp := point.New(r.Y()-l.Y(), l.X()-r.X())
	length := math.Hypot(perp.X(), perp.Y())
	if length == 0 {
		return perp
	}
	perp = point.New(perp.X()/length, perp.Y()/length)

	toCentroid := centroid.Sub(mid)
	if perp.DotProduct(toCentroid) > 0 {
		return point.New(-perp.X(), -perp.Y())
	}
	return perp
}

func dedupePoints(pts []point.Point, epsilon float64) []point.Point {
	var out []point.Point
	for _, p := range pts {
		duplicate := false
		for _, q := range out {
			if p.Eq(q, epsilon) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, p)
		}
	}
	return out
}

func sitesCentroid(sites []site.Site[float64]) point.Point {
	var sx, sy float64
	for _, s := range sites {
		sx += s.X()
		sy += s.Y()
	}
	n := float64(len(sites))
	return point.New(sx/n, sy/n)
}

// assertIdempotentUnderPermutation re-runs Compute with the input reversed
// and checks the resulting vertices and edge count are unchanged — Compute
// sorts its input before sweeping, so the diagram it produces must not
// depend on the order sites were supplied in.
func assertIdempotentUnderPermutation(t *testing.T, sites []site.Site[float64], epsilon float64) {
	t.Helper()

	base, err := voronoi.Compute(sites, options.WithEpsilon(epsilon))
	require.NoError(t, err)

	reversed := make([]site.Site[float64], len(sites))
	copy(reversed, sites)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	again, err := voronoi.Compute(reversed, options.WithEpsilon(epsilon))
	require.NoError(t, err)

	baseVertices, againVertices := base.Vertices(), again.Vertices()
	require.Len(t, againVertices, len(baseVertices))
	for i := range baseVertices {
		assert.InDelta(t, baseVertices[i].Center().X(), againVertices[i].Center().X(), 1e-6)
		assert.InDelta(t, baseVertices[i].Center().Y(), againVertices[i].Center().Y(), 1e-6)
	}
	assert.Len(t, again.Edges(), len(base.Edges()))
}
