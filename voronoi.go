// Package voronoi computes the Voronoi diagram of a finite set of planar
// points using Fortune's sweepline algorithm.
//
// The algorithm maintains a beach line of parabolic arcs swept by a
// vertical directrix moving in +x, a priority queue of pending circle events
// cross-linked to the beach line, and a partial doubly-connected-edge-list
// style output: vertices, oriented edges, and per-site cyclic cell rings.
// Input parsing, random site generation, rendering, and viewport clipping
// are left to callers; this package only computes the diagram's topology
// and geometry.
//
// # Precision Control with Epsilon
//
// Every comparison the sweep makes — breakpoint ordering, circumcircle
// validity, vertex identity — is tolerance-bound by an epsilon supplied
// through [options.WithEpsilon]. Choosing too small an epsilon for the
// input's coordinate scale can make the circumradius computation detect a
// triangle-inequality violation; see [Compute].
package voronoi

import (
	"fmt"
	"sort"

	"github.com/gocompgeom/voronoi/dcel"
	"github.com/gocompgeom/voronoi/options"
	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/sweep"
	"github.com/gocompgeom/voronoi/types"
)

func init() {
	logDebugf("debug logging enabled")
}

// Compute runs Fortune's sweepline algorithm over sites and returns the
// resulting diagram. Sites need not be pre-sorted — Compute sorts a copy
// lexicographically by (x, y) before handing it to the sweep driver, which
// requires that ordering as a precondition.
//
// Epsilon defaults to 0 (exact comparisons) unless overridden with
// [options.WithEpsilon]. Compute returns an error for an empty site slice
// or a negative epsilon; it panics only if the sweep driver itself hits a
// numerical degeneracy that a larger epsilon would resolve (see
// geometry.Circumcircle).
func Compute[T types.SignedNumber](sites []site.Site[T], opts ...options.GeometryOptionsFunc) (*Result[T], error) {
	if len(sites) == 0 {
		return nil, fmt.Errorf("voronoi: Compute requires at least one site")
	}

	resolved := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	if resolved.Epsilon < 0 {
		return nil, fmt.Errorf("voronoi: epsilon must be non-negative, got %v", resolved.Epsilon)
	}

	sorted := make([]site.Site[T], len(sites))
	copy(sorted, sites)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j], resolved.Epsilon)
	})

	logDebugf("running sweep over %d sites with epsilon=%v", len(sorted), resolved.Epsilon)

	builder := sweep.Run(sorted, resolved.Epsilon)
	return &Result[T]{builder: builder}, nil
}

// Result is the output of a single [Compute] run: the vertices, oriented
// edges, and per-site cyclic cell rings the sweep produced.
type Result[T types.SignedNumber] struct {
	builder *dcel.Builder[T]
}

// Vertices returns every Voronoi vertex found, ordered by (center-x,
// center-y).
func (r *Result[T]) Vertices() []*dcel.Vertex {
	return r.builder.Vertices()
}

// Edges returns every Voronoi edge found, in the order they were created
// during the sweep. An edge with a nil Begin or End extends to infinity on
// that side.
func (r *Result[T]) Edges() []*dcel.Edge[T] {
	return r.builder.Edges()
}

// Cells returns, for every input site, its bounding edges in
// counter-clockwise order.
func (r *Result[T]) Cells() map[site.ID][]*dcel.Edge[T] {
	return r.builder.Cells()
}
