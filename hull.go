// The `hull.go` file implements convex hull construction via Andrew's monotone chain (spec
// §4.5) rather than an angular Graham scan: points are sorted once by tolerance-aware
// lexicographic order, then the lower and upper chains are built independently by popping
// non-left turns, avoiding the angular sort (and its pivot-point degeneracies) that a Graham
// scan requires.

package plane2d

import (
	"sort"

	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

// ComputeConvexHull computes the convex hull of a finite set of points using Andrew's monotone
// chain algorithm, following spec §4.5.
//
// Points are sorted by (x, y) with tolerance and deduplicated under pointsEqual. The lower chain
// is built by scanning left to right, popping the last point while the last turn is a right turn
// or straight (orientationDet not above its scale-aware cross tolerance); the upper chain mirrors
// this scanning right to left.
// Concatenating the two chains and dropping the last element of each (which duplicates the
// other chain's start) yields the hull, which is then cleaned up (§4.7) so the result is CCW,
// deduplicated, and free of collinear spikes.
//
// Returns an empty Polygon if fewer than two distinct points are given (spec §4.13: silent empty
// result, not an error). If all points are collinear the result has at most two vertices (the
// extent's endpoints).
func ComputeConvexHull[S scalar.Number[S]](points []Point[S], opts ...options.Option[S]) Polygon[S] {
	o := options.Apply(opts...)
	eps := o.Epsilon

	pts := dedupSortedByLex(points, eps)
	if len(pts) < 2 {
		return Polygon[S]{}
	}

	lower := buildChain(pts, eps)
	upperInput := make([]Point[S], len(pts))
	for i, p := range pts {
		upperInput[len(pts)-1-i] = p
	}
	upper := buildChain(upperInput, eps)

	if len(lower) > 0 {
		lower = lower[:len(lower)-1]
	}
	if len(upper) > 0 {
		upper = upper[:len(upper)-1]
	}

	hull := append(lower, upper...)
	if len(hull) < 3 {
		return Polygon[S]{vertices: dedupSortedByLex(hull, eps)}
	}
	return cleanupPolygon(hull, eps)
}

// buildChain builds one monotone chain (lower or upper, depending on the order pts is given in)
// by scanning left to right and popping the last point whenever the last three points fail to
// make a strict left turn.
func buildChain[S scalar.Number[S]](pts []Point[S], eps S) []Point[S] {
	chain := make([]Point[S], 0, len(pts))
	for _, p := range pts {
		for len(chain) >= 2 {
			det := orientationDet(chain[len(chain)-2], chain[len(chain)-1], p)
			a := chain[len(chain)-2]
			b := chain[len(chain)-1]
			tol := scalar.CrossTolerance(eps, b.Sub(a).SquaredLength(), p.Sub(a).SquaredLength())
			if det.Sign() > 0 && !scalar.NearlyZero(det, tol) {
				break
			}
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}

// dedupSortedByLex sorts points by tolerance-aware lexicographic (x, y) order and removes
// consecutive duplicates under pointsEqual.
func dedupSortedByLex[S scalar.Number[S]](points []Point[S], eps S) []Point[S] {
	pts := make([]Point[S], len(points))
	copy(pts, points)
	sort.SliceStable(pts, func(i, j int) bool {
		return lexLess(pts[i], pts[j], eps)
	})

	out := pts[:0:0]
	for _, p := range pts {
		if len(out) > 0 && pointsEqual(out[len(out)-1], p, eps) {
			continue
		}
		out = append(out, p)
	}
	return out
}
