// The `predicate.go` file collects plane2d's point-location predicates: point-vs-segment
// classification (spec §4.3) and point-in-polygon testing, both the convex specialisation and
// the general winding-number form (spec §4.8).

package plane2d

import (
	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

// ClassifyPointRelativeToSegment classifies point p relative to the directed segment seg,
// following spec §4.3.
//
// Let u = seg.end - seg.start, v = p - seg.start:
//  1. If |u|² <= ε² (degenerate segment): OnSegment if |v|² <= ε², else Right. This is a
//     deliberate, documented corner case — callers should avoid degenerate segments.
//  2. Compute c = cross(u, v). If |c| <= crossTolerance(ε, |u|², |v|²) the point is collinear
//     with the segment's line. Let d = dot(u, v); if -dotTolerance <= d <= |u|²+dotTolerance,
//     return OnSegment; else Right if d < 0 (before start), Left if d > |u|² (past end).
//  3. Otherwise return Left if c > 0, Right if c < 0.
func ClassifyPointRelativeToSegment[S scalar.Number[S]](seg Segment[S], p Point[S], opts ...options.Option[S]) Orientation {
	o := options.Apply(opts...)
	eps := o.Epsilon

	u := seg.end.Sub(seg.start)
	v := p.Sub(seg.start)
	uu := u.SquaredLength()
	vv := v.SquaredLength()

	if uu.Cmp(eps.Mul(eps)) <= 0 {
		if vv.Cmp(eps.Mul(eps)) <= 0 {
			return OrientationOnSegment
		}
		return OrientationRight
	}

	c := u.CrossProduct(v)
	crossTol := scalar.CrossTolerance(eps, uu, vv)
	if scalar.NearlyZero(c, crossTol) {
		d := u.DotProduct(v)
		dotTol := scalar.DotTolerance(eps, uu, vv, d)
		lower := dotTol.Neg()
		upper := uu.Add(dotTol)
		if d.Cmp(lower) >= 0 && d.Cmp(upper) <= 0 {
			return OrientationOnSegment
		}
		if d.Sign() < 0 {
			return OrientationRight
		}
		return OrientationLeft
	}

	if c.Sign() > 0 {
		return OrientationLeft
	}
	return OrientationRight
}

// PointClassification is the result of a point-in-polygon query.
type PointClassification int8

const (
	// PointOutside indicates the query point lies strictly outside the polygon.
	PointOutside PointClassification = -1
	// PointOnBoundary indicates the query point lies on the polygon's boundary.
	PointOnBoundary PointClassification = 0
	// PointInside indicates the query point lies strictly inside the polygon.
	PointInside PointClassification = 1
)

func (c PointClassification) String() string {
	switch c {
	case PointInside:
		return "Inside"
	case PointOnBoundary:
		return "OnBoundary"
	default:
		return "Outside"
	}
}

// LocatePointInConvexPolygon classifies query point q against convex polygon p, following spec
// §4.8. It walks the polygon's edges; if q lies on any edge (via ClassifyPointRelativeToSegment)
// it returns PointOnBoundary. Otherwise it accumulates the signs of cross(edge, q-edgeStart); if
// every sign agrees (ignoring near-zero comparisons under crossTolerance), the point is Inside;
// any disagreement means Outside. Requires p to have at least three vertices.
func LocatePointInConvexPolygon[S scalar.Number[S]](p Polygon[S], q Point[S], opts ...options.Option[S]) (PointClassification, error) {
	verts := p.Vertices()
	if len(verts) < 3 {
		return 0, newInputError("LocatePointInConvexPolygon", "polygon must have at least three vertices", ErrTooFewVertices)
	}
	o := options.Apply(opts...)

	n := len(verts)
	sawPositive, sawNegative := false, false
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		edge := NewSegment(a, b)
		if ClassifyPointRelativeToSegment(edge, q, options.WithEpsilon(o.Epsilon)) == OrientationOnSegment {
			if withinSegmentSpan(edge, q, o.Epsilon) {
				return PointOnBoundary, nil
			}
		}

		edgeVec := b.Sub(a)
		toQ := q.Sub(a)
		c := edgeVec.CrossProduct(toQ)
		tol := scalar.CrossTolerance(o.Epsilon, edgeVec.SquaredLength(), toQ.SquaredLength())
		if scalar.NearlyZero(c, tol) {
			continue
		}
		if c.Sign() > 0 {
			sawPositive = true
		} else {
			sawNegative = true
		}
	}

	if sawPositive && sawNegative {
		return PointOutside, nil
	}
	return PointInside, nil
}

// withinSegmentSpan reports whether collinear point q falls within the bounding span of seg's
// endpoints (as opposed to lying on seg's infinite extension). Used after
// ClassifyPointRelativeToSegment reports OnSegment, which already guarantees this for
// non-degenerate segments; this helper additionally protects the degenerate-segment corner case
// where OnSegment was returned via coincidence with a zero-length edge.
func withinSegmentSpan[S scalar.Number[S]](seg Segment[S], q Point[S], eps S) bool {
	lo := scalar.Min(seg.start.x, seg.end.x).Sub(eps)
	hi := scalar.Max(seg.start.x, seg.end.x).Add(eps)
	if q.x.Cmp(lo) < 0 || q.x.Cmp(hi) > 0 {
		return false
	}
	lo = scalar.Min(seg.start.y, seg.end.y).Sub(eps)
	hi = scalar.Max(seg.start.y, seg.end.y).Add(eps)
	return q.y.Cmp(lo) >= 0 && q.y.Cmp(hi) <= 0
}

// LocatePointInPolygon classifies query point q against (possibly non-convex) polygon p using
// the general winding-number method, following spec §4.8. If q lies on any edge, returns
// PointOnBoundary; otherwise accumulates signed crossings of a horizontal ray through q, using
// crossTolerance for the sign test. A non-zero winding number means Inside.
func LocatePointInPolygon[S scalar.Number[S]](p Polygon[S], q Point[S], opts ...options.Option[S]) (PointClassification, error) {
	verts := p.Vertices()
	if len(verts) < 3 {
		return 0, newInputError("LocatePointInPolygon", "polygon must have at least three vertices", ErrTooFewVertices)
	}
	o := options.Apply(opts...)
	eps := o.Epsilon

	n := len(verts)
	winding := 0
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		edge := NewSegment(a, b)
		if ClassifyPointRelativeToSegment(edge, q, options.WithEpsilon(eps)) == OrientationOnSegment && withinSegmentSpan(edge, q, eps) {
			return PointOnBoundary, nil
		}

		edgeVec := b.Sub(a)
		toQ := q.Sub(a)
		c := edgeVec.CrossProduct(toQ)
		tol := scalar.CrossTolerance(eps, edgeVec.SquaredLength(), toQ.SquaredLength())
		isLeft := c.Sign() > 0 && !scalar.NearlyZero(c, tol)
		isRight := c.Sign() < 0 && !scalar.NearlyZero(c, tol)

		if a.y.Cmp(q.y) <= 0 {
			if b.y.Cmp(q.y) > 0 && isLeft {
				winding++
			}
		} else {
			if b.y.Cmp(q.y) <= 0 && isRight {
				winding--
			}
		}
	}

	if winding != 0 {
		return PointInside, nil
	}
	return PointOutside, nil
}
