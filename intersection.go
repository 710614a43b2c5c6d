// The `intersection.go` file implements segment-segment intersection (spec §4.4): the general
// transversal case, the parallel-non-collinear miss case, and the parallel-and-collinear family
// including degenerate (zero-length) endpoints and collinear interval overlap.

package plane2d

import (
	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

// IntersectSegments computes the intersection of segments a and b, following spec §4.4.
//
// Segment a is parameterized as p + t*r, t in [0,1]; segment b as q + u*s, u in [0,1]. Let
// qp = q - p. Case A (both rxs and qpxr near zero) is the parallel-and-collinear family. Case B
// (rxs near zero, qpxr not) is parallel non-collinear: no intersection. Case C is the general
// transversal case: t = cross(qp,s)/rxs, u = cross(qp,r)/rxs, accepted when both lie in [0,1]
// inflated by a length-scaled parameter tolerance.
func IntersectSegments[S scalar.Number[S]](a, b Segment[S], opts ...options.Option[S]) SegmentIntersectionResult[S] {
	o := options.Apply(opts...)
	eps := o.Epsilon

	p, r := a.start, a.Vector()
	q, s := b.start, b.Vector()
	qp := q.Sub(p)

	rr := r.SquaredLength()
	ss := s.SquaredLength()

	rxs := r.CrossProduct(s)
	qpxr := qp.CrossProduct(r)

	rxsTol := scalar.CrossTolerance(eps, rr, ss)
	parallel := scalar.NearlyZero(rxs, rxsTol)

	if parallel {
		qpxrTol := scalar.CrossTolerance(eps, qp.SquaredLength(), rr)
		if !scalar.NearlyZero(qpxr, qpxrTol) {
			// Case B: parallel, non-collinear.
			return SegmentIntersectionResult[S]{Type: IntersectionNone}
		}
		return intersectCollinearSegments(a, b, eps)
	}

	// Case C: general transversal case.
	t := qp.CrossProduct(s).Div(rxs)
	u := qp.CrossProduct(r).Div(rxs)

	paramTol := eps.Mul(r.Length().Add(s.Length()).Add(scalar.One[S]()))
	lower := paramTol.Neg()
	upper := scalar.One[S]().Add(paramTol)
	if t.Cmp(lower) >= 0 && t.Cmp(upper) <= 0 && u.Cmp(lower) >= 0 && u.Cmp(upper) <= 0 {
		return SegmentIntersectionResult[S]{Type: IntersectionPoint, Point: p.Add(r.Scale(t))}
	}
	return SegmentIntersectionResult[S]{Type: IntersectionNone}
}

// intersectCollinearSegments handles Case A of IntersectSegments: a and b are parallel and
// collinear, or one/both are degenerate points on that shared line.
func intersectCollinearSegments[S scalar.Number[S]](a, b Segment[S], eps S) SegmentIntersectionResult[S] {
	aDegenerate := a.IsDegenerate(options.WithEpsilon(eps))
	bDegenerate := b.IsDegenerate(options.WithEpsilon(eps))

	switch {
	case aDegenerate && bDegenerate:
		if pointsEqual(a.start, b.start, eps) {
			return SegmentIntersectionResult[S]{Type: IntersectionPoint, Point: a.start}
		}
		return SegmentIntersectionResult[S]{Type: IntersectionNone}
	case aDegenerate:
		if ClassifyPointRelativeToSegment(b, a.start, options.WithEpsilon(eps)) == OrientationOnSegment {
			return SegmentIntersectionResult[S]{Type: IntersectionPoint, Point: a.start}
		}
		return SegmentIntersectionResult[S]{Type: IntersectionNone}
	case bDegenerate:
		if ClassifyPointRelativeToSegment(a, b.start, options.WithEpsilon(eps)) == OrientationOnSegment {
			return SegmentIntersectionResult[S]{Type: IntersectionPoint, Point: b.start}
		}
		return SegmentIntersectionResult[S]{Type: IntersectionNone}
	}

	// Project b's endpoints onto a's parameter axis: t = dot(P - a.start, r) / |r|^2.
	r := a.Vector()
	rr := r.SquaredLength()
	tStart := b.start.Sub(a.start).DotProduct(r).Div(rr)
	tEnd := b.end.Sub(a.start).DotProduct(r).Div(rr)
	t0, t1 := tStart, tEnd
	if t0.Cmp(t1) > 0 {
		t0, t1 = t1, t0
	}

	zero := scalar.Zero[S]()
	one := scalar.One[S]()
	paramTol := eps.Mul(r.Length().Add(b.Vector().Length()).Add(one))

	lo := zero
	if t0.Cmp(zero) > 0 {
		lo = t0
	}
	hi := one
	if t1.Cmp(one) < 0 {
		hi = t1
	}

	if lo.Sub(hi).Cmp(paramTol) > 0 {
		return SegmentIntersectionResult[S]{Type: IntersectionNone}
	}
	if scalar.NearlyZero(hi.Sub(lo), paramTol) {
		return SegmentIntersectionResult[S]{Type: IntersectionPoint, Point: a.start.Add(r.Scale(lo))}
	}
	return SegmentIntersectionResult[S]{
		Type:    IntersectionOverlap,
		Overlap: NewSegment(a.start.Add(r.Scale(lo)), a.start.Add(r.Scale(hi))),
	}
}
