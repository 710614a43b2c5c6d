// The `segment.go` file defines the `Segment` type and its associated methods, providing
// foundational tools for working with directed line segments in 2D geometry.
//
// A `Segment` represents a finite, straight line connecting two points in 2D space. It is
// defined by its start and end points; endpoints may coincide, producing a degenerate
// (zero-length) segment.
//
// This file complements the other geometric types in the `plane2d` package. Point-vs-segment
// classification lives in predicate.go; segment-segment intersection lives in intersection.go.

package plane2d

import (
	"fmt"

	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

// Segment represents a directed line segment in 2D space, defined by two endpoints, start and
// end. The generic scalar family S must satisfy scalar.Number[S].
type Segment[S scalar.Number[S]] struct {
	start Point[S]
	end   Point[S]
}

// NewSegment creates a new Segment from two endpoints, start and end. Endpoints may coincide,
// producing a degenerate (zero-length) segment; callers that need to exclude that case should
// check IsDegenerate.
func NewSegment[S scalar.Number[S]](start, end Point[S]) Segment[S] {
	return Segment[S]{start: start, end: end}
}

// Start returns the starting point of the segment.
func (ab Segment[S]) Start() Point[S] { return ab.start }

// End returns the ending point of the segment.
func (ab Segment[S]) End() Point[S] { return ab.end }

// Vector returns the displacement vector from ab.start to ab.end.
func (ab Segment[S]) Vector() Point[S] { return ab.end.Sub(ab.start) }

// String returns a formatted string representation of the segment, e.g.
// "Segment[Point[(0, 0)] -> Point[(3, 4)]]".
func (ab Segment[S]) String() string {
	return fmt.Sprintf("Segment[%s -> %s]", ab.start.String(), ab.end.String())
}

// Eq reports whether ab and cd share the same start and end points within the options' epsilon.
func (ab Segment[S]) Eq(cd Segment[S], opts ...options.Option[S]) bool {
	o := options.Apply(opts...)
	return pointsEqual(ab.start, cd.start, o.Epsilon) && pointsEqual(ab.end, cd.end, o.Epsilon)
}

// IsDegenerate reports whether the segment's endpoints coincide within the options' epsilon.
func (ab Segment[S]) IsDegenerate(opts ...options.Option[S]) bool {
	o := options.Apply(opts...)
	return scalar.NearlyZero(ab.Vector().SquaredLength(), o.Epsilon.Mul(o.Epsilon))
}

// Length returns the Euclidean length of the segment.
func (ab Segment[S]) Length() S {
	return ab.start.DistanceToPoint(ab.end)
}

// Midpoint returns the midpoint of the segment.
func (ab Segment[S]) Midpoint() Point[S] {
	two := scalar.One[S]().Add(scalar.One[S]())
	return Point[S]{x: ab.start.x.Add(ab.end.x).Div(two), y: ab.start.y.Add(ab.end.y).Div(two)}
}

// IntersectionType classifies the result of a segment-segment intersection query.
type IntersectionType uint8

const (
	// IntersectionNone indicates the segments do not touch.
	IntersectionNone IntersectionType = iota
	// IntersectionPoint indicates the segments meet at a single point.
	IntersectionPoint
	// IntersectionOverlap indicates the segments overlap along a sub-segment.
	IntersectionOverlap
)

func (t IntersectionType) String() string {
	switch t {
	case IntersectionPoint:
		return "Point"
	case IntersectionOverlap:
		return "Overlap"
	default:
		return "None"
	}
}

// SegmentIntersectionResult is the outcome of IntersectSegments. Point is valid iff
// Type == IntersectionPoint; Overlap is valid iff Type == IntersectionOverlap.
type SegmentIntersectionResult[S scalar.Number[S]] struct {
	Type    IntersectionType
	Point   Point[S]
	Overlap Segment[S]
}
