// This file contains the implementation of the Point type, which represents a point in 2D space.
// It includes the vector algebra primitives (subtract, cross, dot, squaredLength) and the
// orientation predicate every other type in this package is built from.
//
// The Point type is generic over a scalar family S satisfying scalar.Number[S], so the same
// code path serves both the binary-float and arbitrary-precision decimal families. It serves as
// a building block for more complex geometric types like Segment, Triangle, and Polygon.

package plane2d

import (
	"fmt"

	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

// Orientation represents the relative orientation of three points in a two-dimensional plane, or
// of a point relative to a directed segment (classifyPointRelativeToSegment, §4.3). It describes
// whether the points/arrangement are collinear, form a clockwise turn (right), or a
// counterclockwise turn (left).
type Orientation int8

// Valid values for Orientation.
const (
	// OrientationRight indicates a clockwise turn, or that a point lies to the right of a
	// directed segment.
	OrientationRight Orientation = -1

	// OrientationOnSegment indicates that the points are collinear, or that a point lies on a
	// segment's span.
	OrientationOnSegment Orientation = 0

	// OrientationLeft indicates a counterclockwise turn, or that a point lies to the left of a
	// directed segment.
	OrientationLeft Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case OrientationLeft:
		return "Left"
	case OrientationRight:
		return "Right"
	default:
		return "OnSegment"
	}
}

// Point represents a point in two-dimensional space with x and y coordinates of a generic scalar
// family S. The Point struct provides methods for common vector operations such as addition,
// subtraction, and distance calculations, making it versatile for computational geometry.
//
// Type Parameter:
//   - S: The scalar family for the coordinates, constrained by scalar.Number[S].
//
// Usage:
//   - To create a new Point, use the NewPoint constructor: p := NewPoint(x, y)
//
// Accessor Methods:
//   - p.X(): Returns the x-coordinate of the point.
//   - p.Y(): Returns the y-coordinate of the point.
type Point[S scalar.Number[S]] struct {
	x S
	y S
}

// NewPoint creates and returns a new Point with the specified x and y coordinates.
func NewPoint[S scalar.Number[S]](x, y S) Point[S] {
	return Point[S]{x: x, y: y}
}

// X returns the x-coordinate of the Point p.
func (p Point[S]) X() S { return p.x }

// Y returns the y-coordinate of the Point p.
func (p Point[S]) Y() S { return p.y }

// Coordinates returns the x and y coordinates of p as separate values.
func (p Point[S]) Coordinates() (x, y S) { return p.x, p.y }

// Add returns a new Point that represents the vector sum of the calling Point p and another
// Point q.
func (p Point[S]) Add(q Point[S]) Point[S] {
	return Point[S]{x: p.x.Add(q.x), y: p.y.Add(q.y)}
}

// Sub returns a new Point representing the vector p - q. This is the "subtract" primitive named
// in spec §4.2.
func (p Point[S]) Sub(q Point[S]) Point[S] {
	return Point[S]{x: p.x.Sub(q.x), y: p.y.Sub(q.y)}
}

// Scale returns a new Point that scales the calling Point p by a scalar value k, component-wise.
func (p Point[S]) Scale(k S) Point[S] {
	return Point[S]{x: p.x.Mul(k), y: p.y.Mul(k)}
}

// Negate returns a new Point with both coordinates negated.
func (p Point[S]) Negate() Point[S] {
	return Point[S]{x: p.x.Neg(), y: p.y.Neg()}
}

// CrossProduct calculates the 2D cross product (determinant) of the vectors represented by the
// calling Point p and another Point q: p.x*q.y - p.y*q.x. This is the "cross" primitive named in
// spec §4.2.
//   - A positive result indicates a counterclockwise turn (left turn),
//   - A negative result indicates a clockwise turn (right turn),
//   - A result of zero indicates that the vectors are collinear.
func (p Point[S]) CrossProduct(q Point[S]) S {
	return p.x.Mul(q.y).Sub(p.y.Mul(q.x))
}

// DotProduct calculates the dot product of the vector represented by Point p with the vector
// represented by Point q. This is the "dot" primitive named in spec §4.2.
func (p Point[S]) DotProduct(q Point[S]) S {
	return p.x.Mul(q.x).Add(p.y.Mul(q.y))
}

// SquaredLength returns the squared Euclidean length of the vector represented by p, i.e.
// p.DotProduct(p). This is the "squaredLength" primitive named in spec §4.2.
func (p Point[S]) SquaredLength() S {
	return p.DotProduct(p)
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between Point p and another
// Point q, avoiding the computational cost of a square root.
func (p Point[S]) DistanceSquaredToPoint(q Point[S]) S {
	return q.Sub(p).SquaredLength()
}

// DistanceToPoint calculates the Euclidean (straight-line) distance between Point p and another
// Point q.
func (p Point[S]) DistanceToPoint(q Point[S]) S {
	return p.DistanceSquaredToPoint(q).Sqrt()
}

// Length returns the Euclidean length of the vector represented by p, i.e. the distance from the
// origin to p.
func (p Point[S]) Length() S {
	return p.SquaredLength().Sqrt()
}

// Eq reports whether the calling Point p is exactly equal to another Point q, coordinate-wise.
// For tolerance-aware comparison use pointsEqual.
func (p Point[S]) Eq(q Point[S]) bool {
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// String returns a string representation of the Point p in the format "Point[(x, y)]".
func (p Point[S]) String() string {
	return fmt.Sprintf("Point[(%s, %s)]", p.x.String(), p.y.String())
}

// subtract is the free-function form of Point.Sub, matching the primitive name spec §4.2 gives
// it: the vector a - b.
func subtract[S scalar.Number[S]](a, b Point[S]) Point[S] { return a.Sub(b) }

// cross is the free-function form of Point.CrossProduct.
func cross[S scalar.Number[S]](a, b Point[S]) S { return a.CrossProduct(b) }

// dot is the free-function form of Point.DotProduct.
func dot[S scalar.Number[S]](a, b Point[S]) S { return a.DotProduct(b) }

// squaredLength is the free-function form of Point.SquaredLength.
func squaredLength[S scalar.Number[S]](v Point[S]) S { return v.SquaredLength() }

// orientationDet computes spec §4.2's signed orientation determinant:
//
//	orientationDet(a, b, c) = (bx-ax)(cy-ay) - (by-ay)(cx-ax)
//
// Positive indicates a counterclockwise turn a->b->c, negative a clockwise turn, and zero
// collinearity. TriangleOrientation computes the same determinant and classifies it with a
// scale-aware tolerance.
func orientationDet[S scalar.Number[S]](a, b, c Point[S]) S {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.x.Mul(ac.y).Sub(ab.y.Mul(ac.x))
}

// pointsEqual reports whether a and b are equal within epsilon, per coordinate: |Δx| <= ε and
// |Δy| <= ε. This is spec §4.2's "pointsEqual" primitive.
func pointsEqual[S scalar.Number[S]](a, b Point[S], epsilon S) bool {
	return scalar.NearlyZero(a.x.Sub(b.x), epsilon) && scalar.NearlyZero(a.y.Sub(b.y), epsilon)
}

// lexLess reports whether a sorts strictly before b in tolerance-aware lexicographic (x, then y)
// order. This is spec §4.2's "lexLess" primitive, used by dedupSortedByLex to sort points for
// the convex hull (§4.5) and Delaunay deduplication (§4.6).
func lexLess[S scalar.Number[S]](a, b Point[S], epsilon S) bool {
	dx := a.x.Sub(b.x)
	if !scalar.NearlyZero(dx, epsilon) {
		return dx.Sign() < 0
	}
	dy := a.y.Sub(b.y)
	if !scalar.NearlyZero(dy, epsilon) {
		return dy.Sign() < 0
	}
	return false
}

// TriangleOrientation determines the orientation of three points a, b, c by the sign of
// orientationDet, returning OrientationLeft for a counterclockwise turn, OrientationRight for
// clockwise, and OrientationOnSegment for collinear points.
//
// The comparison against zero is scale-aware: the tolerance widens with the squared lengths of
// a->b and a->c via scalar.CrossTolerance, so the same epsilon behaves consistently regardless
// of how far the points are from the origin.
func TriangleOrientation[S scalar.Number[S]](a, b, c Point[S], opts ...options.Option[S]) Orientation {
	o := options.Apply(opts...)
	ab := b.Sub(a)
	ac := c.Sub(a)
	det := ab.x.Mul(ac.y).Sub(ab.y.Mul(ac.x))
	tol := scalar.CrossTolerance(o.Epsilon, ab.SquaredLength(), ac.SquaredLength())
	switch {
	case scalar.NearlyZero(det, tol):
		return OrientationOnSegment
	case det.Sign() > 0:
		return OrientationLeft
	default:
		return OrientationRight
	}
}
