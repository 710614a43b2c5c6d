// The `triangle.go` file defines the Triangle type, the output unit of delaunayTriangulation
// (spec §4.6) and an input to the circumcircle predicate it relies on.

package plane2d

import (
	"fmt"

	"github.com/planekit/plane2d/scalar"
)

// Triangle represents a triangle in 2D space defined by three vertices, a, b, c. A triangle may
// be degenerate (its vertices collinear); algorithms that require non-degeneracy check
// explicitly rather than rejecting construction.
type Triangle[S scalar.Number[S]] struct {
	a Point[S]
	b Point[S]
	c Point[S]
}

// NewTriangle creates a new Triangle from three vertices.
func NewTriangle[S scalar.Number[S]](a, b, c Point[S]) Triangle[S] {
	return Triangle[S]{a: a, b: b, c: c}
}

// Vertices returns the triangle's three vertices in a, b, c order.
func (t Triangle[S]) Vertices() (a, b, c Point[S]) { return t.a, t.b, t.c }

// String returns a formatted string representation of the triangle.
func (t Triangle[S]) String() string {
	return fmt.Sprintf("Triangle[%s, %s, %s]", t.a.String(), t.b.String(), t.c.String())
}

// ccw returns t reordered so its vertices run counter-clockwise, swapping b and c if the
// orientation determinant is negative. Used before the signed circumcircle test (§4.6 step 5a),
// which is only valid for a CCW-oriented triangle.
func (t Triangle[S]) ccw() Triangle[S] {
	if orientationDet(t.a, t.b, t.c).Sign() < 0 {
		return Triangle[S]{a: t.a, b: t.c, c: t.b}
	}
	return t
}

// hasVertex reports whether p coincides exactly with one of the triangle's vertices. Used by
// delaunayTriangulation to discard super-triangle-touching triangles after triangulation (§4.6
// step 6), where "touching" is identity on the super-triangle's own synthetic vertices.
func (t Triangle[S]) hasVertex(p Point[S]) bool {
	return t.a.Eq(p) || t.b.Eq(p) || t.c.Eq(p)
}

// edges returns the triangle's three directed boundary edges, a->b, b->c, c->a.
func (t Triangle[S]) edges() [3]Segment[S] {
	return [3]Segment[S]{
		NewSegment(t.a, t.b),
		NewSegment(t.b, t.c),
		NewSegment(t.c, t.a),
	}
}
