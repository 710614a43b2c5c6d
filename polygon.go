// File polygon.go defines the Polygon type: an ordered ring of vertices with no semantic
// duplicates, oriented CCW for outer rings and CW for holes (spec §3), plus the cleanup
// primitives every downstream algorithm (hull, Boolean engine) normalizes its output through
// (spec §4.7).

package plane2d

import (
	"fmt"

	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

// Polygon represents a single ring: an ordered sequence of vertices with the first vertex not
// repeated at the end. Construction does not itself enforce the invariants of spec §3 (no
// adjacent duplicates, CCW/CW orientation) — use CleanupPolygon to normalize raw vertex data.
type Polygon[S scalar.Number[S]] struct {
	vertices []Point[S]
}

// NewPolygon creates a Polygon from the given vertices, in order, without normalizing them.
func NewPolygon[S scalar.Number[S]](vertices []Point[S]) Polygon[S] {
	out := make([]Point[S], len(vertices))
	copy(out, vertices)
	return Polygon[S]{vertices: out}
}

// Vertices returns the polygon's vertices in order. The returned slice is owned by the caller;
// mutating it does not affect p.
func (p Polygon[S]) Vertices() []Point[S] {
	out := make([]Point[S], len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Len returns the number of vertices in the polygon.
func (p Polygon[S]) Len() int { return len(p.vertices) }

// String returns a formatted string representation of the polygon's vertices.
func (p Polygon[S]) String() string {
	return fmt.Sprintf("Polygon%v", p.vertices)
}

// edges returns the polygon's directed boundary edges in order, wrapping from the last vertex
// back to the first.
func (p Polygon[S]) edges() []Segment[S] {
	n := len(p.vertices)
	if n < 2 {
		return nil
	}
	out := make([]Segment[S], n)
	for i := 0; i < n; i++ {
		out[i] = NewSegment(p.vertices[i], p.vertices[(i+1)%n])
	}
	return out
}

// signedArea computes the polygon's signed area via the shoelace formula: sum of cross products
// of consecutive edge vectors from the origin, halved. Positive indicates CCW winding, negative
// CW. This is spec §4.7's "signedArea" primitive.
func signedArea[S scalar.Number[S]](verts []Point[S]) S {
	n := len(verts)
	var sum S
	if n < 3 {
		return sum
	}
	two := scalar.One[S]().Add(scalar.One[S]())
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		sum = sum.Add(a.x.Mul(b.y).Sub(b.x.Mul(a.y)))
	}
	return sum.Div(two)
}

// SignedArea returns the polygon's signed area (spec §4.7's signedArea). Positive for CCW
// winding, negative for CW.
func (p Polygon[S]) SignedArea() S {
	return signedArea(p.vertices)
}

// removeDuplicateVertices drops adjacent equal vertices (cyclically, so the wrap from the last
// vertex back to the first is also checked); if the resulting first and last vertices coincide,
// the last is popped. This is spec §4.7's "removeDuplicateVertices".
func removeDuplicateVertices[S scalar.Number[S]](verts []Point[S], eps S) []Point[S] {
	if len(verts) == 0 {
		return nil
	}
	out := make([]Point[S], 0, len(verts))
	for _, v := range verts {
		if len(out) > 0 && pointsEqual(out[len(out)-1], v, eps) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && pointsEqual(out[0], out[len(out)-1], eps) {
		out = out[:len(out)-1]
	}
	return out
}

// removeColinearSpikes drops any vertex whose incident edges are collinear and point back at
// one another: if v1 is the incoming edge vector and v2 the outgoing edge vector at a vertex,
// dot(v1, v2) > 0 means the turn continues forward (kept); dot(v1, v2) <= 0 with cross(v1, v2)
// near zero means the path doubles back on itself at that vertex (a spike), and it is dropped.
// This is spec §4.7's "removeColinearSpikes".
func removeColinearSpikes[S scalar.Number[S]](verts []Point[S], eps S) []Point[S] {
	n := len(verts)
	if n < 3 {
		return verts
	}
	out := make([]Point[S], 0, n)
	for i := 0; i < n; i++ {
		prev := verts[(i-1+n)%n]
		cur := verts[i]
		next := verts[(i+1)%n]

		v1 := cur.Sub(prev)
		v2 := next.Sub(cur)
		c := v1.CrossProduct(v2)
		tol := scalar.CrossTolerance(eps, v1.SquaredLength(), v2.SquaredLength())
		if scalar.NearlyZero(c, tol) && v1.DotProduct(v2).Sign() <= 0 {
			continue
		}
		out = append(out, cur)
	}
	return out
}

// normalizePolygon dedups verts and reverses them if the resulting signed area is negative,
// ensuring a CCW winding. This is spec §4.7's "normalizePolygon".
func normalizePolygon[S scalar.Number[S]](verts []Point[S], eps S) []Point[S] {
	out := removeDuplicateVertices(verts, eps)
	if signedArea(out).Sign() < 0 {
		reverse(out)
	}
	return out
}

// cleanupPolygon runs the full cleanup pipeline spec §4.7 mandates: dedup, then spike removal,
// then an area-sign check (rejecting near-degenerate polygons whose |area| <= ε), then
// reorientation to CCW, then a final dedup pass. Returns an empty Polygon if the input collapses
// at any stage.
func cleanupPolygon[S scalar.Number[S]](verts []Point[S], eps S) Polygon[S] {
	out := removeDuplicateVertices(verts, eps)
	if len(out) < 3 {
		return Polygon[S]{}
	}
	out = removeColinearSpikes(out, eps)
	if len(out) < 3 {
		return Polygon[S]{}
	}
	area := signedArea(out)
	if scalar.NearlyZero(area, eps) {
		return Polygon[S]{}
	}
	if area.Sign() < 0 {
		reverse(out)
	}
	out = removeDuplicateVertices(out, eps)
	if len(out) < 3 {
		return Polygon[S]{}
	}
	return Polygon[S]{vertices: out}
}

// CleanupPolygon runs the polygon cleanup pipeline (spec §4.7) on p's vertices and returns the
// normalized result: deduplicated, spike-free, CCW-oriented. Returns an empty Polygon if the
// input degenerates to fewer than three vertices or to near-zero area at any stage.
func CleanupPolygon[S scalar.Number[S]](p Polygon[S], opts ...options.Option[S]) Polygon[S] {
	o := options.Apply(opts...)
	return cleanupPolygon(p.vertices, o.Epsilon)
}

// reverse reverses s in place.
func reverse[S any](s []S) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
