// The `delaunay.go` file implements the Bowyer-Watson incremental Delaunay triangulation (spec
// §4.6) using a robust 3x3 in-circle determinant and a bounding-box super-triangle seed.

package plane2d

import (
	"math/rand"

	"github.com/planekit/plane2d/internal/diag"
	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

// DelaunayTriangulation computes the Delaunay triangulation of a finite point set using the
// Bowyer-Watson incremental algorithm, following spec §4.6.
//
// Input is deduplicated (tolerance-aware); fewer than three unique points yields an empty
// result (spec §4.13: silent empty result). Points are then randomly permuted to avoid
// worst-case cascading insertion costs — a performance hedge, not a correctness requirement
// (spec §9). The deduplication step sorts the points, so the caller's input order has no effect
// on the permutation; the permutation draws from math/rand's global source, and no seed can be
// passed in, so the order of the returned triangles (and, for cocircular inputs, the choice of
// diagonals) can differ between calls.
//
// A super-triangle enclosing all input points (slack radius = max(extent, 1) * 20) seeds the
// triangulation. Each point is inserted by finding every triangle whose circumcircle strictly
// contains it (the "bad" triangles), re-triangulating the polygonal cavity their removal leaves
// behind by connecting the point to each boundary edge appearing in exactly one bad triangle.
// Finally every triangle touching a super-triangle vertex is discarded.
func DelaunayTriangulation[S scalar.Number[S]](points []Point[S], opts ...options.Option[S]) []Triangle[S] {
	o := options.Apply(opts...)
	eps := o.Epsilon

	pts := dedupSortedByLex(points, eps)
	if len(pts) < 3 {
		return nil
	}

	shuffled := make([]Point[S], len(pts))
	copy(shuffled, pts)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	superA, superB, superC := superTriangle(pts)
	triangles := []Triangle[S]{NewTriangle(superA, superB, superC).ccw()}
	diag.Debugf("delaunay: seeded super-triangle for %d points", len(pts))

	for _, p := range shuffled {
		triangles = insertPoint(triangles, p, eps)
	}
	diag.Debugf("delaunay: %d triangles before super-triangle cleanup", len(triangles))

	out := make([]Triangle[S], 0, len(triangles))
	for _, t := range triangles {
		if t.hasVertex(superA) || t.hasVertex(superB) || t.hasVertex(superC) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// insertPoint performs one Bowyer-Watson insertion step (spec §4.6 step 5): it partitions the
// current triangulation into triangles whose circumcircle strictly contains p ("bad") and the
// rest, finds the boundary of the bad region as the set of edges appearing in exactly one bad
// triangle, and replaces the bad triangles with new ones connecting p to each boundary edge.
func insertPoint[S scalar.Number[S]](triangles []Triangle[S], p Point[S], eps S) []Triangle[S] {
	bad := make([]Triangle[S], 0, len(triangles))
	good := make([]Triangle[S], 0, len(triangles))
	for _, t := range triangles {
		if inCircumcircle(t, p, eps) {
			bad = append(bad, t)
		} else {
			good = append(good, t)
		}
	}

	boundary := boundaryEdges(bad)
	for _, e := range boundary {
		tri := NewTriangle(e.start, e.end, p)
		if orientationDet(tri.a, tri.b, tri.c).Sign() < 0 {
			tri.b, tri.c = tri.c, tri.b
		}
		good = append(good, tri)
	}
	return good
}

// boundaryEdges returns the edges of the bad-triangle region that appear exactly once across
// all of bad's triangles: the multiset boundary spec §4.6 step 5b describes. An edge and its
// reverse are treated as the same undirected edge for counting purposes, but the returned edge
// preserves one of the two original directed orientations.
func boundaryEdges[S scalar.Number[S]](bad []Triangle[S]) []Segment[S] {
	type key struct {
		ax, ay, bx, by string
	}
	canon := func(p Point[S]) (string, string) { return p.x.String(), p.y.String() }
	count := make(map[key]int)
	first := make(map[key]Segment[S])

	for _, t := range bad {
		for _, e := range t.edges() {
			ax, ay := canon(e.start)
			bx, by := canon(e.end)
			k := key{ax, ay, bx, by}
			rk := key{bx, by, ax, ay}
			if _, ok := count[rk]; ok {
				count[rk]++
				continue
			}
			count[k]++
			if count[k] == 1 {
				first[k] = e
			}
		}
	}

	out := make([]Segment[S], 0, len(first))
	for k, e := range first {
		if count[k] == 1 {
			out = append(out, e)
		}
	}
	return out
}

// inCircumcircle reports whether point d lies strictly inside the circumcircle of CCW-oriented
// triangle t, using the standard 3x3 in-circle determinant (spec §4.6 step 5a):
//
//	| ax-dx  ay-dy  (ax-dx)²+(ay-dy)² |
//	| bx-dx  by-dy  (bx-dx)²+(by-dy)² |
//	| cx-dx  cy-dy  (cx-dx)²+(cy-dy)² |
//
// expanded via cofactor expansion along the third column, oriented to t's CCW winding and
// compared against the options' epsilon (defaulting to the 1e-9 absolute constant spec §4.6
// names).
func inCircumcircle[S scalar.Number[S]](t Triangle[S], d Point[S], eps S) bool {
	t = t.ccw()
	a, b, c := t.a.Sub(d), t.b.Sub(d), t.c.Sub(d)

	a2 := a.SquaredLength()
	b2 := b.SquaredLength()
	c2 := c.SquaredLength()

	det := a2.Mul(b.x.Mul(c.y).Sub(b.y.Mul(c.x))).
		Sub(b2.Mul(a.x.Mul(c.y).Sub(a.y.Mul(c.x)))).
		Add(c2.Mul(a.x.Mul(b.y).Sub(a.y.Mul(b.x))))

	return det.Cmp(eps) > 0
}

// superTriangle constructs a CCW triangle enclosing all of pts with slack radius
// max(extent, 1) * 20, following spec §4.6 step 3's bounding-box-plus-margin construction.
func superTriangle[S scalar.Number[S]](pts []Point[S]) (a, b, c Point[S]) {
	minX, minY := pts[0].x, pts[0].y
	maxX, maxY := pts[0].x, pts[0].y
	for _, p := range pts[1:] {
		if p.x.Cmp(minX) < 0 {
			minX = p.x
		}
		if p.x.Cmp(maxX) > 0 {
			maxX = p.x
		}
		if p.y.Cmp(minY) < 0 {
			minY = p.y
		}
		if p.y.Cmp(maxY) > 0 {
			maxY = p.y
		}
	}

	dx := maxX.Sub(minX)
	dy := maxY.Sub(minY)
	extent := scalar.Max(dx, dy)
	one := scalar.One[S]()
	if extent.Cmp(one) < 0 {
		extent = one
	}
	twenty := one.FromInt64(20)
	slack := extent.Mul(twenty)

	two := one.Add(one)
	cx := minX.Add(maxX).Div(two)
	cy := minY.Add(maxY).Div(two)

	three := one.FromInt64(3)
	return NewPoint(cx.Sub(slack.Mul(three)), cy.Sub(slack)),
		NewPoint(cx.Add(slack.Mul(three)), cy.Sub(slack)),
		NewPoint(cx, cy.Add(slack.Mul(three)))
}
