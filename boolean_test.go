package plane2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	plane2d "github.com/planekit/plane2d"
	"github.com/planekit/plane2d/scalar"
)

func square(x0, y0, side float64) plane2d.Polygon[scalar.Float64] {
	return plane2d.NewPolygon([]plane2d.Point[scalar.Float64]{
		plane2d.NewPoint(scalar.Float64(x0), scalar.Float64(y0)),
		plane2d.NewPoint(scalar.Float64(x0+side), scalar.Float64(y0)),
		plane2d.NewPoint(scalar.Float64(x0+side), scalar.Float64(y0+side)),
		plane2d.NewPoint(scalar.Float64(x0), scalar.Float64(y0+side)),
	})
}

// TestIntersectConvexPolygons_OverlappingSquares exercises spec §4.9 against two side-2 squares
// overlapping in a 1x1 quadrant.
func TestIntersectConvexPolygons_OverlappingSquares(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)

	result := plane2d.IntersectConvexPolygons(a, b)
	assert.Equal(t, 4, result.Len())
	assert.InDelta(t, 1.0, float64(result.SignedArea()), 1e-6)
}

// TestBooleanUnion_S8 is spec §8 scenario S8: the union of two overlapping side-2 squares has
// area 7 and no holes.
func TestBooleanUnion_S8(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)

	res := plane2d.BooleanUnion(a, b)
	assert.Len(t, res.Outers, 1)
	assert.Empty(t, res.Holes)
	assert.InDelta(t, 7.0, float64(res.Outers[0].SignedArea()), 1e-6)
}

// TestBooleanDifference_S9 is spec §8 scenario S9: a side-4 square centered at the origin minus a
// concentric side-2 square yields one outer ring (CCW) and one hole (CW).
func TestBooleanDifference_S9(t *testing.T) {
	outer := square(-2, -2, 4)
	inner := square(-1, -1, 2)

	res := plane2d.BooleanDifference(outer, inner)
	assert.Len(t, res.Outers, 1)
	assert.Len(t, res.Holes, 1)

	assert.Greater(t, float64(res.Outers[0].SignedArea()), 0.0)
	assert.Less(t, float64(res.Holes[0].SignedArea()), 0.0)

	assert.InDelta(t, 16.0, float64(res.Outers[0].SignedArea()), 1e-6)
	assert.InDelta(t, -4.0, float64(res.Holes[0].SignedArea()), 1e-6)
}

// TestBooleanOps_AreaLaw is spec §8 property 7: area(A∪B) + area(A∩B) = |A| + |B|, and
// area(A) - area(A∩B) = area(A \ B).
func TestBooleanOps_AreaLaw(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)

	areaA := math.Abs(float64(a.SignedArea()))
	areaB := math.Abs(float64(b.SignedArea()))

	intersection := plane2d.IntersectConvexPolygons(a, b)
	areaIntersection := math.Abs(float64(intersection.SignedArea()))

	union := plane2d.BooleanUnion(a, b)
	var areaUnion float64
	for _, o := range union.Outers {
		areaUnion += math.Abs(float64(o.SignedArea()))
	}

	diff := plane2d.BooleanDifference(a, b)
	var areaDiff float64
	for _, o := range diff.Outers {
		areaDiff += math.Abs(float64(o.SignedArea()))
	}
	for _, h := range diff.Holes {
		areaDiff -= math.Abs(float64(h.SignedArea()))
	}

	assert.InDelta(t, areaA+areaB, areaUnion+areaIntersection, 1e-6)
	assert.InDelta(t, areaA-areaIntersection, areaDiff, 1e-6)
}

func TestBooleanUnion_DisjointSquares(t *testing.T) {
	a := square(0, 0, 1)
	b := square(10, 10, 1)

	res := plane2d.BooleanUnion(a, b)
	assert.Len(t, res.Outers, 2)
	assert.Empty(t, res.Holes)
}

func TestBooleanDifference_Disjoint(t *testing.T) {
	a := square(0, 0, 1)
	b := square(10, 10, 1)

	res := plane2d.BooleanDifference(a, b)
	assert.Len(t, res.Outers, 1)
	assert.InDelta(t, 1.0, float64(res.Outers[0].SignedArea()), 1e-9)
}

func TestBooleanDifference_BContainsA(t *testing.T) {
	a := square(1, 1, 1)
	b := square(0, 0, 4)

	res := plane2d.BooleanDifference(a, b)
	assert.Empty(t, res.Outers)
	assert.Empty(t, res.Holes)
}
