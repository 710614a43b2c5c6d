package plane2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plane2d "github.com/planekit/plane2d"
	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

func mustDecimal(t *testing.T, s string) scalar.Decimal {
	t.Helper()
	var zero scalar.Decimal
	v, err := zero.Parse(s)
	require.NoError(t, err)
	return v
}

func decimalPoint(t *testing.T, x, y string) plane2d.Point[scalar.Decimal] {
	t.Helper()
	return plane2d.NewPoint(mustDecimal(t, x), mustDecimal(t, y))
}

// TestClassify_S2 is spec §8 scenario S2, exercising the Decimal family with an extreme epsilon:
// classify(seg=[(-1000,50),(1000,50)], P=(0,50), ε=1e-40, exact) = OnSegment.
func TestClassify_S2(t *testing.T) {
	seg := plane2d.NewSegment(decimalPoint(t, "-1000", "50"), decimalPoint(t, "1000", "50"))
	p := decimalPoint(t, "0", "50")

	got := plane2d.ClassifyPointRelativeToSegment(seg, p, options.WithEpsilon(mustDecimal(t, "1e-40")))
	assert.Equal(t, plane2d.OrientationOnSegment, got)
}

// TestClassify_DegenerateSegment documents spec §9's open question: a degenerate segment
// classifies a non-coincident point as Right, not OnSegment.
func TestClassify_DegenerateSegment(t *testing.T) {
	seg := plane2d.NewSegment(
		plane2d.NewPoint[scalar.Float64](1, 1),
		plane2d.NewPoint[scalar.Float64](1, 1),
	)
	coincident := plane2d.NewPoint[scalar.Float64](1, 1)
	elsewhere := plane2d.NewPoint[scalar.Float64](5, 5)

	assert.Equal(t, plane2d.OrientationOnSegment, plane2d.ClassifyPointRelativeToSegment(seg, coincident))
	assert.Equal(t, plane2d.OrientationRight, plane2d.ClassifyPointRelativeToSegment(seg, elsewhere))
}

func TestLocatePointInConvexPolygon(t *testing.T) {
	square := plane2d.NewPolygon([]plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](10, 0),
		plane2d.NewPoint[scalar.Float64](10, 10),
		plane2d.NewPoint[scalar.Float64](0, 10),
	})

	inside, err := plane2d.LocatePointInConvexPolygon(square, plane2d.NewPoint[scalar.Float64](5, 5))
	require.NoError(t, err)
	assert.Equal(t, plane2d.PointInside, inside)

	onBoundary, err := plane2d.LocatePointInConvexPolygon(square, plane2d.NewPoint[scalar.Float64](0, 5))
	require.NoError(t, err)
	assert.Equal(t, plane2d.PointOnBoundary, onBoundary)

	outside, err := plane2d.LocatePointInConvexPolygon(square, plane2d.NewPoint[scalar.Float64](20, 20))
	require.NoError(t, err)
	assert.Equal(t, plane2d.PointOutside, outside)
}

func TestLocatePointInConvexPolygon_TooFewVertices(t *testing.T) {
	degenerate := plane2d.NewPolygon([]plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](1, 0),
	})

	_, err := plane2d.LocatePointInConvexPolygon(degenerate, plane2d.NewPoint[scalar.Float64](0, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, plane2d.ErrTooFewVertices)
}

func TestLocatePointInPolygon_Concave(t *testing.T) {
	// An L-shaped concave polygon.
	lShape := plane2d.NewPolygon([]plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](4, 0),
		plane2d.NewPoint[scalar.Float64](4, 2),
		plane2d.NewPoint[scalar.Float64](2, 2),
		plane2d.NewPoint[scalar.Float64](2, 4),
		plane2d.NewPoint[scalar.Float64](0, 4),
	})

	insideNotch, err := plane2d.LocatePointInPolygon(lShape, plane2d.NewPoint[scalar.Float64](3, 3))
	require.NoError(t, err)
	assert.Equal(t, plane2d.PointOutside, insideNotch)

	insideArm, err := plane2d.LocatePointInPolygon(lShape, plane2d.NewPoint[scalar.Float64](3, 1))
	require.NoError(t, err)
	assert.Equal(t, plane2d.PointInside, insideArm)
}
