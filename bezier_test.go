package plane2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plane2d "github.com/planekit/plane2d"
	"github.com/planekit/plane2d/scalar"
)

// TestEvaluateBezier_EndpointIdentity is spec §8 property 8:
// evaluateBezier(P, 0) = P[0], evaluateBezier(P, 1) = P[last].
func TestEvaluateBezier_EndpointIdentity(t *testing.T) {
	controls := []plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](0, 1),
		plane2d.NewPoint[scalar.Float64](1, 1),
		plane2d.NewPoint[scalar.Float64](1, 0),
	}

	start, err := plane2d.EvaluateBezier(controls, scalar.Float64(0))
	require.NoError(t, err)
	assert.True(t, start.Eq(controls[0]))

	end, err := plane2d.EvaluateBezier(controls, scalar.Float64(1))
	require.NoError(t, err)
	assert.True(t, end.Eq(controls[len(controls)-1]))
}

func TestEvaluateBezier_InvalidParameter(t *testing.T) {
	controls := []plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](1, 1),
	}

	_, err := plane2d.EvaluateBezier(controls, scalar.Float64(1.5))
	require.Error(t, err)
	assert.ErrorIs(t, err, plane2d.ErrInvalidParameter)
}

func TestEvaluateBezier_NoControlPoints(t *testing.T) {
	_, err := plane2d.EvaluateBezier([]plane2d.Point[scalar.Float64]{}, scalar.Float64(0.5))
	require.Error(t, err)
	assert.ErrorIs(t, err, plane2d.ErrNoControlPoints)
}

func TestEvaluateBezierClosedForms_MatchDeCasteljau(t *testing.T) {
	p0 := plane2d.NewPoint[scalar.Float64](0, 0)
	p1 := plane2d.NewPoint[scalar.Float64](1, 2)
	p2 := plane2d.NewPoint[scalar.Float64](3, -1)
	p3 := plane2d.NewPoint[scalar.Float64](4, 0)

	for _, tv := range []scalar.Float64{0, 0.25, 0.5, 0.75, 1} {
		linearWant, err := plane2d.EvaluateBezier([]plane2d.Point[scalar.Float64]{p0, p1}, tv)
		require.NoError(t, err)
		linearGot, err := plane2d.EvaluateBezierLinear(p0, p1, tv)
		require.NoError(t, err)
		assert.True(t, linearWant.Eq(linearGot))

		quadWant, err := plane2d.EvaluateBezier([]plane2d.Point[scalar.Float64]{p0, p1, p2}, tv)
		require.NoError(t, err)
		quadGot, err := plane2d.EvaluateBezierQuadratic(p0, p1, p2, tv)
		require.NoError(t, err)
		assert.InDelta(t, float64(quadWant.X()), float64(quadGot.X()), 1e-9)
		assert.InDelta(t, float64(quadWant.Y()), float64(quadGot.Y()), 1e-9)

		cubicWant, err := plane2d.EvaluateBezier([]plane2d.Point[scalar.Float64]{p0, p1, p2, p3}, tv)
		require.NoError(t, err)
		cubicGot, err := plane2d.EvaluateBezierCubic(p0, p1, p2, p3, tv)
		require.NoError(t, err)
		assert.InDelta(t, float64(cubicWant.X()), float64(cubicGot.X()), 1e-9)
		assert.InDelta(t, float64(cubicWant.Y()), float64(cubicGot.Y()), 1e-9)
	}
}

// TestSampleBezier_S10 is spec §8 scenario S10: sampling 5 points from a cubic's control
// polygon yields 5 points, the first and last matching the endpoints, each inside the controls'
// convex hull.
func TestSampleBezier_S10(t *testing.T) {
	controls := []plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](0, 1),
		plane2d.NewPoint[scalar.Float64](1, 1),
		plane2d.NewPoint[scalar.Float64](1, 0),
	}

	samples, err := plane2d.SampleBezier(controls, 5)
	require.NoError(t, err)
	require.Len(t, samples, 5)

	assert.True(t, samples[0].Eq(controls[0]))
	assert.True(t, samples[len(samples)-1].Eq(controls[len(controls)-1]))

	hull := plane2d.ComputeConvexHull(controls)
	for _, s := range samples {
		loc, err := plane2d.LocatePointInConvexPolygon(hull, s)
		require.NoError(t, err)
		assert.NotEqual(t, plane2d.PointOutside, loc)
	}
}

func TestSampleBezier_SingleSample(t *testing.T) {
	controls := []plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](2, 2),
		plane2d.NewPoint[scalar.Float64](5, 5),
	}
	samples, err := plane2d.SampleBezier(controls, 1)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.True(t, samples[0].Eq(controls[0]))
}

func TestSampleBezier_ZeroSamplesIsError(t *testing.T) {
	controls := []plane2d.Point[scalar.Float64]{plane2d.NewPoint[scalar.Float64](0, 0)}
	_, err := plane2d.SampleBezier(controls, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, plane2d.ErrInvalidSampleCount)
}
