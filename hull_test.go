package plane2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	plane2d "github.com/planekit/plane2d"
	"github.com/planekit/plane2d/scalar"
)

// TestComputeConvexHull_S6 is spec §8 scenario S6: the hull of a unit square plus its own center
// is the square itself, CCW.
func TestComputeConvexHull_S6(t *testing.T) {
	points := []plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](1, 0),
		plane2d.NewPoint[scalar.Float64](1, 1),
		plane2d.NewPoint[scalar.Float64](0, 1),
		plane2d.NewPoint[scalar.Float64](0.5, 0.5),
	}

	hull := plane2d.ComputeConvexHull(points)
	assert.Equal(t, 4, hull.Len())
	assert.Greater(t, float64(hull.SignedArea()), 0.0)

	for _, p := range points {
		loc, err := plane2d.LocatePointInConvexPolygon(hull, p)
		assert.NoError(t, err)
		assert.NotEqual(t, plane2d.PointOutside, loc)
	}
}

// TestComputeConvexHull_Idempotent is spec §8 property 3: hull(hull(S)) = hull(S).
func TestComputeConvexHull_Idempotent(t *testing.T) {
	points := []plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](4, 0),
		plane2d.NewPoint[scalar.Float64](4, 4),
		plane2d.NewPoint[scalar.Float64](0, 4),
		plane2d.NewPoint[scalar.Float64](2, 2),
		plane2d.NewPoint[scalar.Float64](1, 3),
	}

	once := plane2d.ComputeConvexHull(points)
	twice := plane2d.ComputeConvexHull(once.Vertices())

	assert.Equal(t, once.Vertices(), twice.Vertices())
}

// TestComputeConvexHull_Containment is spec §8 property 4: every input point lies inside or on
// the hull.
func TestComputeConvexHull_Containment(t *testing.T) {
	points := []plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](6, 1),
		plane2d.NewPoint[scalar.Float64](3, 8),
		plane2d.NewPoint[scalar.Float64](-2, 4),
		plane2d.NewPoint[scalar.Float64](2, 3),
	}

	hull := plane2d.ComputeConvexHull(points)
	for _, p := range points {
		loc, err := plane2d.LocatePointInConvexPolygon(hull, p)
		assert.NoError(t, err)
		assert.NotEqual(t, plane2d.PointOutside, loc)
	}
}

func TestComputeConvexHull_TooFewPoints(t *testing.T) {
	hull := plane2d.ComputeConvexHull([]plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
	})
	assert.Equal(t, 0, hull.Len())
}

func TestComputeConvexHull_Collinear(t *testing.T) {
	hull := plane2d.ComputeConvexHull([]plane2d.Point[scalar.Float64]{
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](1, 0),
		plane2d.NewPoint[scalar.Float64](2, 0),
	})
	assert.LessOrEqual(t, hull.Len(), 2)
}
